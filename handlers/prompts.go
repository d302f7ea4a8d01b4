// ABOUTME: MCP prompt handlers for reusable freelancing workflow templates
// ABOUTME: Provides client-summary, invoice-reminder and earnings-review prompts
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
	"github.com/harperreed/billfold/viz"
)

type PromptHandlers struct {
	store *store.Store
}

func NewPromptHandlers(s *store.Store) *PromptHandlers {
	return &PromptHandlers{store: s}
}

// Prompts lists the prompts GetPrompt understands, for registration.
func Prompts() []*mcp.Prompt {
	return []*mcp.Prompt{
		{
			Name:        "client-summary",
			Description: "Summarize a client with their projects and invoices",
			Arguments: []*mcp.PromptArgument{
				{Name: "client_id", Description: "Client ID", Required: true},
			},
		},
		{
			Name:        "invoice-reminder",
			Description: "Draft a polite payment reminder for an unpaid invoice",
			Arguments: []*mcp.PromptArgument{
				{Name: "invoice_id", Description: "Invoice ID", Required: true},
			},
		},
		{
			Name:        "earnings-review",
			Description: "Review earnings, outstanding invoices and project load",
		},
	}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(_ context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments
	switch request.Params.Name {
	case "client-summary":
		return h.getClientSummaryPrompt(args)
	case "invoice-reminder":
		return h.getInvoiceReminderPrompt(args)
	case "earnings-review":
		return h.getEarningsReviewPrompt()
	default:
		return nil, fmt.Errorf("unknown prompt: %s", request.Params.Name)
	}
}

func (h *PromptHandlers) getClientSummaryPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	id, ok := args["client_id"]
	if !ok || id == "" {
		return nil, fmt.Errorf("client_id is required")
	}

	snap := h.store.Snapshot()
	var client *models.Client
	for i := range snap.Clients {
		if string(snap.Clients[i].ID) == id {
			client = &snap.Clients[i]
			break
		}
	}
	if client == nil {
		return nil, fmt.Errorf("client not found: %s", id)
	}

	var text strings.Builder
	text.WriteString("Please summarize this client relationship:\n\n")
	text.WriteString(fmt.Sprintf("Name: %s\n", client.Name))
	if client.Email != "" {
		text.WriteString(fmt.Sprintf("Email: %s\n", client.Email))
	}
	if client.Phone != "" {
		text.WriteString(fmt.Sprintf("Phone: %s\n", client.Phone))
	}

	text.WriteString("\nProjects:\n")
	for _, p := range snap.Projects {
		if p.ClientID == client.ID {
			text.WriteString(fmt.Sprintf("  - %s (%s, %s)\n", p.Title, p.Status, models.FormatCurrency(p.Amount)))
		}
	}

	text.WriteString("\nInvoices:\n")
	for _, inv := range snap.Invoices {
		if inv.ClientID == client.ID {
			text.WriteString(fmt.Sprintf("  - #%s %s (%s)\n", inv.ID, models.FormatMoney(inv.Total), inv.Status))
		}
	}

	text.WriteString("\nPlease provide:")
	text.WriteString("\n1. A short summary of the work done for this client")
	text.WriteString("\n2. Anything unpaid or overdue")
	text.WriteString("\n3. Suggestions for the next piece of work to pitch")

	return userPrompt(fmt.Sprintf("Summary for client: %s", client.Name), text.String()), nil
}

func (h *PromptHandlers) getInvoiceReminderPrompt(args map[string]string) (*mcp.GetPromptResult, error) {
	id, ok := args["invoice_id"]
	if !ok || id == "" {
		return nil, fmt.Errorf("invoice_id is required")
	}

	var invoice *models.Invoice
	for _, inv := range h.store.Invoices() {
		if string(inv.ID) == id {
			invoice = &inv
			break
		}
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice not found: %s", id)
	}
	if invoice.Status == models.InvoicePaid {
		return nil, fmt.Errorf("invoice %s is already paid", id)
	}

	var text strings.Builder
	text.WriteString("Please draft a short, friendly payment reminder email.\n\n")
	text.WriteString(fmt.Sprintf("Client: %s\n", invoice.ClientName))
	text.WriteString(fmt.Sprintf("Invoice: #%s\n", invoice.ID))
	text.WriteString(fmt.Sprintf("Status: %s\n", invoice.Status))
	text.WriteString(fmt.Sprintf("Total: %s\n", models.FormatMoney(invoice.Total)))
	if !invoice.CreatedAt.IsZero() {
		text.WriteString(fmt.Sprintf("Issued: %s\n", invoice.CreatedAt.Format("2006-01-02")))
	}
	text.WriteString("\nLine items:\n")
	for _, li := range invoice.LineItems {
		text.WriteString(fmt.Sprintf("  - %s: %s × %s = %s\n",
			li.Description, li.Quantity.String(), models.FormatMoney(li.Rate), models.FormatMoney(li.Amount)))
	}

	return userPrompt(fmt.Sprintf("Reminder for invoice #%s", invoice.ID), text.String()), nil
}

func (h *PromptHandlers) getEarningsReviewPrompt() (*mcp.GetPromptResult, error) {
	stats := viz.GenerateDashboardStats(h.store.Snapshot(), time.Now())

	var text strings.Builder
	text.WriteString("Please review my freelancing business:\n\n")
	text.WriteString(viz.RenderDashboard(stats))
	text.WriteString("\nPlease provide:")
	text.WriteString("\n1. How earnings compare to what is still outstanding")
	text.WriteString("\n2. Which invoices to chase first")
	text.WriteString("\n3. Whether the current project load looks sustainable")

	return userPrompt("Earnings review", text.String()), nil
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}
