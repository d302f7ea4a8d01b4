// ABOUTME: Invoice MCP tool handlers
// ABOUTME: Implements list_invoices and create_invoice tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

type InvoiceHandlers struct {
	store *store.Store
}

func NewInvoiceHandlers(s *store.Store) *InvoiceHandlers {
	return &InvoiceHandlers{store: s}
}

type LineItemOutput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type InvoiceOutput struct {
	ID         string           `json:"id"`
	ClientID   string           `json:"client_id"`
	ClientName string           `json:"client_name,omitempty"`
	Total      float64          `json:"total"`
	Status     string           `json:"status"`
	LineItems  []LineItemOutput `json:"line_items"`
	CreatedAt  string           `json:"created_at,omitempty"`
}

type ListInvoicesInput struct {
	Status   string `json:"status,omitempty" jsonschema:"Filter by status (draft, sent, paid, overdue)"`
	ClientID string `json:"client_id,omitempty" jsonschema:"Filter by client ID"`
}

type ListInvoicesOutput struct {
	Invoices []InvoiceOutput `json:"invoices"`
}

func (h *InvoiceHandlers) ListInvoices(_ context.Context, _ *mcp.CallToolRequest, input ListInvoicesInput) (*mcp.CallToolResult, ListInvoicesOutput, error) {
	if input.Status != "" && !models.InvoiceStatus(input.Status).Valid() {
		return nil, ListInvoicesOutput{}, fmt.Errorf("invalid status: %s", input.Status)
	}

	result := []InvoiceOutput{}
	for _, inv := range h.store.Invoices() {
		if input.Status != "" && string(inv.Status) != input.Status {
			continue
		}
		if input.ClientID != "" && string(inv.ClientID) != input.ClientID {
			continue
		}
		result = append(result, invoiceToOutput(inv))
	}
	return nil, ListInvoicesOutput{Invoices: result}, nil
}

type LineItemInput struct {
	Description string  `json:"description" jsonschema:"What was delivered"`
	Quantity    float64 `json:"quantity" jsonschema:"Quantity (hours, units)"`
	Rate        float64 `json:"rate" jsonschema:"Price per unit in dollars"`
}

type CreateInvoiceInput struct {
	ClientID  string          `json:"client_id" jsonschema:"ID of the client being invoiced (required)"`
	Status    string          `json:"status,omitempty" jsonschema:"draft, sent, paid or overdue (default draft)"`
	LineItems []LineItemInput `json:"line_items" jsonschema:"At least one line item (required)"`
}

type CreateInvoiceOutput struct {
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

// CreateInvoice builds the invoice through a draft so amounts and the total
// are derived from quantity and rate.
func (h *InvoiceHandlers) CreateInvoice(ctx context.Context, _ *mcp.CallToolRequest, input CreateInvoiceInput) (*mcp.CallToolResult, CreateInvoiceOutput, error) {
	if len(input.LineItems) == 0 {
		return nil, CreateInvoiceOutput{}, fmt.Errorf("at least one line item is required")
	}

	draft := models.NewDraftInvoice()
	draft.ClientID = models.ID(input.ClientID)
	if input.Status != "" {
		draft.Status = models.InvoiceStatus(input.Status)
	}
	for i, item := range input.LineItems {
		if i > 0 {
			draft.AddLineItem()
		}
		draft.UpdateDescription(i, item.Description)
		draft.UpdateQuantity(i, decimal.NewFromFloat(item.Quantity))
		draft.UpdateRate(i, decimal.NewFromFloat(item.Rate))
	}

	in := draft.Input(h.store.Clients())
	if err := h.store.CreateInvoice(ctx, in); err != nil {
		return nil, CreateInvoiceOutput{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil, CreateInvoiceOutput{
		Message: fmt.Sprintf("Invoice for %s created", in.ClientName),
		Total:   in.Total.InexactFloat64(),
	}, nil
}

func invoiceToOutput(inv models.Invoice) InvoiceOutput {
	items := make([]LineItemOutput, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = LineItemOutput{
			Description: li.Description,
			Quantity:    li.Quantity.InexactFloat64(),
			Rate:        li.Rate.InexactFloat64(),
			Amount:      li.Amount.InexactFloat64(),
		}
	}
	return InvoiceOutput{
		ID:         string(inv.ID),
		ClientID:   string(inv.ClientID),
		ClientName: inv.ClientName,
		Total:      inv.Total.InexactFloat64(),
		Status:     string(inv.Status),
		LineItems:  items,
		CreatedAt:  formatTime(inv.CreatedAt),
	}
}
