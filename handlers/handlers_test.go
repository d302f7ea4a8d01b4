// ABOUTME: Tests for the MCP tool, resource and prompt handlers
// ABOUTME: Runs each handler against a store backed by the development gateway
package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

func seedClient(t *testing.T, s *store.Store, name string) models.ID {
	t.Helper()
	h := NewClientHandlers(s)
	_, _, err := h.AddClient(context.Background(), nil, AddClientInput{Name: name})
	require.NoError(t, err)
	for _, c := range s.Clients() {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("client %s not found after add", name)
	return ""
}

func TestClientTools(t *testing.T) {
	s := store.NewTestStore(t)
	h := NewClientHandlers(s)
	ctx := context.Background()

	_, out, err := h.AddClient(ctx, nil, AddClientInput{Name: "Acme", Email: "ops@acme.test", Phone: "(650) 253-0000"})
	require.NoError(t, err)
	assert.Equal(t, "Client Acme added", out.Message)

	_, list, err := h.ListClients(ctx, nil, ListClientsInput{})
	require.NoError(t, err)
	require.Len(t, list.Clients, 1)
	assert.Equal(t, "+1 650-253-0000", list.Clients[0].Phone)
	assert.NotEmpty(t, list.Clients[0].CreatedAt)

	name := "Acme Inc"
	_, _, err = h.UpdateClient(ctx, nil, UpdateClientInput{ID: list.Clients[0].ID, Name: &name})
	require.NoError(t, err)

	_, list, err = h.ListClients(ctx, nil, ListClientsInput{Query: "inc"})
	require.NoError(t, err)
	require.Len(t, list.Clients, 1)

	_, _, err = h.DeleteClient(ctx, nil, DeleteInput{ID: list.Clients[0].ID})
	require.NoError(t, err)
	assert.Empty(t, s.Clients())
}

func TestAddClientRejectsInvalidInput(t *testing.T) {
	h := NewClientHandlers(store.NewTestStore(t))

	_, _, err := h.AddClient(context.Background(), nil, AddClientInput{Email: "ops@acme.test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name (required)")

	_, _, err = h.UpdateClient(context.Background(), nil, UpdateClientInput{})
	assert.EqualError(t, err, "id is required")
}

func TestProjectTools(t *testing.T) {
	s := store.NewTestStore(t)
	clientID := seedClient(t, s, "Acme")
	h := NewProjectHandlers(s)
	ctx := context.Background()

	_, out, err := h.AddProject(ctx, nil, AddProjectInput{Title: "Website", ClientID: string(clientID), Amount: 2500})
	require.NoError(t, err)
	assert.Equal(t, `Project "Website" created`, out.Message)

	_, list, err := h.ListProjects(ctx, nil, ListProjectsInput{Status: "active"})
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, "Acme", list.Projects[0].ClientName)
	assert.Equal(t, 2500.0, list.Projects[0].Amount)

	_, list, err = h.ListProjects(ctx, nil, ListProjectsInput{Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, list.Projects)

	_, _, err = h.ListProjects(ctx, nil, ListProjectsInput{Status: "archived"})
	assert.Error(t, err)
}

func TestInvoiceTools(t *testing.T) {
	s := store.NewTestStore(t)
	clientID := seedClient(t, s, "Acme")
	h := NewInvoiceHandlers(s)
	ctx := context.Background()

	_, out, err := h.CreateInvoice(ctx, nil, CreateInvoiceInput{
		ClientID: string(clientID),
		Status:   "sent",
		LineItems: []LineItemInput{
			{Description: "Design", Quantity: 2, Rate: 50},
			{Description: "Build", Quantity: 1, Rate: 100},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, out.Total)
	assert.Equal(t, "Invoice for Acme created", out.Message)

	_, list, err := h.ListInvoices(ctx, nil, ListInvoicesInput{ClientID: string(clientID)})
	require.NoError(t, err)
	require.Len(t, list.Invoices, 1)
	assert.Equal(t, "sent", list.Invoices[0].Status)
	require.Len(t, list.Invoices[0].LineItems, 2)
	assert.Equal(t, 100.0, list.Invoices[0].LineItems[0].Amount)

	_, _, err = h.CreateInvoice(ctx, nil, CreateInvoiceInput{ClientID: string(clientID)})
	assert.Error(t, err)
}

func TestDashboardTools(t *testing.T) {
	s := store.NewTestStore(t)
	clientID := seedClient(t, s, "Acme")
	ctx := context.Background()

	_, _, err := NewInvoiceHandlers(s).CreateInvoice(ctx, nil, CreateInvoiceInput{
		ClientID:  string(clientID),
		Status:    "paid",
		LineItems: []LineItemInput{{Description: "Retainer", Quantity: 1, Rate: 1200}},
	})
	require.NoError(t, err)

	h := NewDashboardHandlers(s)
	_, stats, err := h.DashboardStats(ctx, nil, DashboardStatsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stats.TotalEarnings)
	assert.Equal(t, 1, stats.ClientCount)
	assert.Equal(t, 1, stats.InvoicesByStatus["paid"])
	assert.Contains(t, stats.Summary, "$1,200 paid")

	_, feed, err := h.ListActivity(ctx, nil, ListActivityInput{Limit: 1})
	require.NoError(t, err)
	require.Len(t, feed.Activity, 1)
	assert.Equal(t, "New invoice sent to Acme", feed.Activity[0].Message)
	assert.Equal(t, "invoice", feed.Activity[0].Type)
}

func TestReadResource(t *testing.T) {
	s := store.NewTestStore(t)
	clientID := seedClient(t, s, "Acme")
	h := NewResourceHandlers(s)
	ctx := context.Background()

	res, err := h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "billfold://clients"}})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)

	var clients []models.Client
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)

	res, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "billfold://clients/" + string(clientID)}})
	require.NoError(t, err)
	assert.Contains(t, res.Contents[0].Text, `"name": "Acme"`)

	_, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "billfold://clients/nope"}})
	assert.Error(t, err)

	_, err = h.ReadResource(ctx, &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "crm://contacts"}})
	assert.Error(t, err)
}

func TestGetPrompt(t *testing.T) {
	s := store.NewTestStore(t)
	clientID := seedClient(t, s, "Acme")
	h := NewPromptHandlers(s)
	ctx := context.Background()

	res, err := h.GetPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{
		Name:      "client-summary",
		Arguments: map[string]string{"client_id": string(clientID)},
	}})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	text, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Name: Acme")

	_, err = h.GetPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{Name: "client-summary"}})
	assert.EqualError(t, err, "client_id is required")

	res, err = h.GetPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{Name: "earnings-review"}})
	require.NoError(t, err)
	assert.Equal(t, "Earnings review", res.Description)

	_, err = h.GetPrompt(ctx, &mcp.GetPromptRequest{Params: &mcp.GetPromptParams{Name: "nope"}})
	assert.Error(t, err)
}
