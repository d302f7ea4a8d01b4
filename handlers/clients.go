// ABOUTME: Client MCP tool handlers
// ABOUTME: Implements list_clients, add_client, update_client, and delete_client tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

type ClientHandlers struct {
	store *store.Store
}

func NewClientHandlers(s *store.Store) *ClientHandlers {
	return &ClientHandlers{store: s}
}

type ClientOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// StatusOutput is returned by tools that change data.
type StatusOutput struct {
	Message string `json:"message"`
}

type ListClientsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Case-insensitive match on name, email or phone"`
}

type ListClientsOutput struct {
	Clients []ClientOutput `json:"clients"`
}

func (h *ClientHandlers) ListClients(_ context.Context, _ *mcp.CallToolRequest, input ListClientsInput) (*mcp.CallToolResult, ListClientsOutput, error) {
	clients := h.store.SearchClients(input.Query)

	result := make([]ClientOutput, len(clients))
	for i, c := range clients {
		result[i] = clientToOutput(c)
	}
	return nil, ListClientsOutput{Clients: result}, nil
}

type AddClientInput struct {
	Name  string `json:"name" jsonschema:"Client name (required)"`
	Email string `json:"email,omitempty" jsonschema:"Client email address"`
	Phone string `json:"phone,omitempty" jsonschema:"Client phone number"`
}

func (h *ClientHandlers) AddClient(ctx context.Context, _ *mcp.CallToolRequest, input AddClientInput) (*mcp.CallToolResult, StatusOutput, error) {
	err := h.store.CreateClient(ctx, models.ClientInput{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to add client: %w", err)
	}
	return nil, StatusOutput{Message: fmt.Sprintf("Client %s added", input.Name)}, nil
}

type UpdateClientInput struct {
	ID    string  `json:"id" jsonschema:"Client ID (required)"`
	Name  *string `json:"name,omitempty" jsonschema:"New name"`
	Email *string `json:"email,omitempty" jsonschema:"New email address"`
	Phone *string `json:"phone,omitempty" jsonschema:"New phone number"`
}

func (h *ClientHandlers) UpdateClient(ctx context.Context, _ *mcp.CallToolRequest, input UpdateClientInput) (*mcp.CallToolResult, StatusOutput, error) {
	if input.ID == "" {
		return nil, StatusOutput{}, fmt.Errorf("id is required")
	}

	patch := models.ClientPatch{Name: input.Name, Email: input.Email, Phone: input.Phone}
	if err := h.store.UpdateClient(ctx, models.ID(input.ID), patch); err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to update client: %w", err)
	}
	return nil, StatusOutput{Message: fmt.Sprintf("Client %s updated", input.ID)}, nil
}

type DeleteInput struct {
	ID string `json:"id" jsonschema:"ID of the record to delete (required)"`
}

func (h *ClientHandlers) DeleteClient(ctx context.Context, _ *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, StatusOutput, error) {
	if input.ID == "" {
		return nil, StatusOutput{}, fmt.Errorf("id is required")
	}
	if err := h.store.DeleteClient(ctx, models.ID(input.ID)); err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to delete client: %w", err)
	}
	return nil, StatusOutput{Message: fmt.Sprintf("Client %s deleted", input.ID)}, nil
}

func clientToOutput(c models.Client) ClientOutput {
	return ClientOutput{
		ID:        string(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func formatTime(t models.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
