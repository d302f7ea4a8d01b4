// ABOUTME: MCP resource handlers for exposing freelancing data
// ABOUTME: Provides read-only JSON views of clients, projects, invoices and activity by URI
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/billfold/store"
)

const resourceScheme = "billfold://"

type ResourceHandlers struct {
	store *store.Store
}

func NewResourceHandlers(s *store.Store) *ResourceHandlers {
	return &ResourceHandlers{store: s}
}

// Resources lists the fixed URIs ReadResource serves.
func Resources() []*mcp.Resource {
	return []*mcp.Resource{
		{URI: resourceScheme + "clients", Name: "clients", Description: "All clients", MIMEType: "application/json"},
		{URI: resourceScheme + "projects", Name: "projects", Description: "All projects", MIMEType: "application/json"},
		{URI: resourceScheme + "invoices", Name: "invoices", Description: "All invoices with line items", MIMEType: "application/json"},
		{URI: resourceScheme + "activity", Name: "activity", Description: "Activity log, newest first", MIMEType: "application/json"},
	}
}

// ResourceTemplates lists the per-record URIs ReadResource serves.
func ResourceTemplates() []*mcp.ResourceTemplate {
	return []*mcp.ResourceTemplate{
		{URITemplate: resourceScheme + "clients/{id}", Name: "client", MIMEType: "application/json"},
		{URITemplate: resourceScheme + "invoices/{id}", Name: "invoice", MIMEType: "application/json"},
	}
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(_ context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, resourceScheme), "/")
	var payload any

	switch parts[0] {
	case "clients":
		if len(parts) == 1 {
			payload = h.store.Clients()
			break
		}
		for _, c := range h.store.Clients() {
			if string(c.ID) == parts[1] {
				payload = c
			}
		}

	case "projects":
		payload = h.store.Projects()

	case "invoices":
		if len(parts) == 1 {
			payload = h.store.Invoices()
			break
		}
		for _, inv := range h.store.Invoices() {
			if string(inv.ID) == parts[1] {
				payload = inv
			}
		}

	case "activity":
		payload = h.store.ActivityFeed()

	default:
		return nil, fmt.Errorf("unknown resource: %s", parts[0])
	}

	if payload == nil {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", parts[0], err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
