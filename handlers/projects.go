// ABOUTME: Project MCP tool handlers
// ABOUTME: Implements list_projects and add_project tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

type ProjectHandlers struct {
	store *store.Store
}

func NewProjectHandlers(s *store.Store) *ProjectHandlers {
	return &ProjectHandlers{store: s}
}

type ProjectOutput struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Amount     float64 `json:"amount"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name,omitempty"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

type ListProjectsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status (active, completed, on-hold)"`
}

type ListProjectsOutput struct {
	Projects []ProjectOutput `json:"projects"`
}

func (h *ProjectHandlers) ListProjects(_ context.Context, _ *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, ListProjectsOutput, error) {
	if input.Status != "" && !models.ProjectStatus(input.Status).Valid() {
		return nil, ListProjectsOutput{}, fmt.Errorf("invalid status: %s", input.Status)
	}

	result := []ProjectOutput{}
	for _, p := range h.store.Projects() {
		if input.Status != "" && string(p.Status) != input.Status {
			continue
		}
		result = append(result, projectToOutput(p))
	}
	return nil, ListProjectsOutput{Projects: result}, nil
}

type AddProjectInput struct {
	Title    string  `json:"title" jsonschema:"Project title (required)"`
	ClientID string  `json:"client_id" jsonschema:"ID of the client the project is for (required)"`
	Amount   float64 `json:"amount,omitempty" jsonschema:"Project value in dollars"`
	Status   string  `json:"status,omitempty" jsonschema:"active, completed or on-hold (default active)"`
}

func (h *ProjectHandlers) AddProject(ctx context.Context, _ *mcp.CallToolRequest, input AddProjectInput) (*mcp.CallToolResult, StatusOutput, error) {
	status := models.ProjectStatus(input.Status)
	if status == "" {
		status = models.ProjectActive
	}

	err := h.store.CreateProject(ctx, models.ProjectInput{
		Title:    input.Title,
		Amount:   decimal.NewFromFloat(input.Amount),
		ClientID: models.ID(input.ClientID),
		Status:   status,
	})
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("failed to add project: %w", err)
	}
	return nil, StatusOutput{Message: fmt.Sprintf("Project %q created", input.Title)}, nil
}

func projectToOutput(p models.Project) ProjectOutput {
	return ProjectOutput{
		ID:         string(p.ID),
		Title:      p.Title,
		Amount:     p.Amount.InexactFloat64(),
		ClientID:   string(p.ClientID),
		ClientName: p.ClientName,
		Status:     string(p.Status),
		CreatedAt:  formatTime(p.CreatedAt),
	}
}
