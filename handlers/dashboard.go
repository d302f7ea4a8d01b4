// ABOUTME: Dashboard and activity MCP tool handlers
// ABOUTME: Implements dashboard_stats and list_activity tools
package handlers

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
	"github.com/harperreed/billfold/viz"
)

type DashboardHandlers struct {
	store *store.Store
	now   func() time.Time
}

func NewDashboardHandlers(s *store.Store) *DashboardHandlers {
	return &DashboardHandlers{store: s, now: time.Now}
}

type DashboardStatsInput struct{}

type DashboardStatsOutput struct {
	TotalEarnings      float64        `json:"total_earnings"`
	Outstanding        float64        `json:"outstanding"`
	ClientCount        int            `json:"client_count"`
	NewClientsThisWeek int            `json:"new_clients_this_week"`
	ActiveProjects     int            `json:"active_projects"`
	ProjectsByStatus   map[string]int `json:"projects_by_status"`
	InvoicesByStatus   map[string]int `json:"invoices_by_status"`
	Summary            string         `json:"summary"`
}

func (h *DashboardHandlers) DashboardStats(_ context.Context, _ *mcp.CallToolRequest, _ DashboardStatsInput) (*mcp.CallToolResult, DashboardStatsOutput, error) {
	stats := viz.GenerateDashboardStats(h.store.Snapshot(), h.now())

	return nil, DashboardStatsOutput{
		TotalEarnings:      stats.TotalEarnings.InexactFloat64(),
		Outstanding:        stats.Outstanding.InexactFloat64(),
		ClientCount:        stats.TotalClients,
		NewClientsThisWeek: stats.NewClientsThisWeek,
		ActiveProjects:     stats.ActiveProjects,
		ProjectsByStatus: map[string]int{
			string(models.ProjectActive):    stats.Projects.Active,
			string(models.ProjectCompleted): stats.Projects.Completed,
			string(models.ProjectOnHold):    stats.Projects.OnHold,
		},
		InvoicesByStatus: map[string]int{
			string(models.InvoiceDraft):   stats.Invoices.Draft,
			"pending":                     stats.Invoices.Pending,
			string(models.InvoicePaid):    stats.Invoices.Paid,
			string(models.InvoiceOverdue): stats.Invoices.Overdue,
		},
		Summary: viz.RenderDashboard(stats),
	}, nil
}

type ListActivityInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of entries (default 10)"`
}

type ActivityOutput struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	When      string `json:"when"`
}

type ListActivityOutput struct {
	Activity []ActivityOutput `json:"activity"`
}

func (h *DashboardHandlers) ListActivity(_ context.Context, _ *mcp.CallToolRequest, input ListActivityInput) (*mcp.CallToolResult, ListActivityOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	now := h.now()
	result := []ActivityOutput{}
	for _, entry := range h.store.ActivityFeed() {
		if len(result) == limit {
			break
		}
		result = append(result, ActivityOutput{
			Message:   entry.Message,
			Type:      string(entry.Type),
			Timestamp: formatTime(entry.Timestamp),
			When:      models.RelativeTime(entry.Timestamp.Time, now),
		})
	}
	return nil, ListActivityOutput{Activity: result}, nil
}
