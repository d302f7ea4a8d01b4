// ABOUTME: Tests for dashboard statistics and the client graph
// ABOUTME: Builds snapshots by hand and checks the derived numbers and DOT output
package viz

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

func sampleSnapshot(now time.Time) store.Snapshot {
	return store.Snapshot{
		Clients: []models.Client{
			{ID: "1", Name: "Acme", Email: "ops@acme.test", CreatedAt: models.NewTimestamp(now.Add(-48 * time.Hour))},
			{ID: "2", Name: "Globex", CreatedAt: models.NewTimestamp(now.AddDate(0, -1, 0))},
		},
		Projects: []models.Project{
			{ID: "10", Title: "Website", Amount: decimal.NewFromInt(2500), ClientID: "1", Status: models.ProjectActive},
			{ID: "11", Title: "Audit", Amount: decimal.NewFromInt(800), ClientID: "2", Status: models.ProjectCompleted},
		},
		Invoices: []models.Invoice{
			{ID: "20", ClientID: "1", ClientName: "Acme", Total: decimal.NewFromInt(1000), Status: models.InvoicePaid},
			{ID: "21", ClientID: "1", ClientName: "Acme", Total: decimal.NewFromInt(300), Status: models.InvoiceSent},
			{ID: "22", ClientID: "2", ClientName: "Globex", Total: decimal.NewFromInt(450), Status: models.InvoiceOverdue},
		},
		Activities: []models.Activity{
			{ID: "30", Message: "New client Acme added", Type: models.ActivityClient, Timestamp: models.NewTimestamp(now.Add(-2 * time.Hour))},
			{ID: "31", Message: `New project "Website" created`, Type: models.ActivityProject, Timestamp: models.NewTimestamp(now.Add(-time.Minute))},
		},
	}
}

func TestGenerateDashboardStats(t *testing.T) {
	now := time.Now()
	stats := GenerateDashboardStats(sampleSnapshot(now), now)

	assert.True(t, stats.TotalEarnings.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stats.Outstanding.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 1, stats.NewClientsThisWeek)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, models.InvoiceCounts{Pending: 1, Paid: 1, Overdue: 1}, stats.Invoices)

	require.Len(t, stats.RecentActivity, 2)
	assert.Equal(t, `New project "Website" created`, stats.RecentActivity[0].Message)
	assert.Equal(t, "Just now", stats.RecentActivity[0].When)

	require.Len(t, stats.OverdueInvoices, 1)
	assert.Equal(t, "Globex", stats.OverdueInvoices[0].ClientName)
}

func TestRenderDashboard(t *testing.T) {
	now := time.Now()
	out := RenderDashboard(GenerateDashboardStats(sampleSnapshot(now), now))

	assert.Contains(t, out, "BILLFOLD DASHBOARD")
	assert.Contains(t, out, "$1,000 paid")
	assert.Contains(t, out, "$750 outstanding")
	assert.Contains(t, out, "2 clients (+1 this week)")
	assert.Contains(t, out, "NEEDS ATTENTION")
	assert.Contains(t, out, "invoice 22 for Globex is overdue ($450.00)")
}

func TestRenderDashboardEmpty(t *testing.T) {
	out := RenderDashboard(GenerateDashboardStats(store.Snapshot{}, time.Now()))

	assert.Contains(t, out, "$0 paid")
	assert.NotContains(t, out, "RECENT ACTIVITY")
	assert.NotContains(t, out, "NEEDS ATTENTION")
}

func TestGenerateClientGraph(t *testing.T) {
	dot, err := NewGraphGenerator(sampleSnapshot(time.Now())).GenerateClientGraph(context.Background())
	require.NoError(t, err)

	assert.Contains(t, dot, "client_1")
	assert.Contains(t, dot, "project_10")
	assert.Contains(t, dot, "invoice_22")
	assert.Contains(t, dot, "Globex")
}
