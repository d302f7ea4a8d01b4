// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Summarizes earnings, clients, project and invoice status, and recent activity
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

const recentActivityLimit = 5

type DashboardStats struct {
	TotalEarnings      decimal.Decimal
	Outstanding        decimal.Decimal
	TotalClients       int
	NewClientsThisWeek int
	ActiveProjects     int

	Projects models.ProjectCounts
	Invoices models.InvoiceCounts

	RecentActivity []ActivityItem

	// Needs attention
	OverdueInvoices []OverdueInvoice
}

type ActivityItem struct {
	When    string
	Type    models.ActivityType
	Message string
}

type OverdueInvoice struct {
	ID         models.ID
	ClientName string
	Total      decimal.Decimal
}

// GenerateDashboardStats derives the dashboard from a store snapshot.
// Outstanding is the sum of sent and overdue invoice totals.
func GenerateDashboardStats(snap store.Snapshot, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalEarnings:      models.TotalEarnings(snap.Invoices),
		Outstanding:        decimal.Zero,
		TotalClients:       len(snap.Clients),
		NewClientsThisWeek: models.ClientsAddedSince(snap.Clients, now.AddDate(0, 0, -7)),
		ActiveProjects:     models.ActiveProjectCount(snap.Projects),
		Projects:           models.ProjectStats(snap.Projects),
		Invoices:           models.InvoiceStats(snap.Invoices),
	}

	for _, inv := range snap.Invoices {
		switch inv.Status {
		case models.InvoiceSent:
			stats.Outstanding = stats.Outstanding.Add(inv.Total)
		case models.InvoiceOverdue:
			stats.Outstanding = stats.Outstanding.Add(inv.Total)
			stats.OverdueInvoices = append(stats.OverdueInvoices, OverdueInvoice{
				ID:         inv.ID,
				ClientName: inv.ClientName,
				Total:      inv.Total,
			})
		}
	}

	for i, entry := range models.SortActivityNewestFirst(snap.Activities) {
		if i == recentActivityLimit {
			break
		}
		stats.RecentActivity = append(stats.RecentActivity, ActivityItem{
			When:    models.RelativeTime(entry.Timestamp.Time, now),
			Type:    entry.Type,
			Message: entry.Message,
		})
	}

	return stats
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  BILLFOLD DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("EARNINGS\n")
	out.WriteString(fmt.Sprintf("  💰 %s paid  ⏳ %s outstanding\n\n",
		models.FormatCurrency(stats.TotalEarnings), models.FormatCurrency(stats.Outstanding)))

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  👥 %d clients (+%d this week)  📁 %d active projects\n\n",
		stats.TotalClients, stats.NewClientsThisWeek, stats.ActiveProjects))

	out.WriteString("PROJECTS\n")
	renderBars(&out, []bar{
		{string(models.ProjectActive), stats.Projects.Active},
		{string(models.ProjectCompleted), stats.Projects.Completed},
		{string(models.ProjectOnHold), stats.Projects.OnHold},
	})
	out.WriteString("\n")

	out.WriteString("INVOICES\n")
	renderBars(&out, []bar{
		{string(models.InvoiceDraft), stats.Invoices.Draft},
		{"pending", stats.Invoices.Pending},
		{string(models.InvoicePaid), stats.Invoices.Paid},
		{string(models.InvoiceOverdue), stats.Invoices.Overdue},
	})
	out.WriteString("\n")

	if len(stats.RecentActivity) > 0 {
		out.WriteString("RECENT ACTIVITY\n")
		for _, item := range stats.RecentActivity {
			out.WriteString(fmt.Sprintf("  %-12s %s\n", item.When, item.Message))
		}
		out.WriteString("\n")
	}

	if len(stats.OverdueInvoices) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		for _, inv := range stats.OverdueInvoices {
			out.WriteString(fmt.Sprintf("  ⚠️  invoice %s for %s is overdue (%s)\n",
				inv.ID, inv.ClientName, models.FormatMoney(inv.Total)))
		}
	}

	return out.String()
}

type bar struct {
	label string
	count int
}

func renderBars(out *strings.Builder, bars []bar) {
	maxCount := 0
	for _, b := range bars {
		if b.count > maxCount {
			maxCount = b.count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, b := range bars {
		length := (b.count * 10) / maxCount
		out.WriteString(fmt.Sprintf("  %-10s %s  %2d\n",
			b.label, strings.Repeat("█", length)+strings.Repeat("░", 10-length), b.count))
	}
}
