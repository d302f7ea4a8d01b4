// ABOUTME: Dashboard page
// ABOUTME: Earnings, client and project counts, and the latest activity
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

const dashboardActivity = 8

func (m Model) renderDashboardView(st styles, snap store.Snapshot) string {
	card := func(label, value, note string) string {
		body := st.label.Render(label) + "\n" + st.value.Render(value)
		if note != "" {
			body += "\n" + st.label.Render(note)
		}
		return st.card.Render(body)
	}

	newThisWeek := models.ClientsAddedSince(snap.Clients, time.Now().AddDate(0, 0, -7))
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total earnings", models.FormatCurrency(models.TotalEarnings(snap.Invoices)), "paid invoices"),
		card("Clients", fmt.Sprint(len(snap.Clients)), fmt.Sprintf("+%d this week", newThisWeek)),
		card("Active projects", fmt.Sprint(models.ActiveProjectCount(snap.Projects)), ""),
	)

	var s strings.Builder
	if snap.User != nil && snap.User.Name != "" {
		s.WriteString(st.label.Render("Welcome back, " + snap.User.Name))
		s.WriteString("\n\n")
	}
	s.WriteString(cards)
	s.WriteString("\n\n")
	s.WriteString(st.title.Render("Recent activity"))
	s.WriteString("\n")

	feed := models.SortActivityNewestFirst(snap.Activities)
	if len(feed) == 0 {
		s.WriteString(st.label.Render("Nothing yet. Add a client to get started."))
		s.WriteString("\n")
	}
	now := time.Now()
	for i, entry := range feed {
		if i == dashboardActivity {
			break
		}
		s.WriteString(fmt.Sprintf("  %s %s %s\n",
			activityIcon(entry.Type),
			entry.Message,
			st.label.Render(models.RelativeTime(entry.Timestamp.Time, now))))
	}

	s.WriteString(st.help.Render("1-4: Pages • r: Refresh • q: Quit"))
	return s.String()
}

func activityIcon(t models.ActivityType) string {
	switch t {
	case models.ActivityClient:
		return "👤"
	case models.ActivityProject:
		return "📁"
	case models.ActivityInvoice:
		return "🧾"
	}
	return "•"
}
