// ABOUTME: Tests for derived statistics and display formatting
// ABOUTME: Earnings, counts, client search, activity ordering and relative time
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalEarningsCountsPaidOnly(t *testing.T) {
	invoices := []Invoice{
		{Total: dec("1000"), Status: InvoicePaid},
		{Total: dec("500"), Status: InvoiceSent},
		{Total: dec("250.50"), Status: InvoicePaid},
		{Total: dec("75"), Status: InvoiceOverdue},
	}

	assert.True(t, TotalEarnings(invoices).Equal(dec("1250.5")))
	assert.True(t, TotalEarnings(nil).IsZero())
}

func TestProjectAndInvoiceStats(t *testing.T) {
	projects := []Project{
		{Status: ProjectActive}, {Status: ProjectActive}, {Status: ProjectCompleted}, {Status: ProjectOnHold},
	}
	assert.Equal(t, ProjectCounts{Active: 2, Completed: 1, OnHold: 1}, ProjectStats(projects))
	assert.Equal(t, 2, ActiveProjectCount(projects))

	invoices := []Invoice{{Status: InvoiceSent}, {Status: InvoicePaid}, {Status: InvoiceSent}}
	assert.Equal(t, InvoiceCounts{Pending: 2, Paid: 1}, InvoiceStats(invoices))
}

func TestFilterClients(t *testing.T) {
	clients := []Client{
		{ID: "1", Name: "Acme Corp", Email: "ops@acme.test", Phone: "+1 650-253-0000"},
		{ID: "2", Name: "Globex", Email: "hello@GLOBEX.test", Phone: "+44 20 7031 3000"},
	}

	assert.Len(t, FilterClients(clients, ""), 2)
	assert.Equal(t, ID("1"), FilterClients(clients, "acme")[0].ID)
	assert.Equal(t, ID("2"), FilterClients(clients, "globex.TEST")[0].ID)
	assert.Equal(t, ID("2"), FilterClients(clients, "7031")[0].ID)
	assert.Empty(t, FilterClients(clients, "initech"))
}

func TestClientsAddedSince(t *testing.T) {
	now := time.Now()
	clients := []Client{
		{CreatedAt: NewTimestamp(now.Add(-24 * time.Hour))},
		{CreatedAt: NewTimestamp(now.Add(-10 * 24 * time.Hour))},
		{},
	}
	assert.Equal(t, 1, ClientsAddedSince(clients, now.AddDate(0, 0, -7)))
}

func TestSortActivityNewestFirst(t *testing.T) {
	now := time.Now()
	entries := []Activity{
		{ID: "old", Timestamp: NewTimestamp(now.Add(-2 * time.Hour))},
		{ID: "new", Timestamp: NewTimestamp(now)},
		{ID: "mid", Timestamp: NewTimestamp(now.Add(-time.Hour))},
	}

	sorted := SortActivityNewestFirst(entries)
	assert.Equal(t, []ID{"new", "mid", "old"}, []ID{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, ID("old"), entries[0].ID, "input is not reordered")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$2,500", FormatCurrency(dec("2500")))
	assert.Equal(t, "$0", FormatCurrency(dec("0")))
	assert.Equal(t, "$200.00", FormatMoney(dec("200")))
	assert.Equal(t, "$1,234.50", FormatMoney(dec("1234.5")))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	assert.Equal(t, "Just now", RelativeTime(now.Add(-10*time.Minute), now))
	assert.Equal(t, "3h ago", RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Yesterday", RelativeTime(now.Add(-30*time.Hour), now))
	assert.Equal(t, "May 1, 2024", RelativeTime(time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local), now))
}
