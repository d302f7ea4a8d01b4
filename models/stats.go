// ABOUTME: Pure derived statistics over CRM collections
// ABOUTME: Earnings, project and invoice counts, client search and recency
package models

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TotalEarnings sums the totals of paid invoices.
func TotalEarnings(invoices []Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == InvoicePaid {
			total = total.Add(inv.Total)
		}
	}
	return total
}

func ActiveProjectCount(projects []Project) int {
	return ProjectStats(projects).Active
}

type ProjectCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	OnHold    int `json:"on_hold"`
}

func ProjectStats(projects []Project) ProjectCounts {
	var c ProjectCounts
	for _, p := range projects {
		switch p.Status {
		case ProjectActive:
			c.Active++
		case ProjectCompleted:
			c.Completed++
		case ProjectOnHold:
			c.OnHold++
		}
	}
	return c
}

// InvoiceCounts groups invoices by status. Pending counts sent invoices.
type InvoiceCounts struct {
	Draft   int `json:"draft"`
	Pending int `json:"pending"`
	Paid    int `json:"paid"`
	Overdue int `json:"overdue"`
}

func InvoiceStats(invoices []Invoice) InvoiceCounts {
	var c InvoiceCounts
	for _, inv := range invoices {
		switch inv.Status {
		case InvoiceDraft:
			c.Draft++
		case InvoiceSent:
			c.Pending++
		case InvoicePaid:
			c.Paid++
		case InvoiceOverdue:
			c.Overdue++
		}
	}
	return c
}

// FilterClients matches term against name and email ignoring case, and
// against phone as a plain substring. An empty term matches everything.
func FilterClients(clients []Client, term string) []Client {
	if term == "" {
		return clients
	}
	lower := strings.ToLower(term)
	var out []Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}

// ClientsAddedSince counts clients created at or after since.
func ClientsAddedSince(clients []Client, since time.Time) int {
	n := 0
	for _, c := range clients {
		if !c.CreatedAt.IsZero() && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n
}

// SortActivityNewestFirst returns a copy of entries ordered by timestamp,
// newest first. Entries with equal timestamps keep their relative order.
func SortActivityNewestFirst(entries []Activity) []Activity {
	out := make([]Activity, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp.Time)
	})
	return out
}
