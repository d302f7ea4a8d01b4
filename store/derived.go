// ABOUTME: Read-only figures computed from the store's collections
// ABOUTME: Earnings, counts, search and the activity feed

package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
)

// TotalEarnings sums paid invoice totals.
func (s *Store) TotalEarnings() decimal.Decimal {
	return models.TotalEarnings(s.Invoices())
}

func (s *Store) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Store) ActiveProjectCount() int {
	return models.ActiveProjectCount(s.Projects())
}

// ActivityFeed returns the activity log newest first.
func (s *Store) ActivityFeed() []models.Activity {
	return models.SortActivityNewestFirst(s.Activities())
}

func (s *Store) SearchClients(term string) []models.Client {
	return models.FilterClients(s.Clients(), term)
}

func (s *Store) ClientsAddedSince(t time.Time) int {
	return models.ClientsAddedSince(s.Clients(), t)
}

// NewClientsThisWeek counts clients created in the last seven days.
func (s *Store) NewClientsThisWeek() int {
	return s.ClientsAddedSince(s.now().AddDate(0, 0, -7))
}

func (s *Store) ProjectStats() models.ProjectCounts {
	return models.ProjectStats(s.Projects())
}

func (s *Store) InvoiceStats() models.InvoiceCounts {
	return models.InvoiceStats(s.Invoices())
}
