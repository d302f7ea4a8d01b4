// ABOUTME: Data models for freelancer CRM entities
// ABOUTME: Defines Client, Project, Invoice, LineItem, User, and Activity structs
package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The gateway stores money as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Client struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt Timestamp `json:"createdAt"`
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// ProjectStatuses lists project statuses in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold}

// Project carries a copy of the client's name taken at creation time.
// Renaming the client later does not touch it.
type Project struct {
	ID         ID              `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	ClientID   ID              `json:"clientId"`
	ClientName string          `json:"clientName"`
	Status     ProjectStatus   `json:"status"`
	CreatedAt  Timestamp       `json:"createdAt"`
}

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists invoice statuses in display order.
var InvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue}

type Invoice struct {
	ID         ID              `json:"id"`
	ClientID   ID              `json:"clientId"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	Status     InvoiceStatus   `json:"status"`
	LineItems  []LineItem      `json:"lineItems"`
	CreatedAt  Timestamp       `json:"createdAt"`
}

type LineItem struct {
	ID          ID              `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ActivityType string

const (
	ActivityClient  ActivityType = "client"
	ActivityProject ActivityType = "project"
	ActivityInvoice ActivityType = "invoice"
)

type Activity struct {
	ID        ID           `json:"id"`
	Message   string       `json:"message"`
	Timestamp Timestamp    `json:"timestamp"`
	Type      ActivityType `json:"type"`
}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	for _, known := range InvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the status after s in display order, wrapping around.
func (s ProjectStatus) Next() ProjectStatus {
	for i, known := range ProjectStatuses {
		if s == known {
			return ProjectStatuses[(i+1)%len(ProjectStatuses)]
		}
	}
	return ProjectActive
}

// Next returns the status after s in display order, wrapping around.
func (s InvoiceStatus) Next() InvoiceStatus {
	for i, known := range InvoiceStatuses {
		if s == known {
			return InvoiceStatuses[(i+1)%len(InvoiceStatuses)]
		}
	}
	return InvoiceDraft
}
