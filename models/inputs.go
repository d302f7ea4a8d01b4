// ABOUTME: Request payloads sent to the gateway for create and update calls
// ABOUTME: Struct tags drive validation before anything leaves the process
package models

import (
	"github.com/shopspring/decimal"
)

type ClientInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

// ClientPatch is a partial client update; nil fields are left alone.
type ClientPatch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,phone"`
}

type ProjectInput struct {
	Title      string          `json:"title" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gte=0"`
	ClientID   ID              `json:"clientId" validate:"required"`
	ClientName string          `json:"clientName"`
	Status     ProjectStatus   `json:"status" validate:"required,oneof=active completed on-hold"`
}

type ProjectPatch struct {
	Title  *string          `json:"title,omitempty" validate:"omitempty,min=1"`
	Amount *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Status *ProjectStatus   `json:"status,omitempty" validate:"omitempty,oneof=active completed on-hold"`
}

type InvoiceInput struct {
	ClientID   ID              `json:"clientId" validate:"required"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total" validate:"gte=0"`
	Status     InvoiceStatus   `json:"status" validate:"required,oneof=draft sent paid overdue"`
	LineItems  []LineItemInput `json:"lineItems" validate:"required,min=1,dive"`
}

type LineItemInput struct {
	ID          ID              `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gte=0"`
	Rate        decimal.Decimal `json:"rate" validate:"gte=0"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoicePatch struct {
	Status *InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue"`
}

// UserPatch edits the local profile copy.
type UserPatch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type ActivityInput struct {
	Message   string       `json:"message" validate:"required"`
	Timestamp Timestamp    `json:"timestamp"`
	Type      ActivityType `json:"type" validate:"required,oneof=client project invoice"`
}
