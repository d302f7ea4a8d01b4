// ABOUTME: Invoice line item math and the editable invoice draft
// ABOUTME: Keeps amount = quantity × rate and total = sum of amounts
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewLineItem returns a blank line item: quantity 1, rate 0, with a local id.
func NewLineItem() LineItem {
	item := LineItem{
		ID:       ID(uuid.New().String()),
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
	}
	item.Recompute()
	return item
}

// Recompute sets Amount from Quantity and Rate.
func (li *LineItem) Recompute() {
	li.Amount = li.Quantity.Mul(li.Rate)
}

func (li *LineItem) SetQuantity(q decimal.Decimal) {
	li.Quantity = q
	li.Recompute()
}

func (li *LineItem) SetRate(r decimal.Decimal) {
	li.Rate = r
	li.Recompute()
}

// SumLineItems adds up the amounts of items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// DraftInvoice is an invoice being composed before submission.
type DraftInvoice struct {
	ClientID  ID
	Status    InvoiceStatus
	LineItems []LineItem
}

// NewDraftInvoice starts a draft with a single blank line item.
func NewDraftInvoice() *DraftInvoice {
	return &DraftInvoice{
		Status:    InvoiceDraft,
		LineItems: []LineItem{NewLineItem()},
	}
}

// AddLineItem appends a blank line item and returns its index.
func (d *DraftInvoice) AddLineItem() int {
	d.LineItems = append(d.LineItems, NewLineItem())
	return len(d.LineItems) - 1
}

// RemoveLineItem drops the item at i. The last remaining item stays.
func (d *DraftInvoice) RemoveLineItem(i int) bool {
	if len(d.LineItems) <= 1 || i < 0 || i >= len(d.LineItems) {
		return false
	}
	d.LineItems = append(d.LineItems[:i], d.LineItems[i+1:]...)
	return true
}

func (d *DraftInvoice) item(i int) *LineItem {
	if i < 0 || i >= len(d.LineItems) {
		return nil
	}
	return &d.LineItems[i]
}

func (d *DraftInvoice) UpdateDescription(i int, desc string) {
	if item := d.item(i); item != nil {
		item.Description = desc
	}
}

func (d *DraftInvoice) UpdateQuantity(i int, q decimal.Decimal) {
	if item := d.item(i); item != nil {
		item.SetQuantity(q)
	}
}

func (d *DraftInvoice) UpdateRate(i int, r decimal.Decimal) {
	if item := d.item(i); item != nil {
		item.SetRate(r)
	}
}

func (d *DraftInvoice) Total() decimal.Decimal {
	return SumLineItems(d.LineItems)
}

// Input builds the submission payload. The client name is copied from
// clients and left empty when the client is not found.
func (d *DraftInvoice) Input(clients []Client) InvoiceInput {
	in := InvoiceInput{
		ClientID:   d.ClientID,
		ClientName: ClientName(clients, d.ClientID),
		Status:     d.Status,
		LineItems:  make([]LineItemInput, 0, len(d.LineItems)),
	}
	for _, item := range d.LineItems {
		item.Recompute()
		in.LineItems = append(in.LineItems, LineItemInput{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
		in.Total = in.Total.Add(item.Amount)
	}
	return in
}

// ClientName looks up the name of the client with id, or "".
func ClientName(clients []Client, id ID) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
