// ABOUTME: Tests for line item arithmetic and the invoice draft
// ABOUTME: Checks amount recomputation, removal rules and submission payloads
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewLineItemDefaults(t *testing.T) {
	item := NewLineItem()

	assert.NotEmpty(t, item.ID)
	assert.True(t, item.Quantity.Equal(dec("1")))
	assert.True(t, item.Rate.IsZero())
	assert.True(t, item.Amount.IsZero())
}

func TestLineItemRecomputesOnEdit(t *testing.T) {
	item := NewLineItem()
	item.SetRate(dec("100"))
	assert.True(t, item.Amount.Equal(dec("100")))

	item.SetQuantity(dec("2.5"))
	assert.True(t, item.Amount.Equal(dec("250")))
}

func TestDraftStartsWithOneItem(t *testing.T) {
	d := NewDraftInvoice()

	require.Len(t, d.LineItems, 1)
	assert.Equal(t, InvoiceDraft, d.Status)
	assert.False(t, d.RemoveLineItem(0), "last item must stay")
	assert.Len(t, d.LineItems, 1)
}

func TestDraftAddRemove(t *testing.T) {
	d := NewDraftInvoice()
	idx := d.AddLineItem()
	assert.Equal(t, 1, idx)
	d.UpdateDescription(1, "Design")

	assert.True(t, d.RemoveLineItem(0))
	require.Len(t, d.LineItems, 1)
	assert.Equal(t, "Design", d.LineItems[0].Description)

	assert.False(t, d.RemoveLineItem(5))
}

func TestDraftTotalAndInput(t *testing.T) {
	clients := []Client{{ID: "1", Name: "Acme"}, {ID: "2", Name: "Globex"}}

	d := NewDraftInvoice()
	d.ClientID = "2"
	d.Status = InvoiceSent
	d.UpdateDescription(0, "Design")
	d.UpdateQuantity(0, dec("2"))
	d.UpdateRate(0, dec("100"))
	d.AddLineItem()
	d.UpdateRate(1, dec("50"))

	assert.True(t, d.Total().Equal(dec("250")))

	in := d.Input(clients)
	assert.Equal(t, ID("2"), in.ClientID)
	assert.Equal(t, "Globex", in.ClientName)
	assert.Equal(t, InvoiceSent, in.Status)
	assert.True(t, in.Total.Equal(dec("250")))
	require.Len(t, in.LineItems, 2)
	assert.True(t, in.LineItems[0].Amount.Equal(dec("200")))
}

func TestDraftInputUnknownClient(t *testing.T) {
	d := NewDraftInvoice()
	d.ClientID = "99"

	in := d.Input([]Client{{ID: "1", Name: "Acme"}})
	assert.Equal(t, "", in.ClientName)
}
