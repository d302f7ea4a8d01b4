// ABOUTME: Tests for payload validation
// ABOUTME: Exercises required fields, email and phone rules, and money bounds
package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClientInput(t *testing.T) {
	tests := []struct {
		name    string
		input   ClientInput
		wantErr map[string]string
	}{
		{"valid", ClientInput{Name: "Acme", Email: "ops@acme.test", Phone: "+1 650-253-0000"}, nil},
		{"name only", ClientInput{Name: "Acme"}, nil},
		{"uk number", ClientInput{Name: "Acme", Phone: "+44 20 7031 3000"}, nil},
		{"missing name", ClientInput{Email: "ops@acme.test"}, map[string]string{"name": "required"}},
		{"bad email", ClientInput{Name: "Acme", Email: "nope"}, map[string]string{"email": "email"}},
		{"bad phone", ClientInput{Name: "Acme", Phone: "12"}, map[string]string{"phone": "phone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantErr, verr.Fields)
		})
	}
}

func TestValidateClientPatch(t *testing.T) {
	email := "not-an-email"
	err := Validate(ClientPatch{Email: &email})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Fields["email"])

	assert.NoError(t, Validate(ClientPatch{}))
}

func TestValidateProjectInput(t *testing.T) {
	ok := ProjectInput{Title: "Site", Amount: dec("2500"), ClientID: "1", Status: ProjectActive}
	assert.NoError(t, Validate(ok))

	bad := ProjectInput{Title: "Site", Amount: dec("-1"), ClientID: "1", Status: "archived"}
	var verr *ValidationError
	require.True(t, errors.As(Validate(bad), &verr))
	assert.Equal(t, "gte", verr.Fields["amount"])
	assert.Equal(t, "oneof", verr.Fields["status"])
}

func TestValidateInvoiceInput(t *testing.T) {
	empty := InvoiceInput{ClientID: "1", Status: InvoiceDraft}
	var verr *ValidationError
	require.True(t, errors.As(Validate(empty), &verr))
	assert.Equal(t, "required", verr.Fields["lineItems"])

	negative := InvoiceInput{
		ClientID:  "1",
		Status:    InvoiceDraft,
		LineItems: []LineItemInput{{Quantity: dec("1"), Rate: dec("-5")}},
	}
	require.True(t, errors.As(Validate(negative), &verr))
	assert.Equal(t, "gte", verr.Fields["lineItems[0].rate"])
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "phone", "name": "required"}}
	assert.Equal(t, "invalid name (required), phone (phone)", err.Error())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+1 650-253-0000", NormalizePhone("(650) 253-0000", "US"))
	assert.Equal(t, "garbage", NormalizePhone("garbage", "US"))
}
