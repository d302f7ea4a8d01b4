// ABOUTME: Tests for gateway wire types
// ABOUTME: Covers numeric and string ids, RFC 3339 and epoch-millisecond timestamps
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDecodesNumberOrString(t *testing.T) {
	var fromNumber, fromString, fromNull ID
	require.NoError(t, json.Unmarshal([]byte(`12`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"12"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))

	assert.Equal(t, ID("12"), fromNumber)
	assert.Equal(t, ID("12"), fromString)
	assert.Equal(t, ID(""), fromNull)
}

func TestIDEncoding(t *testing.T) {
	numeric, err := json.Marshal(ID("42"))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(numeric))

	text, err := json.Marshal(ID("f47ac10b-58cc"))
	require.NoError(t, err)
	assert.Equal(t, `"f47ac10b-58cc"`, string(text))

	padded, err := json.Marshal(ID("007"))
	require.NoError(t, err)
	assert.Equal(t, `"007"`, string(padded))

	zero, err := json.Marshal(ID("0"))
	require.NoError(t, err)
	assert.Equal(t, `0`, string(zero))

	payload, err := json.Marshal(ProjectInput{Title: "Site", ClientID: "007"})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"clientId":"007"`)

	empty, err := json.Marshal(ID(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(empty))
}

func TestTimestampDecoding(t *testing.T) {
	var millis, rfc, empty Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1700000000000`), &millis))
	require.NoError(t, json.Unmarshal([]byte(`"2023-11-14T22:13:20Z"`), &rfc))
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))

	want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	assert.True(t, millis.Equal(want))
	assert.True(t, rfc.Equal(want))
	assert.True(t, empty.IsZero())

	var bad Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}

func TestClientDecodesGatewayRecord(t *testing.T) {
	body := `{"id":7,"name":"Acme","email":"ops@acme.test","phone":"","createdAt":1700000000000}`

	var c Client
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	assert.Equal(t, ID("7"), c.ID)
	assert.Equal(t, "Acme", c.Name)
	assert.Equal(t, 2023, c.CreatedAt.Year())
}

func TestInvoiceMoneyEncodesAsNumbers(t *testing.T) {
	in := InvoiceInput{
		ClientID: "3",
		Total:    decimal.RequireFromString("200.5"),
		Status:   InvoiceSent,
		LineItems: []LineItemInput{{
			ID:       "a",
			Quantity: decimal.NewFromInt(2),
			Rate:     decimal.RequireFromString("100.25"),
			Amount:   decimal.RequireFromString("200.5"),
		}},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"clientId":3`)
	assert.Contains(t, string(data), `"total":200.5`)
	assert.Contains(t, string(data), `"rate":100.25`)
}
