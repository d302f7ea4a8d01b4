// ABOUTME: HTTP-level tests for the development gateway
// ABOUTME: Exercises auth flows, bearer checks and record CRUD with raw requests
package devserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	t     *testing.T
	base  string
	token string
}

func (c apiCall) do(method, path, body string) (int, string) {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, string(data)
}

func signup(t *testing.T, base, email string) string {
	t.Helper()
	status, body := apiCall{t: t, base: base}.do(http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"`+email+`","password":"secret"}`)
	require.Equal(t, http.StatusOK, status, body)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.AuthToken)
	return resp.AuthToken
}

func TestSignupLoginMe(t *testing.T) {
	srv := NewTestServer(t)
	anon := apiCall{t: t, base: srv.URL}

	token := signup(t, srv.URL, "ada@example.com")

	status, body := anon.do(http.MethodPost, "/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "already in use")

	status, body = anon.do(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "Invalid Credentials.")

	status, body = anon.do(http.MethodPost, "/auth/login", `{"email":"ADA@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, status)
	var login tokenResponse
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	assert.NotEqual(t, token, login.AuthToken, "each login issues a new token")

	status, body = apiCall{t: t, base: srv.URL, token: login.AuthToken}.do(http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Ada","email":"ada@example.com"}`, body)
}

func TestSignupRequiresFields(t *testing.T) {
	srv := NewTestServer(t)
	status, _ := apiCall{t: t, base: srv.URL}.do(http.MethodPost, "/auth/signup", `{"email":"a@b.c"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestBearerRequired(t *testing.T) {
	srv := NewTestServer(t)

	status, _ := apiCall{t: t, base: srv.URL}.do(http.MethodGet, "/api/client", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = apiCall{t: t, base: srv.URL, token: "bogus"}.do(http.MethodGet, "/api/client", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = apiCall{t: t, base: srv.URL, token: "bogus"}.do(http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRecordCRUD(t *testing.T) {
	srv := NewTestServer(t)
	api := apiCall{t: t, base: srv.URL, token: signup(t, srv.URL, "ada@example.com")}

	status, body := api.do(http.MethodGet, "/api/client", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = api.do(http.MethodPost, "/api/client", `{"name":"Acme","email":"ops@acme.test","phone":""}`)
	require.Equal(t, http.StatusOK, status)
	var created map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Acme", created["name"])
	assert.NotNil(t, created["createdAt"])

	status, body = api.do(http.MethodPatch, "/api/client/1", `{"name":"Acme Corp"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"Acme Corp"`)
	assert.Contains(t, body, `"email":"ops@acme.test"`)

	status, body = api.do(http.MethodPost, "/api/project", `{"title":"Site","amount":2500.50,"clientId":1}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"amount":2500.50`)

	status, _ = api.do(http.MethodGet, "/api/client/1", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = api.do(http.MethodDelete, "/api/client/1", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = api.do(http.MethodGet, "/api/client/1", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(http.MethodGet, "/api/client/abc", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(http.MethodPost, "/api/client", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnknownResource(t *testing.T) {
	srv := NewTestServer(t)
	api := apiCall{t: t, base: srv.URL, token: signup(t, srv.URL, "ada@example.com")}

	status, body := api.do(http.MethodGet, "/api/widgets", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, codeNotFound)
}

func TestRecordsAreScopedPerUser(t *testing.T) {
	srv := NewTestServer(t)
	ada := apiCall{t: t, base: srv.URL, token: signup(t, srv.URL, "ada@example.com")}
	bob := apiCall{t: t, base: srv.URL, token: signup(t, srv.URL, "bob@example.com")}

	status, _ := ada.do(http.MethodPost, "/api/invoice", `{"clientId":1,"total":10,"status":"draft","lineItems":[]}`)
	require.Equal(t, http.StatusOK, status)

	status, body := bob.do(http.MethodGet, "/api/invoice", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, _ = bob.do(http.MethodDelete, "/api/invoice/1", "")
	assert.Equal(t, http.StatusNotFound, status)
}
