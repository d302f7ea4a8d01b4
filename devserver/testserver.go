// ABOUTME: Test helper that runs the development gateway on httptest
// ABOUTME: Each server gets its own in-memory database
package devserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/harperreed/billfold/db"
)

// NewTestServer starts a gateway backed by a fresh in-memory database.
// wrap, when given, decorates the handler (for injecting failures).
// The server and database are closed when the test ends.
func NewTestServer(t testing.TB, wrap ...func(http.Handler) http.Handler) *httptest.Server {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	var handler http.Handler = NewServer(database, WithHashCost(bcrypt.MinCost)).Routes()
	for _, w := range wrap {
		handler = w(handler)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		_ = database.Close()
	})
	return srv
}
