// ABOUTME: Test helper wiring a store to a throwaway gateway and preference store
// ABOUTME: The returned store is already signed in as a fresh user

package store

import (
	"context"
	"testing"

	"github.com/harperreed/billfold/charm"
	"github.com/harperreed/billfold/devserver"
	"github.com/harperreed/billfold/gateway"
)

// NewTestStore starts a development gateway, registers ada@example.com
// and returns a store signed in as her.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	c, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)
	prefs := charm.NewPrefs(c)

	srv := devserver.NewTestServer(t)
	gw := gateway.New(gateway.Options{
		APIBase:    srv.URL + "/api",
		AuthBase:   srv.URL,
		Tokens:     prefs,
		HTTPClient: srv.Client(),
	})

	s, err := New(Options{Gateway: gw, Prefs: prefs})
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	if err := s.Register(context.Background(), "Ada", "ada@example.com", "secret"); err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}
	return s
}
