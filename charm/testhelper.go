// ABOUTME: Test utilities for creating isolated preference stores
// ABOUTME: Backs the client with a throwaway BadgerDB directory

package charm

import (
	"path/filepath"
	"testing"
)

// NewTestClient opens a local-only client in a temp directory.
// The returned cleanup closes the database; the directory is removed by t.
func NewTestClient(t *testing.T) (*Client, func()) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), AppName)
	c, err := OpenLocal(dir, &Config{Host: "localhost", LocalOnly: true})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	cleanup := func() {
		if err := c.Close(); err != nil {
			t.Logf("Warning: failed to close test store: %v", err)
		}
	}
	return c, cleanup
}
