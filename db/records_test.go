// ABOUTME: Tests for users, sessions and the records repository
// ABOUTME: Runs against an in-memory SQLite database

package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestOpenDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "gateway.db")

	database, err := OpenDatabase(dbPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	var mode string
	require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	// Re-opening an initialized database is fine
	database.Close()
	database, err = OpenDatabase(dbPath)
	require.NoError(t, err)
	database.Close()
}

func TestUsersAndSessions(t *testing.T) {
	database := setupTestDB(t)

	user, err := CreateUser(database, "Ada", " Ada@Example.com ", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = CreateUser(database, "Other", "ada@example.com", "hash")
	assert.ErrorIs(t, err, ErrEmailTaken)

	found, err := GetUserByEmail(database, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = GetUser(database, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, CreateSession(database, "tok", user.ID))
	owner, err := UserForToken(database, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ada", owner.Name)

	require.NoError(t, DeleteSession(database, "tok"))
	_, err = UserForToken(database, "tok")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRecordsCRUD(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repo := NewRecordsRepository(database)

	alice, err := CreateUser(database, "Alice", "alice@example.com", "h")
	require.NoError(t, err)
	bob, err := CreateUser(database, "Bob", "bob@example.com", "h")
	require.NoError(t, err)

	first, err := repo.Create(ctx, alice.ID, "client", map[string]any{"name": "Acme", "id": 999})
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), first.ID, "client supplied id is ignored")

	second, err := repo.Create(ctx, alice.ID, "client", map[string]any{"name": "Globex", "phone": "+1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, bob.ID, "client", map[string]any{"name": "Initech"})
	require.NoError(t, err)

	list, err := repo.List(ctx, alice.ID, "client")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	empty, err := repo.List(ctx, alice.ID, "invoice")
	require.NoError(t, err)
	assert.Empty(t, empty)

	patched, err := repo.Patch(ctx, alice.ID, "client", second.ID, map[string]any{"name": "Globex Corp", "phone": nil})
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", patched.Fields["name"])
	assert.NotContains(t, patched.Fields, "phone")

	got, err := repo.Get(ctx, alice.ID, "client", second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", got.Fields["name"])

	_, err = repo.Get(ctx, bob.ID, "client", second.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound, "records are scoped per owner")

	doc := got.Document()
	assert.Equal(t, second.ID, doc["id"])
	assert.Equal(t, got.CreatedAt.UnixMilli(), doc["createdAt"])

	require.NoError(t, repo.Delete(ctx, alice.ID, "client", first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, alice.ID, "client", first.ID), ErrRecordNotFound)

	_, err = repo.Patch(ctx, alice.ID, "client", first.ID, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = repo.Create(ctx, alice.ID, "", nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
