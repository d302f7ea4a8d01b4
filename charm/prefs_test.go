// ABOUTME: Tests for the preference store and session prefs
// ABOUTME: Runs against a throwaway BadgerDB directory

package charm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsTokenLifecycle(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()
	prefs := NewPrefs(c)

	token, err := prefs.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, prefs.SetToken("abc123"))
	token, err = prefs.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, prefs.ClearToken())
	token, err = prefs.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine
	require.NoError(t, prefs.ClearToken())
}

func TestPrefsTheme(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()
	prefs := NewPrefs(c)

	_, ok, err := prefs.Theme()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, prefs.SetTheme(true))
	raw, err := c.Get([]byte(ThemeKey))
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))

	dark, ok, err := prefs.Theme()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, dark)

	require.NoError(t, prefs.SetTheme(false))
	dark, _, err = prefs.Theme()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestClientKeysWithPrefix(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	require.NoError(t, c.Set([]byte("crm-theme"), []byte("dark")))
	require.NoError(t, c.Set([]byte("crm-extra"), []byte("x")))
	require.NoError(t, c.Set([]byte("token"), []byte("t")))

	keys, err := c.KeysWithPrefix([]byte("crm-"))
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	require.NoError(t, c.Reset())
	keys, err = c.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestPrefsStatusAndReset(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()
	prefs := NewPrefs(c)
	require.NoError(t, prefs.SetToken("abc"))
	require.NoError(t, prefs.SetTheme(true))

	var out bytes.Buffer
	require.NoError(t, PrefsStatusCommand(c, &out, nil))
	assert.Contains(t, out.String(), "local only")
	assert.Contains(t, out.String(), "Signed in: true")
	assert.Contains(t, out.String(), "Theme:     dark")

	out.Reset()
	require.NoError(t, PrefsResetCommand(c, &out, nil))
	assert.Contains(t, out.String(), "--confirm")
	token, _ := prefs.Token()
	assert.Equal(t, "abc", token, "reset without confirm keeps data")

	out.Reset()
	require.NoError(t, PrefsResetCommand(c, &out, []string{"--confirm"}))
	token, _ = prefs.Token()
	assert.Empty(t, token)

	out.Reset()
	require.NoError(t, PrefsSyncCommand(c, &out, nil))
	assert.Contains(t, out.String(), "nothing to sync")
}
