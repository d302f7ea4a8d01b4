// ABOUTME: Persisted session preferences: the auth token and the theme
// ABOUTME: Missing keys read as empty values rather than errors

package charm

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

const (
	TokenKey = "token"
	ThemeKey = "crm-theme"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// KV is the storage Prefs needs. *Client satisfies it.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
}

type Prefs struct {
	kv KV
}

func NewPrefs(kv KV) *Prefs {
	return &Prefs{kv: kv}
}

func (p *Prefs) get(key string) (string, bool, error) {
	v, err := p.kv.Get([]byte(key))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(v), true, nil
}

// Token returns the persisted auth token, or "" when none is stored.
func (p *Prefs) Token() (string, error) {
	token, _, err := p.get(TokenKey)
	return token, err
}

func (p *Prefs) SetToken(token string) error {
	if err := p.kv.Set([]byte(TokenKey), []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (p *Prefs) ClearToken() error {
	if err := p.kv.Delete([]byte(TokenKey)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// Theme reports the stored theme. ok is false when no theme was ever saved.
func (p *Prefs) Theme() (dark bool, ok bool, err error) {
	v, ok, err := p.get(ThemeKey)
	if err != nil || !ok {
		return false, false, err
	}
	return v == ThemeDark, true, nil
}

func (p *Prefs) SetTheme(dark bool) error {
	v := ThemeLight
	if dark {
		v = ThemeDark
	}
	if err := p.kv.Set([]byte(ThemeKey), []byte(v)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
