// ABOUTME: Tests for the terminal UI model
// ABOUTME: Drives key presses through Update and runs store commands synchronously
package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+s":    tea.KeyCtrlS,
}

func key(s string) tea.KeyMsg {
	if t, ok := specialKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and returns the command from the last one.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

// finish runs a store command and feeds its result back to the model.
func finish(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(opDoneMsg)
	require.True(t, ok, "expected a store command")
	next, _ := m.Update(msg)
	return next.(Model)
}

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.NewTestStore(t)
	return NewModel(context.Background(), s), s
}

func addClient(t *testing.T, s *store.Store, name string) {
	t.Helper()
	require.NoError(t, s.CreateClient(context.Background(), models.ClientInput{Name: name}))
}

func TestStartsOnAuthPageWhenSignedOut(t *testing.T) {
	s := store.NewTestStore(t)
	require.NoError(t, s.EndSession())

	m := NewModel(context.Background(), s)
	assert.Equal(t, PageAuth, m.page)
	assert.Contains(t, m.View(), "Sign in")

	m, _ = press(m, "ctrl+s")
	assert.True(t, m.auth.signup)
	assert.Contains(t, m.View(), "Create an account")
}

func TestLoginFlow(t *testing.T) {
	s := store.NewTestStore(t)
	require.NoError(t, s.EndSession())
	m := NewModel(context.Background(), s)

	m, _ = press(m, "ada@example.com", "tab", "secret")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, PageDashboard, m.page)
	assert.Contains(t, m.View(), "Welcome back, Ada")
}

func TestLoginFailureStaysOnAuthPage(t *testing.T) {
	s := store.NewTestStore(t)
	require.NoError(t, s.EndSession())
	m := NewModel(context.Background(), s)

	m, _ = press(m, "ada@example.com", "tab", "wrong")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, PageAuth, m.page)
	assert.NotEmpty(t, s.Err())
}

func TestAddClientThroughForm(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = press(m, "2", "a")
	require.Equal(t, ModeForm, m.mode)

	m, _ = press(m, "Acme", "tab", "ops@acme.test")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.Equal(t, ModeBrowse, m.mode)
	require.Len(t, s.Clients(), 1)
	assert.Equal(t, "Acme", s.Clients()[0].Name)
	assert.Contains(t, m.View(), "Client added")
}

func TestClientFormKeepsValidationErrors(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = press(m, "2", "a", "tab", "not-an-email")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.Equal(t, ModeForm, m.mode, "form stays open")
	assert.Contains(t, s.Err(), "name (required)")
	assert.Contains(t, m.View(), "Error:")
}

func TestClientSearch(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")
	addClient(t, s, "Globex")

	m, _ = press(m, "2", "/", "glob", "enter")
	assert.Equal(t, ModeBrowse, m.mode)
	require.Len(t, m.visibleClients(), 1)
	assert.Equal(t, "Globex", m.visibleClients()[0].Name)
	assert.NotContains(t, m.View(), "Acme")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")

	m, _ = press(m, "2", "d")
	assert.Equal(t, ModeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), "DELETE CONFIRMATION")

	m, _ = press(m, "n")
	assert.Equal(t, ModeBrowse, m.mode)
	assert.Len(t, s.Clients(), 1)

	m, _ = press(m, "d")
	m, cmd := press(m, "y")
	m = finish(t, m, cmd)
	assert.Equal(t, ModeBrowse, m.mode)
	assert.Empty(t, s.Clients())
}

func TestInvoiceFormLiveTotal(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")

	m, _ = press(m, "3", "i")
	require.Equal(t, ModeInvoiceForm, m.mode)

	// client, status, then description / qty / rate
	m, _ = press(m, "tab", "right", "tab", "Design", "tab", "backspace", "2", "tab", "backspace", "50")
	assert.True(t, m.invoice.draft.Total().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, models.InvoiceSent, m.invoice.draft.Status)
	assert.Contains(t, m.View(), "$100.00")

	m, _ = press(m, "ctrl+n", "Hosting", "tab", "tab", "backspace", "20")
	assert.Len(t, m.invoice.lines, 2)
	assert.True(t, m.invoice.draft.Total().Equal(decimal.NewFromInt(120)))

	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.Equal(t, ModeBrowse, m.mode)
	require.Len(t, s.Invoices(), 1)
	inv := s.Invoices()[0]
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Acme", inv.ClientName)
	assert.Len(t, inv.LineItems, 2)
}

func TestInvoiceFormRemoveKeepsLastLine(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")

	m, _ = press(m, "3", "i", "tab", "tab", "ctrl+d")
	assert.Len(t, m.invoice.lines, 1)

	m, _ = press(m, "ctrl+n", "ctrl+d")
	assert.Len(t, m.invoice.lines, 1)
	assert.Len(t, m.invoice.draft.LineItems, 1)
}

func TestProjectFormRejectsBadAmount(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")

	m, _ = press(m, "3", "p", "Site", "tab", "lots")
	m, cmd := press(m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, "amount must be a number", m.form.err)
}

func TestProjectStatusCycling(t *testing.T) {
	m, s := newTestModel(t)
	addClient(t, s, "Acme")

	m, _ = press(m, "3", "p", "Site", "tab", "900")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)
	require.Len(t, s.Projects(), 1)
	assert.Equal(t, "Acme", s.Projects()[0].ClientName)

	_, cmd = press(m, "s")
	finish(t, m, cmd)
	assert.Equal(t, models.ProjectCompleted, s.Projects()[0].Status)
}

func TestThemeToggleSwitchesImmediately(t *testing.T) {
	m, s := newTestModel(t)
	before := s.IsDarkMode()

	m, cmd := press(m, "4", "t")
	m = finish(t, m, cmd)

	assert.Equal(t, !before, s.IsDarkMode())
	want := "Light"
	if !before {
		want = "Dark"
	}
	assert.Contains(t, m.View(), want)
}

func TestLogoutConfirmation(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = press(m, "4", "L")
	assert.Equal(t, ModeConfirmLogout, m.mode)

	m, cmd := press(m, "y")
	m = finish(t, m, cmd)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, PageAuth, m.page)
	assert.Contains(t, m.View(), "Sign in")
}

func TestProfileEditIsLocal(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = press(m, "4", "e")
	require.Equal(t, ModeForm, m.mode)
	m.form.inputs[0].SetValue("Ada L")
	m, cmd := press(m, "enter")
	m = finish(t, m, cmd)

	assert.Equal(t, "Ada L", s.User().Name)
	assert.Contains(t, m.View(), "Ada L")
}
