// ABOUTME: Confirmation dialogs for deletes and logout
// ABOUTME: Nothing is removed until the user answers y
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/billfold/models"
)

type deleteTarget int

const (
	deleteClient deleteTarget = iota
	deleteProject
	deleteInvoice
)

func (t deleteTarget) String() string {
	switch t {
	case deleteClient:
		return "client"
	case deleteProject:
		return "project"
	case deleteInvoice:
		return "invoice"
	}
	return "record"
}

type confirmation struct {
	target deleteTarget
	id     models.ID
	name   string
}

func (m Model) askDelete(target deleteTarget, id models.ID, name string) Model {
	m.confirm = &confirmation{target: target, id: id, name: name}
	m.mode = ModeConfirmDelete
	m.notice = ""
	return m
}

func (m Model) askLogout() Model {
	m.confirm = nil
	m.mode = ModeConfirmLogout
	m.notice = ""
	return m
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.mode == ModeConfirmLogout {
			return m, m.run(opLogout, "Signed out", func(context.Context) error {
				return m.store.EndSession()
			})
		}
		return m, m.performDelete()
	case "n", "N", "esc":
		m.confirm = nil
		m.mode = ModeBrowse
	}
	return m, nil
}

func (m Model) performDelete() tea.Cmd {
	c := m.confirm
	if c == nil {
		return nil
	}

	message := fmt.Sprintf("Deleted %s %s", c.target, c.name)
	return m.run(opDelete, message, func(ctx context.Context) error {
		switch c.target {
		case deleteClient:
			return m.store.DeleteClient(ctx, c.id)
		case deleteProject:
			return m.store.DeleteProject(ctx, c.id)
		case deleteInvoice:
			return m.store.DeleteInvoice(ctx, c.id)
		}
		return fmt.Errorf("unknown delete target")
	})
}

func (m Model) renderConfirmView(st styles) string {
	var title, message, info, warning, yes string

	if m.mode == ModeConfirmLogout {
		title = "SIGN OUT"
		message = "Sign out of billfold on this device?"
		info = "Your theme is kept; your data stays on the server."
		yes = "Yes, sign out (y)"
	} else if m.confirm != nil {
		title = "⚠  DELETE CONFIRMATION  ⚠"
		message = fmt.Sprintf("Are you sure you want to delete this %s?", m.confirm.target)
		info = fmt.Sprintf("\n%s: %s\n", strings.ToUpper(m.confirm.target.String()), m.confirm.name)
		warning = "\nThis action cannot be undone!"
		yes = "Yes, Delete (y)"
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		st.button.Render(yes),
		st.cancel.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		st.warning.Render(title),
		"",
		message,
		info,
		warning,
		"",
		buttons,
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.confirmBox.Render(content))
}
