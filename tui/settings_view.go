// ABOUTME: Settings page
// ABOUTME: Profile edit, theme toggle and sign out
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/billfold/store"
)

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e", "enter":
		return m.openForm(newProfileForm(m.store.User()))
	case "t":
		return m, m.run(opTheme, "", func(context.Context) error {
			_, err := m.store.ToggleTheme()
			return err
		})
	case "L":
		return m.askLogout(), nil
	}
	return m, nil
}

func (m Model) renderSettingsView(st styles, snap store.Snapshot) string {
	var s strings.Builder

	s.WriteString(st.title.Render("Profile"))
	s.WriteString("\n")
	name, email := "-", "-"
	if snap.User != nil {
		name, email = snap.User.Name, snap.User.Email
	}
	s.WriteString(st.label.Render("  Name   ") + st.value.Render(name) + "\n")
	s.WriteString(st.label.Render("  Email  ") + st.value.Render(email) + "\n\n")

	s.WriteString(st.title.Render("Appearance"))
	s.WriteString("\n")
	theme := "Light"
	if snap.DarkMode {
		theme = "Dark"
	}
	s.WriteString(st.label.Render("  Theme  ") + st.value.Render(theme) + "\n")

	help := []string{"e: Edit profile", "t: Toggle theme", "L: Sign out", "1-4: Pages", "q: Quit"}
	s.WriteString(st.help.Render(strings.Join(help, " • ")))
	return s.String()
}
