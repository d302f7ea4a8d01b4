// ABOUTME: Sign in and sign up page
// ABOUTME: One form that toggles between login and registration
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/billfold/store"
)

const (
	authName = iota
	authEmail
	authPassword
)

type authForm struct {
	signup bool
	inputs []textinput.Model
	focus  int
}

func newAuthForm() authForm {
	inputs := make([]textinput.Model, 3)

	inputs[authName] = textinput.New()
	inputs[authName].Placeholder = "Name"
	inputs[authName].CharLimit = 100

	inputs[authEmail] = textinput.New()
	inputs[authEmail].Placeholder = "Email"
	inputs[authEmail].CharLimit = 100

	inputs[authPassword] = textinput.New()
	inputs[authPassword].Placeholder = "Password"
	inputs[authPassword].CharLimit = 100
	inputs[authPassword].EchoMode = textinput.EchoPassword
	inputs[authPassword].EchoCharacter = '•'

	f := authForm{inputs: inputs, focus: authEmail}
	f.inputs[authEmail].Focus()
	return f
}

// visible returns the indexes of the inputs the current mode shows.
func (f authForm) visible() []int {
	if f.signup {
		return []int{authName, authEmail, authPassword}
	}
	return []int{authEmail, authPassword}
}

func (f authForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *authForm) move(delta int) {
	order := f.visible()
	pos := 0
	for i, idx := range order {
		if idx == f.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(order)) % len(order)
	f.setFocus(order[pos])
}

func (f *authForm) setFocus(idx int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = idx
	f.inputs[idx].Focus()
}

func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.auth.move(1)
		return m, nil
	case "shift+tab", "up":
		m.auth.move(-1)
		return m, nil
	case "ctrl+s":
		m.auth.signup = !m.auth.signup
		m.store.ClearErr()
		if m.auth.signup {
			m.auth.setFocus(authName)
		} else {
			m.auth.setFocus(authEmail)
		}
		return m, nil
	case "esc":
		return m, tea.Quit
	case "enter":
		return m, m.submitAuth()
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() tea.Cmd {
	name := strings.TrimSpace(m.auth.inputs[authName].Value())
	email := strings.TrimSpace(m.auth.inputs[authEmail].Value())
	password := m.auth.inputs[authPassword].Value()

	if m.auth.signup {
		return m.run(opAuth, "Welcome, "+name, func(ctx context.Context) error {
			return m.store.Register(ctx, name, email, password)
		})
	}
	return m.run(opAuth, "Signed in", func(ctx context.Context) error {
		return m.store.Authenticate(ctx, email, password)
	})
}

func (m Model) renderAuthView(st styles, snap store.Snapshot) string {
	var s strings.Builder

	heading := "Sign in"
	toggle := "ctrl+s: create an account instead"
	if m.auth.signup {
		heading = "Create an account"
		toggle = "ctrl+s: sign in instead"
	}

	s.WriteString(st.title.Render("BILLFOLD"))
	s.WriteString("\n")
	s.WriteString(st.label.Render(heading))
	s.WriteString("\n\n")

	for _, idx := range m.auth.visible() {
		if idx == m.auth.focus {
			s.WriteString(st.selected.Render("> "))
		} else {
			s.WriteString("  ")
		}
		s.WriteString(m.auth.inputs[idx].View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if snap.Loading {
		s.WriteString(m.spinner.View() + " " + st.label.Render("Signing in..."))
	} else if snap.Err != "" {
		s.WriteString(st.errText.Render(snap.Err))
	}
	s.WriteString("\n")
	s.WriteString(st.help.Render(strings.Join([]string{"Tab: Next field", "Enter: Submit", toggle, "Esc: Quit"}, " • ")))

	return lipgloss.NewStyle().Padding(1, 2).Render(s.String())
}
