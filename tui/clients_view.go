// ABOUTME: Clients page
// ABOUTME: Searchable client table with add, edit and delete
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

func (m Model) visibleClients() []models.Client {
	return m.store.SearchClients(m.search.Value())
}

func (m Model) handleClientKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	clients := m.visibleClients()

	switch msg.String() {
	case "up", "k":
		if m.clientCursor > 0 {
			m.clientCursor--
		}
	case "down", "j":
		if m.clientCursor < len(clients)-1 {
			m.clientCursor++
		}
	case "/":
		m.mode = ModeSearch
		m.search.Focus()
		return m, textinput.Blink
	case "a":
		return m.openForm(newClientForm(nil))
	case "e", "enter":
		if len(clients) > 0 {
			c := clients[m.clientCursor]
			return m.openForm(newClientForm(&c))
		}
	case "d":
		if len(clients) > 0 {
			c := clients[m.clientCursor]
			return m.askDelete(deleteClient, c.ID, c.Name), nil
		}
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "esc" {
			m.search.SetValue("")
		}
		m.search.Blur()
		m.mode = ModeBrowse
		m.clientCursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clientCursor = 0
	return m, cmd
}

func (m Model) renderClientsView(st styles, snap store.Snapshot) string {
	var s strings.Builder

	clients := models.FilterClients(snap.Clients, m.search.Value())

	if m.mode == ModeSearch || m.search.Value() != "" {
		s.WriteString(m.search.View())
		s.WriteString("\n\n")
	}

	if len(clients) == 0 {
		if m.search.Value() != "" {
			s.WriteString(st.label.Render("No clients match your search."))
		} else {
			s.WriteString(st.label.Render("No clients yet. Press a to add one."))
		}
		s.WriteString("\n")
	} else {
		columns := []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 28},
			{Title: "Phone", Width: 18},
			{Title: "Added", Width: 14},
		}

		now := time.Now()
		rows := make([]table.Row, 0, len(clients))
		for _, c := range clients {
			rows = append(rows, table.Row{c.Name, c.Email, c.Phone, models.RelativeTime(c.CreatedAt.Time, now)})
		}

		s.WriteString(m.renderTable(st, columns, rows, m.clientCursor, true))
		s.WriteString("\n")
	}

	help := []string{"↑/↓: Navigate", "/: Search", "a: Add", "e: Edit", "d: Delete", "1-4: Pages", "q: Quit"}
	s.WriteString(st.help.Render(strings.Join(help, " • ")))
	return s.String()
}

// renderTable draws a bubbles table with the cursor on row cursor.
func (m Model) renderTable(st styles, columns []table.Column, rows []table.Row, cursor int, focused bool) string {
	height := m.height - 14
	if height < 3 {
		height = 3
	}
	if len(rows)+1 < height {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(height),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Foreground(st.palette.accent).Bold(true)
	if focused {
		ts.Selected = ts.Selected.Foreground(st.palette.text).Background(st.palette.surface).Bold(true)
	} else {
		ts.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(ts)

	if cursor < len(rows) {
		t.SetCursor(cursor)
	}
	return t.View()
}
