// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Pages over the shared store; store calls run as commands and report back
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/billfold/store"
)

// Page is one of the top-level screens.
type Page int

const (
	PageDashboard Page = iota
	PageClients
	PageWork
	PageSettings
	PageAuth
)

var pageNames = []string{"Dashboard", "Clients", "Projects & Invoices", "Settings"}

// Mode is what the current page is doing.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeForm
	ModeInvoiceForm
	ModeConfirmDelete
	ModeConfirmLogout
)

type opKind int

const (
	opAuth opKind = iota
	opSave
	opDelete
	opTheme
	opLogout
	opRefresh
)

// opDoneMsg reports the end of a store call.
type opDoneMsg struct {
	kind    opKind
	message string
	err     error
}

// Model is the main bubbletea model
type Model struct {
	ctx   context.Context
	store *store.Store

	page    Page
	mode    Mode
	spinner spinner.Model

	auth authForm

	search       textinput.Model
	clientCursor int

	workFocus     workTable
	projectCursor int
	invoiceCursor int

	form    *entityForm
	invoice *invoiceForm
	confirm *confirmation

	notice string

	width  int
	height int
}

// NewModel creates a new TUI model. Signed-out stores start on the auth page.
func NewModel(ctx context.Context, s *store.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "Search clients"
	search.CharLimit = 100

	m := Model{
		ctx:     ctx,
		store:   s,
		page:    PageDashboard,
		spinner: sp,
		auth:    newAuthForm(),
		search:  search,
		width:   100,
		height:  30,
	}
	if !s.IsAuthenticated() {
		m.page = PageAuth
	}
	return m
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, s *store.Store) error {
	p := tea.NewProgram(NewModel(ctx, s), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.page == PageAuth {
		cmds = append(cmds, m.auth.focusCmd())
	}
	return tea.Batch(cmds...)
}

// run wraps a store call as a command.
func (m Model) run(kind opKind, message string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{kind: kind, message: message, err: fn(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		return m.handleOpDone(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// The store keeps the error for the status line; forms stay open.
		if msg.kind == opDelete {
			m.mode = ModeBrowse
			m.confirm = nil
		}
		m.notice = ""
		return m, nil
	}

	m.notice = msg.message
	switch msg.kind {
	case opAuth:
		m.auth = newAuthForm()
		m.page = PageDashboard
		m.mode = ModeBrowse
	case opSave:
		m.form = nil
		m.invoice = nil
		m.mode = ModeBrowse
	case opDelete:
		m.confirm = nil
		m.mode = ModeBrowse
		m.clampCursors()
	case opLogout:
		m.confirm = nil
		m.mode = ModeBrowse
		m.page = PageAuth
		return m, m.auth.focusCmd()
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.store.IsAuthenticated() && m.page != PageAuth {
		m.page = PageAuth
		m.mode = ModeBrowse
	}
	if m.page == PageAuth {
		return m.handleAuthKeys(msg)
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeForm:
		return m.handleFormKeys(msg)
	case ModeInvoiceForm:
		return m.handleInvoiceFormKeys(msg)
	case ModeConfirmDelete, ModeConfirmLogout:
		return m.handleConfirmKeys(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		m.page = Page(msg.String()[0] - '1')
		m.notice = ""
		return m, nil
	case "r":
		return m, m.run(opRefresh, "Refreshed", m.store.RefreshAll)
	case "esc":
		m.store.ClearErr()
		m.notice = ""
		return m, nil
	}

	switch m.page {
	case PageDashboard:
		return m, nil
	case PageClients:
		return m.handleClientKeys(msg)
	case PageWork:
		return m.handleWorkKeys(msg)
	case PageSettings:
		return m.handleSettingsKeys(msg)
	}
	return m, nil
}

func (m Model) View() string {
	snap := m.store.Snapshot()
	st := newStyles(snap.DarkMode)

	if !snap.Authenticated || m.page == PageAuth {
		return m.renderAuthView(st, snap)
	}

	switch m.mode {
	case ModeConfirmDelete, ModeConfirmLogout:
		return m.renderConfirmView(st)
	}

	var s strings.Builder
	s.WriteString(st.title.Render("BILLFOLD"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs(st))
	s.WriteString("\n\n")

	switch m.mode {
	case ModeForm:
		s.WriteString(m.renderEntityForm(st))
	case ModeInvoiceForm:
		s.WriteString(m.renderInvoiceForm(st, snap))
	default:
		switch m.page {
		case PageDashboard:
			s.WriteString(m.renderDashboardView(st, snap))
		case PageClients:
			s.WriteString(m.renderClientsView(st, snap))
		case PageWork:
			s.WriteString(m.renderWorkView(st, snap))
		case PageSettings:
			s.WriteString(m.renderSettingsView(st, snap))
		}
	}

	s.WriteString("\n")
	s.WriteString(m.renderStatusLine(st, snap))
	return s.String()
}

func (m Model) renderTabs(st styles) string {
	var rendered []string
	for i, name := range pageNames {
		label := string(rune('1'+i)) + " " + name
		if Page(i) == m.page {
			rendered = append(rendered, st.tabActive.Render(label))
		} else {
			rendered = append(rendered, st.tabInactive.Render(label))
		}
	}
	return strings.Join(rendered, "")
}

func (m Model) renderStatusLine(st styles, snap store.Snapshot) string {
	switch {
	case snap.Loading:
		return m.spinner.View() + " " + st.label.Render("Working...")
	case snap.Err != "":
		return st.errText.Render("Error: " + snap.Err)
	case m.notice != "":
		return st.okText.Render("✓ " + m.notice)
	}
	return ""
}

func (m *Model) clampCursors() {
	clamp := func(cursor *int, n int) {
		if *cursor >= n {
			*cursor = n - 1
		}
		if *cursor < 0 {
			*cursor = 0
		}
	}
	clamp(&m.clientCursor, len(m.store.SearchClients(m.search.Value())))
	clamp(&m.projectCursor, len(m.store.Projects()))
	clamp(&m.invoiceCursor, len(m.store.Invoices()))
}
