// ABOUTME: Add and edit forms for clients, projects and the profile
// ABOUTME: Text inputs plus left/right selectors for client and status
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
)

type formKind int

const (
	formClient formKind = iota
	formProject
	formProfile
)

type selectorKind int

const (
	selectClient selectorKind = iota
	selectStatus
)

type entityForm struct {
	kind   formKind
	editID models.ID

	labels []string
	inputs []textinput.Model

	// selectors follow the text inputs in focus order.
	selectors []selectorKind
	clients   []models.Client
	clientIdx int
	status    models.ProjectStatus

	focus int
	err   string
}

func newInput(placeholder string, limit int, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

func newClientForm(c *models.Client) *entityForm {
	f := &entityForm{kind: formClient, labels: []string{"Name", "Email", "Phone"}}
	var name, email, phone string
	if c != nil {
		f.editID = c.ID
		name, email, phone = c.Name, c.Email, c.Phone
	}
	f.inputs = []textinput.Model{
		newInput("Acme Corp", 100, name),
		newInput("billing@acme.com", 100, email),
		newInput("+1 650 253 0000", 30, phone),
	}
	f.setFocus(0)
	return f
}

// newProjectForm edits p, or starts a new project when p is nil. The client
// of an existing project cannot change.
func newProjectForm(p *models.Project, clients []models.Client) *entityForm {
	f := &entityForm{
		kind:    formProject,
		labels:  []string{"Title", "Amount"},
		clients: clients,
		status:  models.ProjectActive,
	}
	title, amount := "", ""
	if p != nil {
		f.editID = p.ID
		title, amount = p.Title, p.Amount.String()
		f.status = p.Status
		f.selectors = []selectorKind{selectStatus}
	} else {
		f.selectors = []selectorKind{selectClient, selectStatus}
	}
	f.inputs = []textinput.Model{
		newInput("Website redesign", 100, title),
		newInput("2500", 20, amount),
	}
	f.setFocus(0)
	return f
}

func newProfileForm(u *models.User) *entityForm {
	f := &entityForm{kind: formProfile, labels: []string{"Name", "Email"}}
	var name, email string
	if u != nil {
		name, email = u.Name, u.Email
	}
	f.inputs = []textinput.Model{
		newInput("Your name", 100, name),
		newInput("you@example.com", 100, email),
	}
	f.setFocus(0)
	return f
}

func (f *entityForm) fieldCount() int {
	return len(f.inputs) + len(f.selectors)
}

func (f *entityForm) setFocus(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	if i < len(f.inputs) {
		f.inputs[i].Focus()
	}
}

// selector returns the selector under focus, if any.
func (f *entityForm) selector() (selectorKind, bool) {
	i := f.focus - len(f.inputs)
	if i < 0 || i >= len(f.selectors) {
		return 0, false
	}
	return f.selectors[i], true
}

func (f *entityForm) cycle(delta int) {
	sel, ok := f.selector()
	if !ok {
		return
	}
	switch sel {
	case selectClient:
		if len(f.clients) > 0 {
			f.clientIdx = (f.clientIdx + delta + len(f.clients)) % len(f.clients)
		}
	case selectStatus:
		if delta > 0 {
			f.status = f.status.Next()
			return
		}
		for i := 0; i < len(models.ProjectStatuses)-1; i++ {
			f.status = f.status.Next()
		}
	}
}

func (f *entityForm) title() string {
	verb := "NEW"
	if f.editID != "" || f.kind == formProfile {
		verb = "EDIT"
	}
	switch f.kind {
	case formClient:
		return verb + " CLIENT"
	case formProject:
		return verb + " PROJECT"
	}
	return "EDIT PROFILE"
}

func (m Model) openForm(f *entityForm) (Model, tea.Cmd) {
	m.form = f
	m.mode = ModeForm
	m.notice = ""
	m.store.ClearErr()
	return m, textinput.Blink
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = ModeBrowse
		m.store.ClearErr()
		return m, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % f.fieldCount())
		return m, nil
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
		return m, nil
	case "left":
		if _, ok := f.selector(); ok {
			f.cycle(-1)
			return m, nil
		}
	case "right", " ":
		if _, ok := f.selector(); ok {
			f.cycle(1)
			return m, nil
		}
	case "enter":
		cmd, err := m.submitForm()
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		f.err = ""
		return m, cmd
	}

	if f.focus >= len(f.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Cmd, error) {
	f := m.form
	value := func(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

	switch f.kind {
	case formClient:
		name, email, phone := value(0), value(1), value(2)
		if f.editID == "" {
			in := models.ClientInput{Name: name, Email: email, Phone: phone}
			return m.run(opSave, "Client added", func(ctx context.Context) error {
				return m.store.CreateClient(ctx, in)
			}), nil
		}
		id := f.editID
		patch := models.ClientPatch{Name: &name, Email: &email, Phone: &phone}
		return m.run(opSave, "Client updated", func(ctx context.Context) error {
			return m.store.UpdateClient(ctx, id, patch)
		}), nil

	case formProject:
		title := value(0)
		amount := decimal.Zero
		if raw := value(1); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("amount must be a number")
			}
			amount = parsed
		}
		status := f.status

		if f.editID == "" {
			if len(f.clients) == 0 {
				return nil, fmt.Errorf("add a client first")
			}
			in := models.ProjectInput{
				Title:    title,
				Amount:   amount,
				ClientID: f.clients[f.clientIdx].ID,
				Status:   status,
			}
			return m.run(opSave, "Project created", func(ctx context.Context) error {
				return m.store.CreateProject(ctx, in)
			}), nil
		}
		id := f.editID
		patch := models.ProjectPatch{Title: &title, Amount: &amount, Status: &status}
		return m.run(opSave, "Project updated", func(ctx context.Context) error {
			return m.store.UpdateProject(ctx, id, patch)
		}), nil

	case formProfile:
		name, email := value(0), value(1)
		patch := models.UserPatch{Name: &name, Email: &email}
		return m.run(opSave, "Profile updated for this session", func(context.Context) error {
			return m.store.UpdateUser(patch)
		}), nil
	}
	return nil, nil
}

func (m Model) renderEntityForm(st styles) string {
	f := m.form
	var s strings.Builder

	s.WriteString(st.title.Render(f.title()))
	s.WriteString("\n\n")

	marker := func(i int) string {
		if i == f.focus {
			return st.selected.Render("> ")
		}
		return "  "
	}

	for i, input := range f.inputs {
		s.WriteString(marker(i))
		s.WriteString(st.label.Render(fmt.Sprintf("%-8s", f.labels[i])))
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	for j, sel := range f.selectors {
		i := len(f.inputs) + j
		s.WriteString(marker(i))
		switch sel {
		case selectClient:
			name := "(no clients yet)"
			if len(f.clients) > 0 {
				name = f.clients[f.clientIdx].Name
			}
			s.WriteString(st.label.Render(fmt.Sprintf("%-8s", "Client")))
			s.WriteString("‹ " + name + " ›")
		case selectStatus:
			s.WriteString(st.label.Render(fmt.Sprintf("%-8s", "Status")))
			s.WriteString("‹ " + st.status(string(f.status)).Render(string(f.status)) + " ›")
		}
		s.WriteString("\n")
	}

	if f.err != "" {
		s.WriteString("\n")
		s.WriteString(st.errText.Render(f.err))
		s.WriteString("\n")
	}

	if f.kind == formProfile {
		s.WriteString("\n")
		s.WriteString(st.label.Render("Profile changes last until you sign in again."))
		s.WriteString("\n")
	}

	help := []string{"Tab: Next field", "←/→: Change selection", "Enter: Save", "Esc: Cancel"}
	s.WriteString(st.help.Render(strings.Join(help, " • ")))
	return s.String()
}
