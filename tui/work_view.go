// ABOUTME: Projects and invoices page
// ABOUTME: Two tables with status counts, status cycling and create/delete
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

type workTable int

const (
	workProjects workTable = iota
	workInvoices
)

func (m Model) handleWorkKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	projects := m.store.Projects()
	invoices := m.store.Invoices()

	cursor, count := &m.projectCursor, len(projects)
	if m.workFocus == workInvoices {
		cursor, count = &m.invoiceCursor, len(invoices)
	}

	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		if m.workFocus == workProjects {
			m.workFocus = workInvoices
		} else {
			m.workFocus = workProjects
		}
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < count-1 {
			*cursor++
		}
	case "p":
		return m.openForm(newProjectForm(nil, m.store.Clients()))
	case "i":
		return m.openInvoiceForm()
	case "e", "enter":
		if m.workFocus == workProjects && count > 0 {
			p := projects[m.projectCursor]
			return m.openForm(newProjectForm(&p, m.store.Clients()))
		}
	case "s":
		return m, m.cycleStatus(projects, invoices)
	case "d":
		if count == 0 {
			return m, nil
		}
		if m.workFocus == workProjects {
			p := projects[m.projectCursor]
			return m.askDelete(deleteProject, p.ID, p.Title), nil
		}
		inv := invoices[m.invoiceCursor]
		return m.askDelete(deleteInvoice, inv.ID, fmt.Sprintf("#%s for %s", inv.ID, inv.ClientName)), nil
	}
	return m, nil
}

// cycleStatus moves the selected project or invoice to its next status.
func (m Model) cycleStatus(projects []models.Project, invoices []models.Invoice) tea.Cmd {
	if m.workFocus == workProjects {
		if len(projects) == 0 {
			return nil
		}
		p := projects[m.projectCursor]
		next := p.Status.Next()
		return m.run(opSave, fmt.Sprintf("%s is now %s", p.Title, next), func(ctx context.Context) error {
			return m.store.UpdateProject(ctx, p.ID, models.ProjectPatch{Status: &next})
		})
	}

	if len(invoices) == 0 {
		return nil
	}
	inv := invoices[m.invoiceCursor]
	next := inv.Status.Next()
	return m.run(opSave, fmt.Sprintf("Invoice #%s is now %s", inv.ID, next), func(ctx context.Context) error {
		return m.store.UpdateInvoice(ctx, inv.ID, models.InvoicePatch{Status: &next})
	})
}

func (m Model) renderWorkView(st styles, snap store.Snapshot) string {
	var s strings.Builder

	ps := models.ProjectStats(snap.Projects)
	s.WriteString(st.title.Render("Projects"))
	s.WriteString("  ")
	s.WriteString(st.label.Render(fmt.Sprintf("%d active • %d completed • %d on hold", ps.Active, ps.Completed, ps.OnHold)))
	s.WriteString("\n")

	if len(snap.Projects) == 0 {
		s.WriteString(st.label.Render("No projects yet. Press p to add one."))
		s.WriteString("\n")
	} else {
		columns := []table.Column{
			{Title: "Title", Width: 28},
			{Title: "Client", Width: 20},
			{Title: "Amount", Width: 12},
			{Title: "Status", Width: 12},
		}
		rows := make([]table.Row, 0, len(snap.Projects))
		for _, p := range snap.Projects {
			rows = append(rows, table.Row{p.Title, p.ClientName, models.FormatCurrency(p.Amount), string(p.Status)})
		}
		s.WriteString(m.renderTable(st, columns, rows, m.projectCursor, m.workFocus == workProjects))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	is := models.InvoiceStats(snap.Invoices)
	s.WriteString(st.title.Render("Invoices"))
	s.WriteString("  ")
	s.WriteString(st.label.Render(fmt.Sprintf("%d draft • %d pending • %d paid • %d overdue", is.Draft, is.Pending, is.Paid, is.Overdue)))
	s.WriteString("\n")

	if len(snap.Invoices) == 0 {
		s.WriteString(st.label.Render("No invoices yet. Press i to create one."))
		s.WriteString("\n")
	} else {
		columns := []table.Column{
			{Title: "#", Width: 6},
			{Title: "Client", Width: 24},
			{Title: "Items", Width: 6},
			{Title: "Total", Width: 14},
			{Title: "Status", Width: 10},
		}
		rows := make([]table.Row, 0, len(snap.Invoices))
		for _, inv := range snap.Invoices {
			rows = append(rows, table.Row{
				string(inv.ID), inv.ClientName, fmt.Sprint(len(inv.LineItems)),
				models.FormatMoney(inv.Total), string(inv.Status),
			})
		}
		s.WriteString(m.renderTable(st, columns, rows, m.invoiceCursor, m.workFocus == workInvoices))
		s.WriteString("\n")
	}

	help := []string{"Tab: Switch table", "↑/↓: Navigate", "p: New project", "i: New invoice", "e: Edit project", "s: Next status", "d: Delete"}
	s.WriteString(st.help.Render(strings.Join(help, " • ")))
	return s.String()
}
