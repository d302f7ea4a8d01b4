// ABOUTME: Invoice editor with live line item amounts and total
// ABOUTME: Edits a draft invoice and submits it through the store
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

// Focus positions before the line items.
const (
	invoiceFocusClient = iota
	invoiceFocusStatus
	invoiceHeaderFields
)

const (
	colDescription = iota
	colQuantity
	colRate
	lineColumns
)

type lineInputs [lineColumns]textinput.Model

type invoiceForm struct {
	draft     *models.DraftInvoice
	clients   []models.Client
	clientIdx int
	lines     []lineInputs
	focus     int
	err       string
}

func newLineInputs(item models.LineItem) lineInputs {
	var l lineInputs
	l[colDescription] = newInput("Description", 200, item.Description)
	l[colQuantity] = newInput("Qty", 10, item.Quantity.String())
	l[colRate] = newInput("Rate", 12, item.Rate.String())
	l[colDescription].Width = 28
	l[colQuantity].Width = 6
	l[colRate].Width = 10
	return l
}

func newInvoiceForm(clients []models.Client) *invoiceForm {
	f := &invoiceForm{draft: models.NewDraftInvoice(), clients: clients}
	for _, item := range f.draft.LineItems {
		f.lines = append(f.lines, newLineInputs(item))
	}
	if len(clients) > 0 {
		f.draft.ClientID = clients[0].ID
	}
	return f
}

func (f *invoiceForm) fieldCount() int {
	return invoiceHeaderFields + len(f.lines)*lineColumns
}

// cell maps the focus position to a line and column, or -1 on the header.
func (f *invoiceForm) cell() (line, col int) {
	if f.focus < invoiceHeaderFields {
		return -1, -1
	}
	i := f.focus - invoiceHeaderFields
	return i / lineColumns, i % lineColumns
}

func (f *invoiceForm) setFocus(i int) {
	for l := range f.lines {
		for c := range f.lines[l] {
			f.lines[l][c].Blur()
		}
	}
	f.focus = i
	if line, col := f.cell(); line >= 0 {
		f.lines[line][col].Focus()
	}
}

func (f *invoiceForm) cycle(delta int) {
	switch f.focus {
	case invoiceFocusClient:
		if len(f.clients) > 0 {
			f.clientIdx = (f.clientIdx + delta + len(f.clients)) % len(f.clients)
			f.draft.ClientID = f.clients[f.clientIdx].ID
		}
	case invoiceFocusStatus:
		steps := 1
		if delta < 0 {
			steps = len(models.InvoiceStatuses) - 1
		}
		for i := 0; i < steps; i++ {
			f.draft.Status = f.draft.Status.Next()
		}
	}
}

// sync copies one line's text inputs into the draft. Unparseable numbers
// count as zero until fixed.
func (f *invoiceForm) sync(line int) {
	parse := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	in := f.lines[line]
	f.draft.UpdateDescription(line, strings.TrimSpace(in[colDescription].Value()))
	f.draft.UpdateQuantity(line, parse(in[colQuantity].Value()))
	f.draft.UpdateRate(line, parse(in[colRate].Value()))
}

func (f *invoiceForm) addLine() {
	idx := f.draft.AddLineItem()
	f.lines = append(f.lines, newLineInputs(f.draft.LineItems[idx]))
	f.setFocus(invoiceHeaderFields + idx*lineColumns)
}

func (f *invoiceForm) removeLine() {
	line, _ := f.cell()
	if line < 0 || !f.draft.RemoveLineItem(line) {
		return
	}
	f.lines = append(f.lines[:line], f.lines[line+1:]...)
	if f.focus >= f.fieldCount() {
		f.setFocus(f.fieldCount() - lineColumns)
	} else {
		f.setFocus(f.focus)
	}
}

// validate checks what the draft cannot express on its own.
func (f *invoiceForm) validate() error {
	if f.draft.ClientID == "" {
		return fmt.Errorf("add a client first")
	}
	for i, line := range f.lines {
		for _, col := range []int{colQuantity, colRate} {
			raw := strings.TrimSpace(line[col].Value())
			if _, err := decimal.NewFromString(raw); err != nil {
				return fmt.Errorf("line %d: %q is not a number", i+1, raw)
			}
		}
	}
	return nil
}

func (m Model) openInvoiceForm() (Model, tea.Cmd) {
	m.invoice = newInvoiceForm(m.store.Clients())
	m.mode = ModeInvoiceForm
	m.notice = ""
	m.store.ClearErr()
	return m, textinput.Blink
}

func (m Model) handleInvoiceFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.invoice
	switch msg.String() {
	case "esc":
		m.invoice = nil
		m.mode = ModeBrowse
		m.store.ClearErr()
		return m, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % f.fieldCount())
		return m, nil
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
		return m, nil
	case "ctrl+n":
		f.addLine()
		return m, nil
	case "ctrl+d":
		f.removeLine()
		return m, nil
	case "left":
		if f.focus < invoiceHeaderFields {
			f.cycle(-1)
			return m, nil
		}
	case "right", " ":
		if f.focus < invoiceHeaderFields {
			f.cycle(1)
			return m, nil
		}
	case "enter":
		if err := f.validate(); err != nil {
			f.err = err.Error()
			return m, nil
		}
		f.err = ""
		in := f.draft.Input(m.store.Clients())
		return m, m.run(opSave, "Invoice created for "+in.ClientName, func(ctx context.Context) error {
			return m.store.CreateInvoice(ctx, in)
		})
	}

	line, col := f.cell()
	if line < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	f.lines[line][col], cmd = f.lines[line][col].Update(msg)
	f.sync(line)
	return m, cmd
}

func (m Model) renderInvoiceForm(st styles, snap store.Snapshot) string {
	f := m.invoice
	var s strings.Builder

	marker := func(i int) string {
		if i == f.focus {
			return st.selected.Render("> ")
		}
		return "  "
	}

	s.WriteString(st.title.Render("NEW INVOICE"))
	s.WriteString("\n\n")

	clientName := "(no clients yet)"
	if len(f.clients) > 0 {
		clientName = f.clients[f.clientIdx].Name
	}
	s.WriteString(marker(invoiceFocusClient) + st.label.Render("Client  ") + "‹ " + clientName + " ›\n")
	status := string(f.draft.Status)
	s.WriteString(marker(invoiceFocusStatus) + st.label.Render("Status  ") + "‹ " + st.status(status).Render(status) + " ›\n\n")

	s.WriteString(st.label.Render(fmt.Sprintf("  %-32s %-10s %-14s %s", "Description", "Qty", "Rate", "Amount")))
	s.WriteString("\n")
	for i, line := range f.lines {
		base := invoiceHeaderFields + i*lineColumns
		focused := f.focus >= base && f.focus < base+lineColumns
		prefix := "  "
		if focused {
			prefix = st.selected.Render("> ")
		}
		s.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			prefix,
			line[colDescription].View(),
			line[colQuantity].View(),
			line[colRate].View(),
			st.value.Render(models.FormatMoney(f.draft.LineItems[i].Amount))))
	}

	s.WriteString("\n")
	s.WriteString(st.label.Render("Total  "))
	s.WriteString(st.value.Render(models.FormatMoney(f.draft.Total())))
	s.WriteString("\n")

	if f.err != "" {
		s.WriteString("\n")
		s.WriteString(st.errText.Render(f.err))
		s.WriteString("\n")
	}

	help := []string{"Tab: Next field", "←/→: Client/status", "ctrl+n: Add line", "ctrl+d: Remove line", "Enter: Create", "Esc: Cancel"}
	s.WriteString(st.help.Render(strings.Join(help, " • ")))
	return s.String()
}
