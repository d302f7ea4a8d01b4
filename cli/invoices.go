// ABOUTME: Invoice CLI commands
// ABOUTME: Handles listing, creating with line items, status updates and deletion
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
)

// lineItemFlags collects repeated --item "description:quantity:rate" values.
type lineItemFlags []models.LineItem

func (f *lineItemFlags) String() string {
	parts := make([]string, len(*f))
	for i, item := range *f {
		parts[i] = fmt.Sprintf("%s:%s:%s", item.Description, item.Quantity, item.Rate)
	}
	return strings.Join(parts, ", ")
}

func (f *lineItemFlags) Set(value string) error {
	item, err := parseLineItem(value)
	if err != nil {
		return err
	}
	*f = append(*f, item)
	return nil
}

// parseLineItem reads "description:quantity:rate". The description may
// itself contain colons; quantity and rate are the last two fields.
func parseLineItem(value string) (models.LineItem, error) {
	rateAt := strings.LastIndex(value, ":")
	if rateAt < 0 {
		return models.LineItem{}, fmt.Errorf("line item %q: want description:quantity:rate", value)
	}
	qtyAt := strings.LastIndex(value[:rateAt], ":")
	if qtyAt < 0 {
		return models.LineItem{}, fmt.Errorf("line item %q: want description:quantity:rate", value)
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(value[qtyAt+1 : rateAt]))
	if err != nil {
		return models.LineItem{}, fmt.Errorf("line item %q: invalid quantity: %w", value, err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(value[rateAt+1:]))
	if err != nil {
		return models.LineItem{}, fmt.Errorf("line item %q: invalid rate: %w", value, err)
	}

	item := models.NewLineItem()
	item.Description = strings.TrimSpace(value[:qtyAt])
	item.SetQuantity(qty)
	item.SetRate(rate)
	return item, nil
}

func ListInvoicesCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("invoices list", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	status := fs.String("status", "", "Filter by status (draft, sent, paid, overdue)")
	showItems := fs.Bool("items", false, "Show line items under each invoice")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *status != "" && !models.InvoiceStatus(*status).Valid() {
		return fmt.Errorf("invalid status: %s", *status)
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	var invoices []models.Invoice
	for _, inv := range app.Store.Invoices() {
		if *status == "" || string(inv.Status) == *status {
			invoices = append(invoices, inv)
		}
	}
	if len(invoices) == 0 {
		app.printf("No invoices found.\n")
		return nil
	}

	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCLIENT\tTOTAL\tSTATUS\tITEMS\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t------\t-----\t------\t-----\t-------")

	for _, inv := range invoices {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			inv.ID, dash(inv.ClientName), models.FormatMoney(inv.Total), inv.Status,
			len(inv.LineItems), models.RelativeTime(inv.CreatedAt.Time, app.now()))
		if *showItems {
			for _, li := range inv.LineItems {
				_, _ = fmt.Fprintf(w, "\t  %s\t%s\t%s × %s\t\t\n",
					li.Description, models.FormatMoney(li.Amount), li.Quantity, models.FormatMoney(li.Rate))
			}
		}
	}

	stats := app.Store.InvoiceStats()
	if err := w.Flush(); err != nil {
		return err
	}
	app.printf("\n%d draft, %d pending, %d paid, %d overdue\n", stats.Draft, stats.Pending, stats.Paid, stats.Overdue)
	return nil
}

func AddInvoiceCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("invoices add", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	clientID := fs.String("client", "", "Client ID (required)")
	status := fs.String("status", string(models.InvoiceDraft), "Status (draft, sent, paid, overdue)")
	var items lineItemFlags
	fs.Var(&items, "item", `Line item as "description:quantity:rate" (repeatable)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("at least one --item is required")
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	draft := &models.DraftInvoice{
		ClientID:  models.ID(*clientID),
		Status:    models.InvoiceStatus(*status),
		LineItems: items,
	}
	in := draft.Input(app.Store.Clients())
	if err := app.Store.CreateInvoice(ctx, in); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	app.printf("✓ Invoice created for %s: %s (%d items)\n", dash(in.ClientName), models.FormatMoney(in.Total), len(items))
	return nil
}

func UpdateInvoiceCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("invoices update", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	status := fs.String("status", "", "New status (draft, sent, paid, overdue)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("invoice ID required")
	}
	if *status == "" {
		return errors.New("nothing to update: pass --status")
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(fs.Arg(0))
	s := models.InvoiceStatus(*status)
	if err := app.Store.UpdateInvoice(ctx, id, models.InvoicePatch{Status: &s}); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	app.printf("✓ Invoice %s marked %s\n", id, s)
	return nil
}

func DeleteInvoiceCommand(ctx context.Context, app *App, args []string) error {
	if len(args) < 1 {
		return errors.New("invoice ID required")
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(args[0])
	if err := app.Store.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	app.printf("✓ Invoice deleted: %s\n", id)
	return nil
}
