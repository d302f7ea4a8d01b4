// ABOUTME: Client CLI commands
// ABOUTME: Handles listing, adding, updating and deleting clients
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/harperreed/billfold/models"
)

// ListClientsCommand prints clients, optionally filtered by --query.
func ListClientsCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("clients list", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	query := fs.String("query", "", "Match name, email or phone")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	clients := app.Store.SearchClients(*query)
	if len(clients) == 0 {
		app.printf("No clients found.\n")
		return nil
	}

	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tADDED")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t-----\t-----")

	for _, c := range clients {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, dash(c.Email), dash(c.Phone), models.RelativeTime(c.CreatedAt.Time, app.now()))
	}

	return w.Flush()
}

// AddClientCommand adds a new client
func AddClientCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("clients add", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	name := fs.String("name", "", "Client name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	in := models.ClientInput{Name: *name, Email: *email, Phone: *phone}
	if err := app.Store.CreateClient(ctx, in); err != nil {
		return fmt.Errorf("failed to add client: %w", err)
	}

	app.printf("✓ Client added: %s\n", *name)
	return nil
}

// UpdateClientCommand changes the fields given as flags.
func UpdateClientCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("clients update", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	name := fs.String("name", "", "New name")
	email := fs.String("email", "", "New email address")
	phone := fs.String("phone", "", "New phone number")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("client ID required")
	}

	var patch models.ClientPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "email":
			patch.Email = email
		case "phone":
			patch.Phone = phone
		}
	})
	if patch == (models.ClientPatch{}) {
		return errors.New("nothing to update: pass --name, --email or --phone")
	}

	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(fs.Arg(0))
	if err := app.Store.UpdateClient(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	app.printf("✓ Client updated: %s\n", id)
	return nil
}

func DeleteClientCommand(ctx context.Context, app *App, args []string) error {
	if len(args) < 1 {
		return errors.New("client ID required")
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(args[0])
	if err := app.Store.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	app.printf("✓ Client deleted: %s\n", id)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
