// ABOUTME: Project CLI commands
// ABOUTME: Handles listing, adding, updating and deleting projects
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/models"
)

func ListProjectsCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("projects list", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	status := fs.String("status", "", "Filter by status (active, completed, on-hold)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *status != "" && !models.ProjectStatus(*status).Valid() {
		return fmt.Errorf("invalid status: %s", *status)
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	var projects []models.Project
	for _, p := range app.Store.Projects() {
		if *status == "" || string(p.Status) == *status {
			projects = append(projects, p)
		}
	}
	if len(projects) == 0 {
		app.printf("No projects found.\n")
		return nil
	}

	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCLIENT\tAMOUNT\tSTATUS")
	_, _ = fmt.Fprintln(w, "--\t-----\t------\t------\t------")

	for _, p := range projects {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, dash(p.ClientName), models.FormatCurrency(p.Amount), p.Status)
	}

	stats := models.ProjectStats(app.Store.Projects())
	if err := w.Flush(); err != nil {
		return err
	}
	app.printf("\n%d active, %d completed, %d on hold\n", stats.Active, stats.Completed, stats.OnHold)
	return nil
}

func AddProjectCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("projects add", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	title := fs.String("title", "", "Project title (required)")
	clientID := fs.String("client", "", "Client ID (required)")
	amount := fs.String("amount", "0", "Project value in dollars")
	status := fs.String("status", string(models.ProjectActive), "Status (active, completed, on-hold)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amount, err)
	}

	if err := app.Resume(ctx); err != nil {
		return err
	}

	in := models.ProjectInput{
		Title:    *title,
		Amount:   value,
		ClientID: models.ID(*clientID),
		Status:   models.ProjectStatus(*status),
	}
	if err := app.Store.CreateProject(ctx, in); err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	app.printf("✓ Project created: %s (%s)\n", *title, models.FormatCurrency(value))
	return nil
}

func UpdateProjectCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("projects update", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	title := fs.String("title", "", "New title")
	amount := fs.String("amount", "", "New value in dollars")
	status := fs.String("status", "", "New status (active, completed, on-hold)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("project ID required")
	}

	var patch models.ProjectPatch
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "amount":
			value, err := decimal.NewFromString(*amount)
			if err != nil {
				parseErr = fmt.Errorf("invalid amount %q: %w", *amount, err)
				return
			}
			patch.Amount = &value
		case "status":
			s := models.ProjectStatus(*status)
			patch.Status = &s
		}
	})
	if parseErr != nil {
		return parseErr
	}
	if patch.Title == nil && patch.Amount == nil && patch.Status == nil {
		return errors.New("nothing to update: pass --title, --amount or --status")
	}

	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(fs.Arg(0))
	if err := app.Store.UpdateProject(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	app.printf("✓ Project updated: %s\n", id)
	return nil
}

func DeleteProjectCommand(ctx context.Context, app *App, args []string) error {
	if len(args) < 1 {
		return errors.New("project ID required")
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	id := models.ID(args[0])
	if err := app.Store.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	app.printf("✓ Project deleted: %s\n", id)
	return nil
}
