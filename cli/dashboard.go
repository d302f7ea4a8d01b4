// ABOUTME: Overview CLI commands
// ABOUTME: Handles dashboard, activity feed and client graph output
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/viz"
)

func DashboardCommand(ctx context.Context, app *App, _ []string) error {
	if err := app.Resume(ctx); err != nil {
		return err
	}

	stats := viz.GenerateDashboardStats(app.Store.Snapshot(), app.now())
	app.printf("%s", viz.RenderDashboard(stats))
	return nil
}

// ActivityCommand prints the activity log, newest first.
func ActivityCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	limit := fs.Int("limit", 10, "Maximum entries to show (0 for all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	feed := app.Store.ActivityFeed()
	if *limit > 0 && len(feed) > *limit {
		feed = feed[:*limit]
	}
	if len(feed) == 0 {
		app.printf("No activity yet.\n")
		return nil
	}

	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tTYPE\tMESSAGE")
	_, _ = fmt.Fprintln(w, "----\t----\t-------")

	now := app.now()
	for _, entry := range feed {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", models.RelativeTime(entry.Timestamp.Time, now), entry.Type, entry.Message)
	}

	return w.Flush()
}

// VizGraphCommand writes the client graph as DOT.
func VizGraphCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("viz graph", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	dot, err := viz.NewGraphGenerator(app.Store.Snapshot()).GenerateClientGraph(ctx)
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(dot), 0644); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
		app.printf("✓ Graph written to %s\n", *output)
		return nil
	}

	app.printf("%s\n", dot)
	return nil
}

// VizCommand routes viz subcommands.
func VizCommand(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 || args[0] != "graph" {
		return errors.New("usage: billfold viz graph [--output file]")
	}
	return VizGraphCommand(ctx, app, args[1:])
}
