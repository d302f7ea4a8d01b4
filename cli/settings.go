// ABOUTME: Settings CLI commands
// ABOUTME: Handles the theme preference and the local profile edit
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/billfold/models"
)

// ThemeCommand shows or changes the saved theme.
func ThemeCommand(_ context.Context, app *App, args []string) error {
	if len(args) == 0 {
		app.printf("Theme: %s\n", themeName(app.Store.IsDarkMode()))
		return nil
	}

	switch args[0] {
	case "dark", "light":
		if err := app.Store.SetTheme(args[0] == "dark"); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	case "toggle":
		if _, err := app.Store.ToggleTheme(); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	default:
		return fmt.Errorf("unknown theme %q: use dark, light or toggle", args[0])
	}

	app.printf("✓ Theme set to %s\n", themeName(app.Store.IsDarkMode()))
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// ProfileCommand edits the profile for this session only. The gateway has
// no profile endpoint, so the change is lost on the next login.
func ProfileCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email address")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := app.Resume(ctx); err != nil {
		return err
	}

	var patch models.UserPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "email":
			patch.Email = email
		}
	})

	if patch.Name != nil || patch.Email != nil {
		if err := app.Store.UpdateUser(patch); err != nil {
			return err
		}
		app.printf("✓ Profile updated for this session (not saved to the server)\n")
	}

	app.printf("%s\n", describeUser(app))
	return nil
}
