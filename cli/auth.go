// ABOUTME: Session CLI commands
// ABOUTME: Handles login, signup, logout and whoami
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
)

// LoginCommand signs in and loads everything for the account.
func LoginCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (prompted when omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		line, err := app.prompt("Email: ")
		if err != nil {
			return err
		}
		*email = line
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	if *password == "" {
		pw, err := app.ReadPassword()
		if err != nil {
			return err
		}
		*password = pw
	}

	if err := app.Store.Authenticate(ctx, *email, *password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	app.printf("✓ Logged in as %s\n", describeUser(app))
	return nil
}

// SignupCommand creates an account and signs in to it.
func SignupCommand(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(app.Out)
	name := fs.String("name", "", "Your name (required)")
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (prompted when omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" || *email == "" {
		return errors.New("--name and --email are required")
	}

	if *password == "" {
		pw, err := app.ReadPassword()
		if err != nil {
			return err
		}
		*password = pw
	}

	if err := app.Store.Register(ctx, *name, *email, *password); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	app.printf("✓ Account created for %s\n", describeUser(app))
	return nil
}

// LogoutCommand forgets the stored token. The theme is kept.
func LogoutCommand(_ context.Context, app *App, _ []string) error {
	if err := app.Store.EndSession(); err != nil {
		return err
	}
	app.printf("✓ Logged out\n")
	return nil
}

func WhoamiCommand(ctx context.Context, app *App, _ []string) error {
	if err := app.Resume(ctx); err != nil {
		return err
	}
	app.printf("%s\n", describeUser(app))
	return nil
}

func describeUser(app *App) string {
	u := app.Store.User()
	if u == nil {
		return "unknown user"
	}
	if u.Email == "" {
		return u.Name
	}
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}

func (a *App) prompt(label string) (string, error) {
	a.printf("%s", label)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
