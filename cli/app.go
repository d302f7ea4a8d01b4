// ABOUTME: Wiring shared by every command: config, preferences, gateway and store
// ABOUTME: Builds an App from the config file and checks for a signed-in session
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/harperreed/billfold/charm"
	"github.com/harperreed/billfold/config"
	"github.com/harperreed/billfold/gateway"
	"github.com/harperreed/billfold/models"
	"github.com/harperreed/billfold/store"
)

// ErrNotLoggedIn is returned by commands that need a session when none is stored.
var ErrNotLoggedIn = errors.New("not logged in: run `billfold login` first")

// App is what commands run against.
type App struct {
	Config *config.Config
	Charm  *charm.Client
	Store  *store.Store
	Logger *log.Logger

	Out io.Writer
	In  io.Reader

	// ReadPassword reads a password without echo.
	ReadPassword func() (string, error)

	Now func() time.Time
}

// NewApp loads configuration from cfgPath (the default location when empty)
// and opens the preference store. logOut receives structured logs.
func NewApp(cfgPath string, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	models.PhoneRegion = cfg.PhoneRegion

	logger := config.NewLogger(logOut, cfg.LogLevel)

	charmCfg, err := charm.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load preference settings: %w", err)
	}
	client, err := charm.Open(charmCfg)
	if err != nil {
		return nil, err
	}
	prefs := charm.NewPrefs(client)

	gw := gateway.New(gateway.Options{
		APIBase:  cfg.APIBase,
		AuthBase: cfg.AuthBase,
		Tokens:   prefs,
		Logger:   logger,
	})

	s, err := store.New(store.Options{
		Gateway:           gw,
		Prefs:             prefs,
		Logger:            logger,
		SystemPrefersDark: lipgloss.HasDarkBackground,
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &App{
		Config:       cfg,
		Charm:        client,
		Store:        s,
		Logger:       logger,
		Out:          os.Stdout,
		In:           os.Stdin,
		ReadPassword: readTerminalPassword,
		Now:          time.Now,
	}, nil
}

func (a *App) Close() error {
	if a.Charm == nil {
		return nil
	}
	return a.Charm.Close()
}

// Resume reloads everything for the stored session. It fails with
// ErrNotLoggedIn when there is no session.
func (a *App) Resume(ctx context.Context) error {
	if !a.Store.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	if err := a.Store.Resume(ctx); err != nil {
		return fmt.Errorf("failed to load your data: %w", err)
	}
	return nil
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.Out, format, args...)
}

func readTerminalPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal to read a password from: pass --password")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
