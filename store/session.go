// ABOUTME: Sign-in, sign-up, full refresh and sign-out for the store
// ABOUTME: RefreshAll reads five collections concurrently and fails as a whole

package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/harperreed/billfold/models"
)

// Authenticate logs in, saves the token and loads everything.
func (s *Store) Authenticate(ctx context.Context, email, password string) error {
	done := s.begin()
	defer done()

	token, err := s.gw.Login(ctx, email, password)
	if err != nil {
		s.setAuthenticated(false)
		return s.fail("login", err)
	}
	return s.signIn(ctx, token)
}

// Register creates an account, saves the token and loads everything.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	done := s.begin()
	defer done()

	token, err := s.gw.Signup(ctx, name, email, password)
	if err != nil {
		s.setAuthenticated(false)
		return s.fail("signup", err)
	}
	return s.signIn(ctx, token)
}

func (s *Store) signIn(ctx context.Context, token string) error {
	if err := s.prefs.SetToken(token); err != nil {
		return s.fail("save token", err)
	}
	s.setAuthenticated(true)
	return s.refreshAll(ctx)
}

func (s *Store) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}

// RefreshAll replaces the user and all four collections. If any read
// fails nothing is replaced and the session is marked unauthenticated;
// the stored token is kept.
func (s *Store) RefreshAll(ctx context.Context) error {
	done := s.begin()
	defer done()
	return s.refreshAll(ctx)
}

func (s *Store) refreshAll(ctx context.Context) error {
	var (
		clients    []models.Client
		projects   []models.Project
		invoices   []models.Invoice
		activities []models.Activity
		user       models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clients, err = s.gw.Clients().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = s.gw.Projects().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		invoices, err = s.gw.Invoices().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.gw.ActivityLog().List(gctx)
		return err
	})
	g.Go(func() (err error) {
		user, err = s.gw.Me(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.setAuthenticated(false)
		return s.fail("refresh", err)
	}

	s.mu.Lock()
	s.clients = clients
	s.projects = projects
	s.invoices = invoices
	s.activities = activities
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()

	s.logger.Debug("refreshed",
		"clients", len(clients),
		"projects", len(projects),
		"invoices", len(invoices),
		"activities", len(activities),
	)
	return nil
}

// EndSession forgets the user and collections and removes the stored
// token. The gateway is not told; the theme is kept.
func (s *Store) EndSession() error {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.clients = nil
	s.projects = nil
	s.invoices = nil
	s.activities = nil
	s.mu.Unlock()

	if err := s.prefs.ClearToken(); err != nil {
		return s.fail("logout", err)
	}
	return nil
}

// SetTheme switches the theme and saves it.
func (s *Store) SetTheme(dark bool) error {
	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()

	if err := s.prefs.SetTheme(dark); err != nil {
		return s.fail("save theme", err)
	}
	return nil
}

// ToggleTheme flips the theme and returns the new setting.
func (s *Store) ToggleTheme() (bool, error) {
	dark := !s.IsDarkMode()
	return dark, s.SetTheme(dark)
}

// UpdateUser edits the in-memory profile. The gateway has no profile
// endpoint, so the change lasts until the next refresh. Without a loaded
// user it does nothing.
func (s *Store) UpdateUser(patch models.UserPatch) error {
	if err := models.Validate(patch); err != nil {
		return s.fail("update profile", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	return nil
}
