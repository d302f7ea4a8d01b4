// ABOUTME: Session and data store shared by the CLI, TUI and MCP views
// ABOUTME: Holds auth state, the CRM collections and the theme; every write re-fetches

package store

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/billfold/gateway"
	"github.com/harperreed/billfold/models"
)

// Preferences persists the session token and the theme.
// *charm.Prefs satisfies it.
type Preferences interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
	Theme() (dark bool, ok bool, err error)
	SetTheme(dark bool) error
}

type Options struct {
	Gateway *gateway.Client
	Prefs   Preferences
	Logger  *log.Logger

	// SystemPrefersDark is consulted when no theme has been saved yet.
	SystemPrefersDark func() bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Store is safe for concurrent use. Concurrent calls of the same operation
// are not serialized; the last re-fetch to finish wins.
type Store struct {
	gw     *gateway.Client
	prefs  Preferences
	logger *log.Logger
	now    func() time.Time

	mu            sync.RWMutex
	authenticated bool
	dark          bool
	inflight      int
	err           string
	user          *models.User
	clients       []models.Client
	projects      []models.Project
	invoices      []models.Invoice
	activities    []models.Activity
}

// New builds a store. It reads the saved theme once, falling back to the
// system preference, and starts authenticated when a token is stored.
func New(opts Options) (*Store, error) {
	if opts.Gateway == nil || opts.Prefs == nil {
		return nil, errors.New("store needs a gateway and preferences")
	}

	s := &Store{
		gw:     opts.Gateway,
		prefs:  opts.Prefs,
		logger: opts.Logger,
		now:    opts.Now,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.WithPrefix("store")
	if s.now == nil {
		s.now = time.Now
	}

	dark, ok, err := opts.Prefs.Theme()
	if err != nil {
		return nil, err
	}
	if !ok && opts.SystemPrefersDark != nil {
		dark = opts.SystemPrefersDark()
	}
	s.dark = dark

	token, err := opts.Prefs.Token()
	if err != nil {
		return nil, err
	}
	s.authenticated = token != ""

	return s, nil
}

// begin marks an operation in flight and clears the last error.
// The returned func must be deferred.
func (s *Store) begin() func() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}
}

// fail records err as the visible error and returns it unchanged.
func (s *Store) fail(op string, err error) error {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()

	s.logger.Warn("operation failed", "op", op, "err", err)
	return err
}

// Resume refreshes everything when a token was stored by a previous run.
func (s *Store) Resume(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return nil
	}
	return s.RefreshAll(ctx)
}

// Loading reports whether any operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err is the message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ClearErr dismisses the visible error.
func (s *Store) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Store) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// User returns a copy of the signed-in user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Client(nil), s.clients...)
}

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.projects...)
}

func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneInvoices(s.invoices)
}

// cloneInvoices copies invoices along with their line items.
func cloneInvoices(invoices []models.Invoice) []models.Invoice {
	if invoices == nil {
		return nil
	}
	out := make([]models.Invoice, len(invoices))
	for i, inv := range invoices {
		inv.LineItems = append([]models.LineItem(nil), inv.LineItems...)
		out[i] = inv
	}
	return out
}

// Activities returns the activity log in gateway order.
func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Activity(nil), s.activities...)
}

// Snapshot is a consistent copy of everything a view renders.
type Snapshot struct {
	Authenticated bool
	DarkMode      bool
	Loading       bool
	Err           string
	User          *models.User
	Clients       []models.Client
	Projects      []models.Project
	Invoices      []models.Invoice
	Activities    []models.Activity
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Authenticated: s.authenticated,
		DarkMode:      s.dark,
		Loading:       s.inflight > 0,
		Err:           s.err,
		Clients:       append([]models.Client(nil), s.clients...),
		Projects:      append([]models.Project(nil), s.projects...),
		Invoices:      cloneInvoices(s.invoices),
		Activities:    append([]models.Activity(nil), s.activities...),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}
