// ABOUTME: Client, project and invoice operations on the store
// ABOUTME: Each write validates, calls the gateway, then re-fetches the collection

package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harperreed/billfold/gateway"
	"github.com/harperreed/billfold/models"
)

// reload replaces *dst with a fresh list of res.
func reload[T any](ctx context.Context, s *Store, res gateway.Resource[T], dst *[]T) error {
	items, err := res.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	*dst = items
	s.mu.Unlock()
	return nil
}

// recordActivity posts an activity entry and reloads the log. Failures
// are logged only; the write that triggered it already succeeded.
func (s *Store) recordActivity(ctx context.Context, kind models.ActivityType, message string) {
	entry := models.ActivityInput{
		Message:   message,
		Timestamp: models.NewTimestamp(s.now()),
		Type:      kind,
	}
	if _, err := s.gw.ActivityLog().Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "message", message, "err", err)
		return
	}
	if err := reload(ctx, s, s.gw.ActivityLog(), &s.activities); err != nil {
		s.logger.Warn("failed to reload activity log", "err", err)
	}
}

func (s *Store) CreateClient(ctx context.Context, in models.ClientInput) error {
	done := s.begin()
	defer done()

	if err := models.Validate(in); err != nil {
		return s.fail("create client", err)
	}
	if in.Phone != "" {
		in.Phone = models.NormalizePhone(in.Phone, models.PhoneRegion)
	}

	if _, err := s.gw.Clients().Create(ctx, in); err != nil {
		return s.fail("create client", err)
	}
	if err := reload(ctx, s, s.gw.Clients(), &s.clients); err != nil {
		return s.fail("reload clients", err)
	}

	s.recordActivity(ctx, models.ActivityClient, fmt.Sprintf("New client %s added", in.Name))
	return nil
}

func (s *Store) UpdateClient(ctx context.Context, id models.ID, patch models.ClientPatch) error {
	done := s.begin()
	defer done()

	if err := models.Validate(patch); err != nil {
		return s.fail("update client", err)
	}
	if patch.Phone != nil && *patch.Phone != "" {
		phone := models.NormalizePhone(*patch.Phone, models.PhoneRegion)
		patch.Phone = &phone
	}

	if _, err := s.gw.Clients().Update(ctx, id, patch); err != nil {
		return s.fail("update client", err)
	}
	if err := reload(ctx, s, s.gw.Clients(), &s.clients); err != nil {
		return s.fail("reload clients", err)
	}
	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id models.ID) error {
	done := s.begin()
	defer done()

	if err := s.gw.Clients().Delete(ctx, id); err != nil {
		return s.fail("delete client", err)
	}
	if err := reload(ctx, s, s.gw.Clients(), &s.clients); err != nil {
		return s.fail("reload clients", err)
	}
	return nil
}

// CreateProject copies the client's current name onto the project when
// the caller left it empty.
func (s *Store) CreateProject(ctx context.Context, in models.ProjectInput) error {
	done := s.begin()
	defer done()

	if err := models.Validate(in); err != nil {
		return s.fail("create project", err)
	}
	if in.ClientName == "" {
		in.ClientName = models.ClientName(s.Clients(), in.ClientID)
	}

	if _, err := s.gw.Projects().Create(ctx, in); err != nil {
		return s.fail("create project", err)
	}
	if err := reload(ctx, s, s.gw.Projects(), &s.projects); err != nil {
		return s.fail("reload projects", err)
	}

	s.recordActivity(ctx, models.ActivityProject, fmt.Sprintf("New project %q created", in.Title))
	return nil
}

func (s *Store) UpdateProject(ctx context.Context, id models.ID, patch models.ProjectPatch) error {
	done := s.begin()
	defer done()

	if err := models.Validate(patch); err != nil {
		return s.fail("update project", err)
	}
	if _, err := s.gw.Projects().Update(ctx, id, patch); err != nil {
		return s.fail("update project", err)
	}
	if err := reload(ctx, s, s.gw.Projects(), &s.projects); err != nil {
		return s.fail("reload projects", err)
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id models.ID) error {
	done := s.begin()
	defer done()

	if err := s.gw.Projects().Delete(ctx, id); err != nil {
		return s.fail("delete project", err)
	}
	if err := reload(ctx, s, s.gw.Projects(), &s.projects); err != nil {
		return s.fail("reload projects", err)
	}
	return nil
}

// CreateInvoice recomputes every line amount and the total before
// sending, so amount = quantity × rate and total = Σ amount hold on the
// submitted record whatever the caller passed.
func (s *Store) CreateInvoice(ctx context.Context, in models.InvoiceInput) error {
	done := s.begin()
	defer done()

	if err := models.Validate(in); err != nil {
		return s.fail("create invoice", err)
	}
	if in.ClientName == "" {
		in.ClientName = models.ClientName(s.Clients(), in.ClientID)
	}

	items := make([]models.LineItemInput, len(in.LineItems))
	in.Total = decimal.Zero
	for i, item := range in.LineItems {
		item.Amount = item.Quantity.Mul(item.Rate)
		items[i] = item
		in.Total = in.Total.Add(item.Amount)
	}
	in.LineItems = items

	if _, err := s.gw.Invoices().Create(ctx, in); err != nil {
		return s.fail("create invoice", err)
	}
	if err := reload(ctx, s, s.gw.Invoices(), &s.invoices); err != nil {
		return s.fail("reload invoices", err)
	}

	s.recordActivity(ctx, models.ActivityInvoice, fmt.Sprintf("New invoice sent to %s", in.ClientName))
	return nil
}

func (s *Store) UpdateInvoice(ctx context.Context, id models.ID, patch models.InvoicePatch) error {
	done := s.begin()
	defer done()

	if err := models.Validate(patch); err != nil {
		return s.fail("update invoice", err)
	}
	if _, err := s.gw.Invoices().Update(ctx, id, patch); err != nil {
		return s.fail("update invoice", err)
	}
	if err := reload(ctx, s, s.gw.Invoices(), &s.invoices); err != nil {
		return s.fail("reload invoices", err)
	}
	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id models.ID) error {
	done := s.begin()
	defer done()

	if err := s.gw.Invoices().Delete(ctx, id); err != nil {
		return s.fail("delete invoice", err)
	}
	if err := reload(ctx, s, s.gw.Invoices(), &s.invoices); err != nil {
		return s.fail("reload invoices", err)
	}
	return nil
}
