// ABOUTME: Generic CRUD over a gateway resource collection
// ABOUTME: list, get, create, patch and delete, all bearer-authenticated

package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/harperreed/billfold/models"
)

// Resource names as they appear in gateway paths.
const (
	ResourceClient      = "client"
	ResourceProject     = "project"
	ResourceInvoice     = "invoice"
	ResourceLineItem    = "invoice_line_item"
	ResourceActivityLog = "activity_log"
)

// Resources lists every collection the gateway exposes.
var Resources = []string{ResourceClient, ResourceProject, ResourceInvoice, ResourceLineItem, ResourceActivityLog}

// Resource is one collection of T under the API base.
type Resource[T any] struct {
	c    *Client
	name string
}

func (r Resource[T]) Name() string {
	return r.name
}

func (r Resource[T]) collectionURL() string {
	return r.c.apiBase + "/" + r.name
}

func (r Resource[T]) itemURL(id models.ID) string {
	return r.collectionURL() + "/" + url.PathEscape(id.String())
}

// List returns every record. A null body reads as an empty list.
func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, r.c.authed, http.MethodGet, r.collectionURL(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r Resource[T]) Get(ctx context.Context, id models.ID) (T, error) {
	var item T
	err := r.c.do(ctx, r.c.authed, http.MethodGet, r.itemURL(id), nil, &item)
	return item, err
}

// Create posts in and returns the record as the gateway stored it.
func (r Resource[T]) Create(ctx context.Context, in any) (T, error) {
	var item T
	err := r.c.do(ctx, r.c.authed, http.MethodPost, r.collectionURL(), in, &item)
	return item, err
}

// Update sends patch as a PATCH; only the fields present change.
func (r Resource[T]) Update(ctx context.Context, id models.ID, patch any) (T, error) {
	var item T
	err := r.c.do(ctx, r.c.authed, http.MethodPatch, r.itemURL(id), patch, &item)
	return item, err
}

func (r Resource[T]) Delete(ctx context.Context, id models.ID) error {
	return r.c.do(ctx, r.c.authed, http.MethodDelete, r.itemURL(id), nil, nil)
}

func (c *Client) Clients() Resource[models.Client] {
	return Resource[models.Client]{c: c, name: ResourceClient}
}

func (c *Client) Projects() Resource[models.Project] {
	return Resource[models.Project]{c: c, name: ResourceProject}
}

func (c *Client) Invoices() Resource[models.Invoice] {
	return Resource[models.Invoice]{c: c, name: ResourceInvoice}
}

func (c *Client) LineItems() Resource[models.LineItem] {
	return Resource[models.LineItem]{c: c, name: ResourceLineItem}
}

func (c *Client) ActivityLog() Resource[models.Activity] {
	return Resource[models.Activity]{c: c, name: ResourceActivityLog}
}
