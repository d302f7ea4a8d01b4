// ABOUTME: HTTP client for the remote API gateway
// ABOUTME: JSON in and out, bearer auth through an oauth2 transport

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// TokenSource yields the persisted auth token, or "" when signed out.
type TokenSource interface {
	Token() (string, error)
}

type Options struct {
	// APIBase is the root of the resource endpoints.
	APIBase string
	// AuthBase is the root of the /auth endpoints.
	AuthBase string
	// Tokens is consulted on every authenticated request.
	Tokens TokenSource
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	Logger     *log.Logger
}

type Client struct {
	apiBase  string
	authBase string
	plain    *http.Client
	authed   *http.Client
	logger   *log.Logger
}

func New(opts Options) *Client {
	base := opts.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	authed := &http.Client{
		Transport: &oauth2.Transport{
			Source: bearerSource{tokens: opts.Tokens},
			Base:   base.Transport,
		},
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
		Timeout:       base.Timeout,
	}

	return &Client{
		apiBase:  strings.TrimRight(opts.APIBase, "/"),
		authBase: strings.TrimRight(opts.AuthBase, "/"),
		plain:    base,
		authed:   authed,
		logger:   logger.WithPrefix("gateway"),
	}
}

// bearerSource adapts the persisted token to oauth2. It is read on each
// request so a login or logout takes effect immediately.
type bearerSource struct {
	tokens TokenSource
}

func (s bearerSource) Token() (*oauth2.Token, error) {
	if s.tokens == nil {
		return nil, ErrNotAuthenticated
	}
	tok, err := s.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	if tok == "" {
		return nil, ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil and the body is not empty).
func (c *Client) do(ctx context.Context, hc *http.Client, method, rawURL string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	path := req.URL.Path
	c.logger.Debug("request", "method", method, "path", path)

	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return ErrNotAuthenticated
		}
		c.logger.Warn("request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("gateway error", "method", method, "path", path, "status", resp.StatusCode)
		return &ResponseError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}
