// ABOUTME: Error types returned by the gateway client
// ABOUTME: Non-2xx responses carry the raw body as their message

package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotAuthenticated means no token is stored; no request was sent.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoToken means a login or signup succeeded without returning a token.
	ErrNoToken = errors.New("gateway returned no auth token")
)

// ResponseError is a non-2xx answer from the gateway.
type ResponseError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// Error returns the body verbatim, since the gateway puts its human
// readable message there. An empty body falls back to the status text.
func (e *ResponseError) Error() string {
	if body := strings.TrimSpace(e.Body); body != "" {
		return e.Body
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether err is a 401 from the gateway or a missing token.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) {
		return true
	}
	var re *ResponseError
	return errors.As(err, &re) && re.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the gateway.
func IsNotFound(err error) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
