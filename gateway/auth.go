// ABOUTME: Gateway authentication endpoints
// ABOUTME: login and signup return a token, me returns the signed-in user

package gateway

import (
	"context"
	"net/http"

	"github.com/harperreed/billfold/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse accepts either field name the gateway uses for the token.
type authResponse struct {
	AuthToken string `json:"authToken"`
	Token     string `json:"token"`
}

func (r authResponse) token() string {
	if r.AuthToken != "" {
		return r.AuthToken
	}
	return r.Token
}

// Login exchanges credentials for a token. No bearer header is sent.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := c.do(ctx, c.plain, http.MethodPost, c.authBase+"/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", ErrNoToken
	}
	return resp.token(), nil
}

// Signup creates an account and returns its token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	var resp authResponse
	err := c.do(ctx, c.plain, http.MethodPost, c.authBase+"/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", ErrNoToken
	}
	return resp.token(), nil
}

// Me returns the user the stored token belongs to.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.do(ctx, c.authed, http.MethodGet, c.authBase+"/auth/me", nil, &user)
	return user, err
}
