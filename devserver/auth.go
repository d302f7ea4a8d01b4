// ABOUTME: Signup, login and bearer-token middleware for the development gateway
// ABOUTME: Passwords are bcrypt hashed; tokens are ULIDs stored as sessions
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/harperreed/billfold/db"
)

type ctxKey int

const userKey ctxKey = iota

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}

type meResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func userFrom(ctx context.Context) *db.User {
	u, _ := ctx.Value(userKey).(*db.User)
	return u
}

func (s *Server) issueToken(w http.ResponseWriter, user *db.User) {
	token := ulid.Make().String()
	if err := db.CreateSession(s.db, token, user.ID); err != nil {
		s.logger.Error("failed to create session", "err", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to create session")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, codeInputError, "Name, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInputError, err.Error())
		return
	}

	user, err := db.CreateUser(s.db, strings.TrimSpace(in.Name), in.Email, string(hash))
	if errors.Is(err, db.ErrEmailTaken) {
		writeError(w, http.StatusBadRequest, codeAccessDenied, "This account is already in use.")
		return
	}
	if err != nil {
		s.logger.Error("failed to create user", "err", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to create user")
		return
	}

	s.issueToken(w, user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON body")
		return
	}

	user, err := db.GetUserByEmail(s.db, in.Email)
	if err != nil && !errors.Is(err, db.ErrUserNotFound) {
		s.logger.Error("failed to look up user", "err", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to look up user")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		writeError(w, http.StatusUnauthorized, codeAccessDenied, "Invalid Credentials.")
		return
	}

	s.issueToken(w, user)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	writeJSON(w, http.StatusOK, meResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// requireUser resolves the bearer token to a user or answers 401.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "Authentication required.")
			return
		}

		user, err := db.UserForToken(s.db, strings.TrimSpace(token))
		if errors.Is(err, db.ErrSessionNotFound) {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "Invalid token.")
			return
		}
		if err != nil {
			s.logger.Error("failed to resolve session", "err", err)
			writeError(w, http.StatusInternalServerError, codeInternal, "Failed to resolve session")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}
