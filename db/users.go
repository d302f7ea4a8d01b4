// ABOUTME: User accounts and bearer sessions for the development gateway
// ABOUTME: Emails are unique; sessions map an opaque token to a user
package db

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func CreateUser(db *sql.DB, name, email, passwordHash string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	result, err := db.Exec(`
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUser(db *sql.DB, id int64) (*User, error) {
	return scanUser(db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE id = ?
	`, id))
}

func GetUserByEmail(db *sql.DB, email string) (*User, error) {
	return scanUser(db.QueryRow(`
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE email = ?
	`, strings.ToLower(strings.TrimSpace(email))))
}

func CreateSession(db *sql.DB, token string, userID int64) error {
	_, err := db.Exec(`
		INSERT INTO sessions (token, user_id, created_at)
		VALUES (?, ?, ?)
	`, token, userID, time.Now().UTC())
	return err
}

// UserForToken resolves a bearer token to its user.
func UserForToken(db *sql.DB, token string) (*User, error) {
	user, err := scanUser(db.QueryRow(`
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = ?
	`, token))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrSessionNotFound
	}
	return user, err
}

func DeleteSession(db *sql.DB, token string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}
