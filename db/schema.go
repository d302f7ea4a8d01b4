// ABOUTME: Database schema for the development gateway
// ABOUTME: Users, bearer sessions and generic per-resource JSON records
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);

CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner INTEGER NOT NULL,
	resource TEXT NOT NULL,
	fields TEXT NOT NULL DEFAULT '{}',
	created_at DATETIME NOT NULL,
	FOREIGN KEY (owner) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_records_owner_resource ON records(owner, resource);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
