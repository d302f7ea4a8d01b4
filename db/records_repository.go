// ABOUTME: Generic JSON record storage keyed by resource name and owner
// ABOUTME: CRUD with merge-patch updates; ids are assigned by SQLite

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidRecord  = errors.New("invalid record")
)

// Record is one row of a resource collection. Fields holds everything the
// client sent except id and createdAt, which the store owns.
type Record struct {
	ID        int64
	Owner     int64
	Resource  string
	Fields    map[string]any
	CreatedAt time.Time
}

// Document flattens the record into the JSON shape clients expect:
// the stored fields plus id and createdAt (epoch milliseconds).
func (r *Record) Document() map[string]any {
	doc := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc["id"] = r.ID
	doc["createdAt"] = r.CreatedAt.UnixMilli()
	return doc
}

// RecordsRepository provides owner-scoped CRUD over records.
type RecordsRepository struct {
	db *sql.DB
}

func NewRecordsRepository(db *sql.DB) *RecordsRepository {
	return &RecordsRepository{db: db}
}

// stripReserved drops keys the store assigns itself.
func stripReserved(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "createdAt" {
			continue
		}
		out[k] = v
	}
	return out
}

func (r *RecordsRepository) Create(ctx context.Context, owner int64, resource string, fields map[string]any) (*Record, error) {
	if resource == "" {
		return nil, ErrInvalidRecord
	}

	rec := &Record{
		Owner:     owner,
		Resource:  resource,
		Fields:    stripReserved(fields),
		CreatedAt: time.Now().UTC(),
	}

	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, `
		INSERT INTO records (owner, resource, fields, created_at)
		VALUES (?, ?, ?, ?)
	`, rec.Owner, rec.Resource, string(fieldsJSON), rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	rec.ID, err = result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var fieldsJSON string

	if err := row.Scan(&rec.ID, &rec.Owner, &rec.Resource, &fieldsJSON, &rec.CreatedAt); err != nil {
		return nil, err
	}

	rec.Fields = make(map[string]any)
	if fieldsJSON != "" && fieldsJSON != "null" {
		// Numbers stay json.Number so money keeps its exact digits
		dec := json.NewDecoder(strings.NewReader(fieldsJSON))
		dec.UseNumber()
		if err := dec.Decode(&rec.Fields); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

func (r *RecordsRepository) Get(ctx context.Context, owner int64, resource string, id int64) (*Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, `
		SELECT id, owner, resource, fields, created_at
		FROM records
		WHERE id = ? AND owner = ? AND resource = ?
	`, id, owner, resource))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

// List returns the owner's records for resource, newest first.
func (r *RecordsRepository) List(ctx context.Context, owner int64, resource string) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner, resource, fields, created_at
		FROM records
		WHERE owner = ? AND resource = ?
		ORDER BY created_at DESC, id DESC
	`, owner, resource)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records := make([]*Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Patch merges fields into the stored record. A null value removes the key.
func (r *RecordsRepository) Patch(ctx context.Context, owner int64, resource string, id int64, fields map[string]any) (*Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rec, err := scanRecord(tx.QueryRowContext(ctx, `
		SELECT id, owner, resource, fields, created_at
		FROM records
		WHERE id = ? AND owner = ? AND resource = ?
	`, id, owner, resource))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	for k, v := range stripReserved(fields) {
		if v == nil {
			delete(rec.Fields, k)
			continue
		}
		rec.Fields[k] = v
	}

	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET fields = ? WHERE id = ?`, string(fieldsJSON), id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *RecordsRepository) Delete(ctx context.Context, owner int64, resource string, id int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM records WHERE id = ? AND owner = ? AND resource = ?
	`, id, owner, resource)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}
	return nil
}
