package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DB represents a database connection interface.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SQLStore persists material records in SQLite or PostgreSQL. The full
// record is stored as a JSON document alongside a few indexed columns;
// $N placeholders and ON CONFLICT upserts work on both drivers.
type SQLStore struct {
	db DB
}

// NewSQLStore creates a store over an open database connection.
func NewSQLStore(db DB) *SQLStore {
	return &SQLStore{db: db}
}

const materialsSchema = `
	CREATE TABLE IF NOT EXISTS materials (
		id             TEXT PRIMARY KEY,
		product_name   TEXT NOT NULL,
		manufacturer   TEXT NOT NULL DEFAULT '',
		chemistry_type TEXT NOT NULL DEFAULT '',
		doc            TEXT NOT NULL,
		updated_at     TIMESTAMP NOT NULL
	)
`

// Migrate creates the materials table if it does not exist.
func (s *SQLStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, materialsSchema); err != nil {
		return fmt.Errorf("create materials table: %w", err)
	}
	return nil
}

func (s *SQLStore) GetAll(ctx context.Context) ([]MaterialRecord, error) {
	query := `SELECT doc FROM materials ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []MaterialRecord
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var rec MaterialRecord
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode material record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id string) (MaterialRecord, error) {
	query := `SELECT doc FROM materials WHERE id = $1`
	var doc []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return MaterialRecord{}, ErrNotFound
	}
	if err != nil {
		return MaterialRecord{}, err
	}
	var rec MaterialRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return MaterialRecord{}, fmt.Errorf("decode material record: %w", err)
	}
	return rec, nil
}

func (s *SQLStore) Put(ctx context.Context, rec MaterialRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode material record: %w", err)
	}
	query := `
		INSERT INTO materials (id, product_name, manufacturer, chemistry_type, doc, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			manufacturer = EXCLUDED.manufacturer,
			chemistry_type = EXCLUDED.chemistry_type,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.Classification.ProductName, rec.Classification.Manufacturer,
		rec.Physical.ChemistryType, string(doc), time.Now().UTC(),
	)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
