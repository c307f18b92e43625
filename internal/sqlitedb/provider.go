// Package sqlitedb loads a schema model straight from the record service's
// embedded SQLite database file.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	// Registers the sqlite3 driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// Each collection row stores its field list as a serialized JSON column.
const collectionsQuery = `SELECT name, schema FROM _collections`

// Provider queries the _collections table and decodes each row's serialized
// field list into the schema model.
type Provider struct {
	path string
	db   *sql.DB
}

var _ schema.Provider = (*Provider)(nil)

// New constructs a Provider that opens the database file at path on Load.
func New(path string) *Provider {
	return &Provider{path: path}
}

// NewWithDB wraps an existing database handle. The caller keeps ownership of
// the handle's lifecycle.
func NewWithDB(db *sql.DB) *Provider {
	return &Provider{db: db}
}

// Load queries every collection row and normalizes it into the schema model.
func (p *Provider) Load(ctx context.Context) ([]schema.Collection, error) {
	db := p.db
	if db == nil {
		if p.path == "" {
			return nil, errors.New("sqlitedb: database path is required")
		}
		if _, err := os.Stat(p.path); err != nil {
			return nil, fmt.Errorf("sqlitedb: database file: %w", err)
		}
		handle, err := sql.Open("sqlite3", p.path)
		if err != nil {
			return nil, fmt.Errorf("sqlitedb: open database: %w", err)
		}
		defer func() {
			_ = handle.Close()
		}()
		db = handle
	}

	rows, err := db.QueryContext(ctx, collectionsQuery)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: query collections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var collections []schema.Collection
	for rows.Next() {
		var (
			name      string
			rawFields sql.NullString
		)
		if err := rows.Scan(&name, &rawFields); err != nil {
			return nil, fmt.Errorf("sqlitedb: scan collection row: %w", err)
		}

		collection := schema.Collection{Name: name}
		if rawFields.Valid && rawFields.String != "" {
			fields, err := schema.ParseFields([]byte(rawFields.String))
			if err != nil {
				return nil, fmt.Errorf("sqlitedb: collection %q: %w", name, err)
			}
			collection.Fields = fields
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitedb: iterate collections: %w", err)
	}
	return collections, nil
}
