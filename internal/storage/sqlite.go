package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS persons (
	position INTEGER NOT NULL,
	name     TEXT PRIMARY KEY,
	phone    TEXT NOT NULL,
	email    TEXT NOT NULL,
	address  TEXT NOT NULL,
	rsvp     TEXT NOT NULL,
	diet     TEXT NOT NULL,
	tags     TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS seating_tables (
	position INTEGER NOT NULL,
	id       INTEGER PRIMARY KEY,
	capacity INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS seats (
	table_id   INTEGER NOT NULL REFERENCES seating_tables(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	guest_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS weddings (
	position   INTEGER NOT NULL,
	name       TEXT PRIMARY KEY,
	date       TEXT NOT NULL DEFAULT '',
	venue      TEXT NOT NULL DEFAULT '',
	is_current INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStorage keeps the address book in a SQLite database. Each Save
// rewrites every row inside one transaction.
type SQLiteStorage struct {
	db   *sql.DB
	file string
}

// NewSQLiteStorage opens (and creates if needed) the database at filePath.
func NewSQLiteStorage(filePath string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStorage{db: db, file: filePath}, nil
}

func (s *SQLiteStorage) Path() string { return s.file }

func (s *SQLiteStorage) Close() error { return s.db.Close() }

// Save replaces the stored address book with ab.
func (s *SQLiteStorage) Save(ctx context.Context, ab addressbook.ReadOnly) (err error) {
	snap := snapshotOf(ab)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, table := range []string{"seats", "seating_tables", "persons", "weddings"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, p := range snap.Persons {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO persons (position, name, phone, email, address, rsvp, diet, tags)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.Name, p.Phone, p.Email, p.Address, string(p.Rsvp), string(p.Diet), strings.Join(p.Tags, ","),
		)
		if err != nil {
			return fmt.Errorf("failed to insert person %s: %w", p.Name, err)
		}
	}

	for i, t := range snap.Tables {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO seating_tables (position, id, capacity) VALUES (?, ?, ?)`,
			i, t.ID, t.Capacity,
		); err != nil {
			return fmt.Errorf("failed to insert table %d: %w", t.ID, err)
		}
		for j, name := range t.Guests {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO seats (table_id, position, guest_name) VALUES (?, ?, ?)`,
				t.ID, j, name,
			); err != nil {
				return fmt.Errorf("failed to insert seat at table %d: %w", t.ID, err)
			}
		}
	}

	for i, w := range snap.Weddings {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO weddings (position, name, date, venue, is_current) VALUES (?, ?, ?, ?, ?)`,
			i, w.Name, w.Date, w.Venue, w.Name == snap.CurrentWedding,
		); err != nil {
			return fmt.Errorf("failed to insert wedding %s: %w", w.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Load reads the stored address book. An empty database yields an empty
// address book.
func (s *SQLiteStorage) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	var snap snapshot

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, phone, email, address, rsvp, diet, tags FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	for rows.Next() {
		var p models.Person
		var rsvp, diet, tags string
		if err := rows.Scan(&p.Name, &p.Phone, &p.Email, &p.Address, &rsvp, &diet, &tags); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Rsvp = models.RsvpStatus(rsvp)
		p.Diet = models.DietaryRestriction(diet)
		if tags != "" {
			p.Tags = strings.Split(tags, ",")
		}
		snap.Persons = append(snap.Persons, p)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, capacity FROM seating_tables ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	for rows.Next() {
		rec := tableRecord{Guests: []string{}}
		if err := rows.Scan(&rec.ID, &rec.Capacity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		snap.Tables = append(snap.Tables, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	for i := range snap.Tables {
		rows, err = s.db.QueryContext(ctx,
			`SELECT guest_name FROM seats WHERE table_id = ? ORDER BY position`, snap.Tables[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to query seats: %w", err)
		}
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan seat: %w", err)
			}
			snap.Tables[i].Guests = append(snap.Tables[i].Guests, name)
		}
		if err := closeRows(rows); err != nil {
			return nil, err
		}
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT name, date, venue, is_current FROM weddings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weddings: %w", err)
	}
	for rows.Next() {
		var w models.Wedding
		var current bool
		if err := rows.Scan(&w.Name, &w.Date, &w.Venue, &current); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan wedding: %w", err)
		}
		if current {
			snap.CurrentWedding = w.Name
		}
		snap.Weddings = append(snap.Weddings, w)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return snap.toAddressBook()
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed to read rows: %w", err)
	}
	return rows.Close()
}
