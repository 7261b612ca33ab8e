// Package storage loads and saves complete address book snapshots.
package storage

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/config"
	"wedding-planner/internal/models"
)

// ErrIllegalValue is returned when stored data fails validation.
var ErrIllegalValue = errors.New("data file contains illegal values")

// Storage persists the whole address book. Save overwrites what was there.
type Storage interface {
	Load(ctx context.Context) (*addressbook.AddressBook, error)
	Save(ctx context.Context, ab addressbook.ReadOnly) error
	Path() string
	Close() error
}

// New opens the storage backend named by prefs.
func New(prefs config.UserPrefs) (Storage, error) {
	switch prefs.StorageBackend {
	case config.BackendJSON:
		return NewJSONStorage(prefs.DataFilePath), nil
	case config.BackendSQLite:
		return NewSQLiteStorage(prefs.DataFilePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", prefs.StorageBackend)
	}
}

// snapshot is the serialised form shared by the backends. Tables refer to
// guests by name.
type snapshot struct {
	Persons        []models.Person  `json:"persons"`
	Tables         []tableRecord    `json:"tables"`
	Weddings       []models.Wedding `json:"weddings"`
	CurrentWedding string           `json:"current_wedding,omitempty"`
}

type tableRecord struct {
	ID       int      `json:"id"`
	Capacity int      `json:"capacity"`
	Guests   []string `json:"guests"`
}

func snapshotOf(ab addressbook.ReadOnly) snapshot {
	s := snapshot{
		Persons:  ab.Persons(),
		Weddings: ab.Weddings(),
	}
	for _, t := range ab.Tables() {
		rec := tableRecord{ID: t.ID(), Capacity: t.Capacity(), Guests: []string{}}
		for _, g := range t.Guests() {
			rec.Guests = append(rec.Guests, g.Name)
		}
		s.Tables = append(s.Tables, rec)
	}
	if w, ok := ab.CurrentWedding(); ok {
		s.CurrentWedding = w.Name
	}
	return s
}

// snapshotBook adapts decoded data to addressbook.ReadOnly.
type snapshotBook struct {
	persons  []models.Person
	tables   []*models.Table
	weddings []models.Wedding
	current  *models.Wedding
}

func (b snapshotBook) Persons() []models.Person   { return b.persons }
func (b snapshotBook) Tables() []*models.Table    { return b.tables }
func (b snapshotBook) Weddings() []models.Wedding { return b.weddings }

func (b snapshotBook) CurrentWedding() (models.Wedding, bool) {
	if b.current == nil {
		return models.Wedding{}, false
	}
	return *b.current, true
}

// toAddressBook validates s and builds an address book from it.
func (s snapshot) toAddressBook() (*addressbook.AddressBook, error) {
	var b snapshotBook

	byName := make(map[string]models.Person, len(s.Persons))
	for _, p := range s.Persons {
		p.Tags = models.NormalizeTags(p.Tags)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIllegalValue, err)
		}
		// Validate accepts any casing; filters compare canonical values.
		p.Rsvp, _ = models.ParseRsvpStatus(string(p.Rsvp))
		p.Diet, _ = models.ParseDietaryRestriction(string(p.Diet))
		byName[p.Name] = p
		b.persons = append(b.persons, p)
	}

	for _, rec := range s.Tables {
		if rec.ID <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrIllegalValue, models.MessageTableIDConstraints)
		}
		if rec.Capacity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrIllegalValue, models.MessageCapacityConstraints)
		}
		guests := models.NewRsvpList()
		for _, name := range rec.Guests {
			p, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: table %d seats unknown guest %q", ErrIllegalValue, rec.ID, name)
			}
			guests = guests.With(p)
		}
		b.tables = append(b.tables, models.NewTable(rec.ID, rec.Capacity, guests))
	}

	for _, w := range s.Weddings {
		if !models.IsValidWeddingName(w.Name) {
			return nil, fmt.Errorf("%w: %s", ErrIllegalValue, models.MessageWeddingNameConstraints)
		}
		b.weddings = append(b.weddings, w)
		if w.Name == s.CurrentWedding {
			b.current = &w
		}
	}
	if s.CurrentWedding != "" && b.current == nil {
		return nil, fmt.Errorf("%w: current wedding %q is not listed", ErrIllegalValue, s.CurrentWedding)
	}

	ab, err := addressbook.NewFrom(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllegalValue, err)
	}
	return ab, nil
}
