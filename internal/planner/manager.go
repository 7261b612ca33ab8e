package planner

import (
	"github.com/rs/zerolog"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/config"
	"wedding-planner/internal/models"
)

// Manager is the in-memory Model. Like the address book it wraps, it has a
// single writer; listeners are called synchronously from Commit.
type Manager struct {
	ab    *addressbook.AddressBook
	prefs config.UserPrefs
	log   zerolog.Logger

	personPredicate models.PersonPredicate
	tablePredicate  models.TablePredicate

	version   uint64
	dirty     bool
	nextID    int
	listeners map[int]func(View)
}

// NewManager copies ab into a new model.
func NewManager(ab addressbook.ReadOnly, prefs config.UserPrefs, log zerolog.Logger) (*Manager, error) {
	book, err := addressbook.NewFrom(ab)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("component", "model").Logger()
	log.Debug().Stringer("address_book", book).Msg("Initializing model")

	return &Manager{
		ab:              book,
		prefs:           prefs,
		log:             log,
		personPredicate: models.ShowAllPersons{},
		tablePredicate:  models.ShowAllTables{},
		listeners:       make(map[int]func(View)),
	}, nil
}

//=========== UserPrefs ===========

func (m *Manager) UserPrefs() config.UserPrefs { return m.prefs }

func (m *Manager) SetUserPrefs(prefs config.UserPrefs) { m.prefs = prefs }

//=========== AddressBook ===========

func (m *Manager) SetAddressBook(ab addressbook.ReadOnly) error {
	return m.mutate(func() error { return m.ab.ResetData(ab) })
}

func (m *Manager) AddressBook() addressbook.ReadOnly { return m.ab }

//=========== Persons ===========

func (m *Manager) HasPerson(p models.Person) bool { return m.ab.HasPerson(p) }

// AddPerson also resets the person filter so the new person is visible.
func (m *Manager) AddPerson(p models.Person) error {
	if err := m.mutate(func() error { return m.ab.AddPerson(p) }); err != nil {
		return err
	}
	m.UpdateFilteredPersonList(models.ShowAllPersons{})
	return nil
}

func (m *Manager) DeletePerson(p models.Person) error {
	return m.mutate(func() error { return m.ab.RemovePerson(p) })
}

func (m *Manager) SetPerson(target, edited models.Person) error {
	return m.mutate(func() error { return m.ab.SetPerson(target, edited) })
}

func (m *Manager) FindPersonByName(name string) (models.Person, bool) {
	return m.ab.FindPersonByName(name)
}

func (m *Manager) FindPersonByPhone(phone string) (models.Person, bool) {
	return m.ab.FindPersonByPhone(phone)
}

// FilteredPersons applies the current predicate to the current persons.
func (m *Manager) FilteredPersons() []models.Person {
	var out []models.Person
	for _, p := range m.ab.Persons() {
		if m.personPredicate.Test(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredPersonList(pred models.PersonPredicate) {
	if pred == nil {
		pred = models.ShowAllPersons{}
	}
	m.personPredicate = pred
	m.dirty = true
}

//=========== Tables ===========

func (m *Manager) HasTable(t *models.Table) bool { return m.ab.HasTable(t) }

func (m *Manager) AddTable(t *models.Table) error {
	return m.mutate(func() error { return m.ab.AddTable(t) })
}

func (m *Manager) DeleteTable(tableID int) error {
	return m.mutate(func() error { return m.ab.DeleteTable(tableID) })
}

func (m *Manager) SetTable(target, edited *models.Table) error {
	return m.mutate(func() error { return m.ab.SetTable(target, edited) })
}

func (m *Manager) Table(tableID int) (*models.Table, bool) { return m.ab.Table(tableID) }

func (m *Manager) TableOf(p models.Person) (*models.Table, bool) { return m.ab.TableOf(p) }

func (m *Manager) AddPersonToTable(p models.Person, tableID int) error {
	return m.mutate(func() error { return m.ab.AddPersonToTable(p, tableID) })
}

func (m *Manager) DeletePersonFromTable(p models.Person, tableID int) error {
	return m.mutate(func() error { return m.ab.DeletePersonFromTable(p, tableID) })
}

func (m *Manager) FilteredTables() []*models.Table {
	var out []*models.Table
	for _, t := range m.ab.Tables() {
		if m.tablePredicate.Test(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *Manager) UpdateFilteredTableList(pred models.TablePredicate) {
	if pred == nil {
		pred = models.ShowAllTables{}
	}
	m.tablePredicate = pred
	m.dirty = true
}

//=========== Weddings ===========

func (m *Manager) AddWedding(w models.Wedding) error {
	return m.mutate(func() error { return m.ab.AddWedding(w) })
}

func (m *Manager) DeleteWedding(name string) error {
	return m.mutate(func() error { return m.ab.DeleteWedding(name) })
}

func (m *Manager) DeleteCurrentWedding() (models.Wedding, error) {
	var w models.Wedding
	err := m.mutate(func() error {
		var err error
		w, err = m.ab.DeleteCurrentWedding()
		return err
	})
	return w, err
}

func (m *Manager) SetCurrentWedding(name string) error {
	return m.mutate(func() error { return m.ab.SetCurrentWedding(name) })
}

func (m *Manager) CurrentWedding() (models.Wedding, bool) { return m.ab.CurrentWedding() }

func (m *Manager) Weddings() []models.Wedding { return m.ab.Weddings() }

// mutate runs fn and marks the view dirty only when it succeeds.
func (m *Manager) mutate(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	m.dirty = true
	return nil
}
