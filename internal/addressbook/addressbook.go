// Package addressbook holds the guest, table and wedding collections and the
// rules that tie them together.
package addressbook

import (
	"fmt"
	"slices"

	"wedding-planner/internal/models"
)

// ReadOnly is a view of an address book used for copying and persistence.
type ReadOnly interface {
	Persons() []models.Person
	Tables() []*models.Table
	Weddings() []models.Wedding
	CurrentWedding() (models.Wedding, bool)
}

// currentWedding is either unset or names a wedding held by the book.
type currentWedding struct {
	name string
	set  bool
}

// AddressBook is the single source of truth. It is not safe for concurrent
// use; one caller mutates it at a time.
type AddressBook struct {
	persons  *UniquePersonList
	tables   *UniqueTableList
	weddings []models.Wedding
	current  currentWedding
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{
		persons: NewUniquePersonList(),
		tables:  NewUniqueTableList(),
	}
}

// NewFrom copies the contents of src into a new address book.
func NewFrom(src ReadOnly) (*AddressBook, error) {
	ab := New()
	if err := ab.ResetData(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// ResetData replaces all persons, tables and weddings with those of other.
// On error the book is left unchanged.
func (ab *AddressBook) ResetData(other ReadOnly) error {
	persons := NewUniquePersonList()
	if err := persons.SetPersons(other.Persons()); err != nil {
		return err
	}
	tables := NewUniqueTableList()
	if err := tables.SetTables(other.Tables()); err != nil {
		return err
	}
	weddings := other.Weddings()
	for i, w := range weddings {
		if slices.ContainsFunc(weddings[:i], w.IsSameWedding) {
			return fmt.Errorf("%w: %s", ErrDuplicateWedding, w.Name)
		}
	}
	var current currentWedding
	if w, ok := other.CurrentWedding(); ok {
		if !slices.ContainsFunc(weddings, w.IsSameWedding) {
			return fmt.Errorf("%w: current wedding %s", ErrWeddingNotFound, w.Name)
		}
		current = currentWedding{name: w.Name, set: true}
	}

	ab.persons = persons
	ab.tables = tables
	ab.weddings = slices.Clone(weddings)
	ab.current = current
	return nil
}

//=========== Persons ===========

func (ab *AddressBook) HasPerson(p models.Person) bool {
	return ab.persons.Contains(p)
}

func (ab *AddressBook) AddPerson(p models.Person) error {
	return ab.persons.Add(p)
}

// SetPerson replaces target with edited and keeps the seating plan in step:
// a seated guest is re-seated as edited, or unseated if edited declined.
func (ab *AddressBook) SetPerson(target, edited models.Person) error {
	if err := ab.persons.SetPerson(target, edited); err != nil {
		return err
	}
	if edited.Rsvp == models.RsvpNo {
		ab.tables.RemoveGuest(target)
		return nil
	}
	ab.tables.ReplaceGuest(target, edited)
	return nil
}

// RemovePerson deletes p and unseats it everywhere.
func (ab *AddressBook) RemovePerson(p models.Person) error {
	if err := ab.persons.Remove(p); err != nil {
		return err
	}
	ab.tables.RemoveGuest(p)
	return nil
}

func (ab *AddressBook) FindPersonByName(name string) (models.Person, bool) {
	return ab.persons.FindByName(name)
}

func (ab *AddressBook) FindPersonByPhone(phone string) (models.Person, bool) {
	return ab.persons.FindByPhone(phone)
}

func (ab *AddressBook) Persons() []models.Person {
	return ab.persons.Persons()
}

//=========== Tables ===========

func (ab *AddressBook) HasTable(t *models.Table) bool {
	return ab.tables.Contains(t)
}

func (ab *AddressBook) AddTable(t *models.Table) error {
	return ab.tables.Add(t)
}

func (ab *AddressBook) DeleteTable(tableID int) error {
	return ab.tables.Delete(tableID)
}

func (ab *AddressBook) SetTable(target, edited *models.Table) error {
	return ab.tables.SetTable(target, edited)
}

func (ab *AddressBook) Table(tableID int) (*models.Table, bool) {
	return ab.tables.Find(tableID)
}

func (ab *AddressBook) TableOf(p models.Person) (*models.Table, bool) {
	return ab.tables.TableOf(p)
}

func (ab *AddressBook) AddPersonToTable(p models.Person, tableID int) error {
	return ab.tables.AssignGuestToTable(tableID, p)
}

func (ab *AddressBook) DeletePersonFromTable(p models.Person, tableID int) error {
	return ab.tables.DeleteGuestFromTable(tableID, p)
}

func (ab *AddressBook) Tables() []*models.Table {
	return ab.tables.Tables()
}

//=========== Weddings ===========

// AddWedding records w. It does not make w current.
func (ab *AddressBook) AddWedding(w models.Wedding) error {
	if slices.ContainsFunc(ab.weddings, w.IsSameWedding) {
		return fmt.Errorf("%w: %s", ErrDuplicateWedding, w.Name)
	}
	ab.weddings = append(ab.weddings, w)
	return nil
}

func (ab *AddressBook) Wedding(name string) (models.Wedding, bool) {
	i := ab.weddingIndex(name)
	if i < 0 {
		return models.Wedding{}, false
	}
	return ab.weddings[i], true
}

func (ab *AddressBook) Weddings() []models.Wedding {
	return slices.Clone(ab.weddings)
}

func (ab *AddressBook) SetCurrentWedding(name string) error {
	if ab.weddingIndex(name) < 0 {
		return fmt.Errorf("%w: %s", ErrWeddingNotFound, name)
	}
	ab.current = currentWedding{name: name, set: true}
	return nil
}

func (ab *AddressBook) CurrentWedding() (models.Wedding, bool) {
	if !ab.current.set {
		return models.Wedding{}, false
	}
	return ab.Wedding(ab.current.name)
}

// DeleteWedding removes the named wedding. Deleting the current wedding also
// clears the seating plan, since tables belong to the current wedding; guests
// stay in the book.
func (ab *AddressBook) DeleteWedding(name string) error {
	i := ab.weddingIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrWeddingNotFound, name)
	}
	ab.weddings = slices.Delete(ab.weddings, i, i+1)
	if ab.current.set && ab.current.name == name {
		ab.current = currentWedding{}
		ab.tables = NewUniqueTableList()
	}
	return nil
}

// DeleteCurrentWedding removes the current wedding and its seating plan.
func (ab *AddressBook) DeleteCurrentWedding() (models.Wedding, error) {
	w, ok := ab.CurrentWedding()
	if !ok {
		return models.Wedding{}, ErrNoCurrentWedding
	}
	return w, ab.DeleteWedding(w.Name)
}

func (ab *AddressBook) weddingIndex(name string) int {
	return slices.IndexFunc(ab.weddings, func(w models.Wedding) bool { return w.Name == name })
}

// Equal compares contents, including order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	cw, cok := ab.CurrentWedding()
	ow, ook := other.CurrentWedding()
	return slices.EqualFunc(ab.Persons(), other.Persons(), models.Person.Equal) &&
		slices.EqualFunc(ab.Tables(), other.Tables(), (*models.Table).Equal) &&
		slices.Equal(ab.weddings, other.weddings) &&
		cok == ook && cw == ow
}

func (ab *AddressBook) String() string {
	return fmt.Sprintf("%d persons, %d tables, %d weddings", ab.persons.Len(), ab.tables.Len(), len(ab.weddings))
}
