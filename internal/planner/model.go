// Package planner is the model facade commands run against. It forwards
// mutations to the address book and keeps filtered, versioned views of it.
package planner

import (
	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/config"
	"wedding-planner/internal/models"
)

// Model is the contract commands execute against.
type Model interface {
	UserPrefs() config.UserPrefs
	SetUserPrefs(config.UserPrefs)

	SetAddressBook(addressbook.ReadOnly) error
	AddressBook() addressbook.ReadOnly

	HasPerson(models.Person) bool
	AddPerson(models.Person) error
	DeletePerson(models.Person) error
	SetPerson(target, edited models.Person) error
	FindPersonByName(name string) (models.Person, bool)
	FindPersonByPhone(phone string) (models.Person, bool)
	FilteredPersons() []models.Person
	UpdateFilteredPersonList(models.PersonPredicate)

	HasTable(*models.Table) bool
	AddTable(*models.Table) error
	DeleteTable(tableID int) error
	SetTable(target, edited *models.Table) error
	Table(tableID int) (*models.Table, bool)
	TableOf(models.Person) (*models.Table, bool)
	AddPersonToTable(p models.Person, tableID int) error
	DeletePersonFromTable(p models.Person, tableID int) error
	FilteredTables() []*models.Table
	UpdateFilteredTableList(models.TablePredicate)

	AddWedding(models.Wedding) error
	DeleteWedding(name string) error
	DeleteCurrentWedding() (models.Wedding, error)
	SetCurrentWedding(name string) error
	CurrentWedding() (models.Wedding, bool)
	Weddings() []models.Wedding

	View() View
	Subscribe(func(View)) (unsubscribe func())
	Commit()
}
