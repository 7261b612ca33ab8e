package commands

import (
	"fmt"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

const (
	AddTableWord  = "add-table"
	AddTableUsage = AddTableWord + ": Adds a table to the current wedding.\n" +
		"Parameters: tid/TABLE_ID c/CAPACITY\n" +
		"Example: " + AddTableWord + " tid/1 c/8"

	DeleteTableWord  = "delete-table"
	DeleteTableUsage = DeleteTableWord + ": Deletes a table from the current wedding.\n" +
		"Parameters: tid/TABLE_ID\n" +
		"Example: " + DeleteTableWord + " tid/1"

	FindTableWord  = "find-table"
	FindTableUsage = FindTableWord + ": Shows the table with the given ID.\n" +
		"Parameters: tid/TABLE_ID\n" +
		"Example: " + FindTableWord + " tid/1"

	GetAllTablesWord  = "get-all-tables"
	GetAllTablesUsage = GetAllTablesWord + ": Shows all tables. Takes no arguments."

	AddGuestToTableWord  = "add-guest-to-table"
	AddGuestToTableUsage = AddGuestToTableWord + ": Seats a guest who has accepted at a table.\n" +
		"Parameters: n/NAME tid/TABLE_ID\n" +
		"Example: " + AddGuestToTableWord + " n/Jane Roe tid/1"

	DeleteGuestFromTableWord  = "delete-guest-from-table"
	DeleteGuestFromTableUsage = DeleteGuestFromTableWord + ": Removes a guest from a table.\n" +
		"Parameters: n/NAME tid/TABLE_ID\n" +
		"Example: " + DeleteGuestFromTableWord + " n/Jane Roe tid/1"
)

type AddTableCommand struct {
	TableID  int
	Capacity int
}

func (c AddTableCommand) Execute(m planner.Model) (Result, error) {
	if _, err := requireCurrentWedding(m); err != nil {
		return Result{}, err
	}
	table := models.NewTable(c.TableID, c.Capacity, models.NewRsvpList())
	if err := m.AddTable(table); err != nil {
		return Result{}, fmt.Errorf("could not add table: %w", err)
	}
	m.UpdateFilteredTableList(models.ShowAllTables{})
	return Result{Feedback: fmt.Sprintf("New table added: %s", table), Display: DisplayTables}, nil
}

type DeleteTableCommand struct {
	TableID int
}

func (c DeleteTableCommand) Execute(m planner.Model) (Result, error) {
	if _, err := requireCurrentWedding(m); err != nil {
		return Result{}, err
	}
	if err := m.DeleteTable(c.TableID); err != nil {
		return Result{}, fmt.Errorf("could not delete table: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Deleted table %d", c.TableID), Display: DisplayTables}, nil
}

type FindTableCommand struct {
	TableID int
}

func (c FindTableCommand) Execute(m planner.Model) (Result, error) {
	table, ok := m.Table(c.TableID)
	if !ok {
		return Result{}, fmt.Errorf("%w: table with ID %d", addressbook.ErrTableNotFound, c.TableID)
	}
	m.UpdateFilteredTableList(models.TableIDIs{ID: c.TableID})
	return Result{Feedback: table.String(), Display: DisplayTables}, nil
}

type GetAllTablesCommand struct{}

func (GetAllTablesCommand) Execute(m planner.Model) (Result, error) {
	m.UpdateFilteredTableList(models.ShowAllTables{})
	return Result{
		Feedback: fmt.Sprintf("%d tables listed!", len(m.FilteredTables())),
		Display:  DisplayTables,
	}, nil
}

// AddGuestToTableCommand seats a guest. Only guests who answered YES and are
// not seated elsewhere can be seated.
type AddGuestToTableCommand struct {
	Name    string
	TableID int
}

func (c AddGuestToTableCommand) Execute(m planner.Model) (Result, error) {
	if _, err := requireCurrentWedding(m); err != nil {
		return Result{}, err
	}
	guest, err := findGuest(m, c.Name)
	if err != nil {
		return Result{}, err
	}
	if guest.Rsvp != models.RsvpYes {
		return Result{}, fmt.Errorf("%w: %s has RSVP %s", ErrGuestNotAttending, guest.Name, guest.Rsvp)
	}
	if t, ok := m.TableOf(guest); ok {
		return Result{}, fmt.Errorf("%w: %s sits at table %d", ErrGuestAlreadySeated, guest.Name, t.ID())
	}
	if err := m.AddPersonToTable(guest, c.TableID); err != nil {
		return Result{}, fmt.Errorf("could not seat %s: %w", guest.Name, err)
	}
	return Result{
		Feedback: fmt.Sprintf("Guest %s assigned to table %d", guest.Name, c.TableID),
		Display:  DisplayTables,
	}, nil
}

type DeleteGuestFromTableCommand struct {
	Name    string
	TableID int
}

func (c DeleteGuestFromTableCommand) Execute(m planner.Model) (Result, error) {
	if _, err := requireCurrentWedding(m); err != nil {
		return Result{}, err
	}
	guest, err := findGuest(m, c.Name)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePersonFromTable(guest, c.TableID); err != nil {
		return Result{}, fmt.Errorf("could not unseat %s: %w", guest.Name, err)
	}
	return Result{
		Feedback: fmt.Sprintf("Guest %s removed from table %d", guest.Name, c.TableID),
		Display:  DisplayTables,
	}, nil
}
