package addressbook

import (
	"fmt"
	"slices"

	"wedding-planner/internal/models"
)

// UniqueTableList holds tables in insertion order with unique IDs and owns
// every seating change. Tables are never modified in place: a seating change
// builds a new *models.Table and swaps it into the same position, so a
// pointer obtained earlier keeps describing the old state.
type UniqueTableList struct {
	tables []*models.Table
}

func NewUniqueTableList() *UniqueTableList {
	return &UniqueTableList{}
}

// Contains reports whether a table with the same ID exists.
func (l *UniqueTableList) Contains(t *models.Table) bool {
	return slices.ContainsFunc(l.tables, t.IsSameTable)
}

// Add appends t, failing with ErrDuplicateTable if its ID is taken.
func (l *UniqueTableList) Add(t *models.Table) error {
	if l.Contains(t) {
		return fmt.Errorf("%w: table with ID %d", ErrDuplicateTable, t.ID())
	}
	l.tables = append(l.tables, t)
	return nil
}

// Delete removes the table with the given ID.
func (l *UniqueTableList) Delete(tableID int) error {
	i := l.indexOf(tableID)
	if i < 0 {
		return fmt.Errorf("%w: table with ID %d", ErrTableNotFound, tableID)
	}
	l.tables = slices.Delete(l.tables, i, i+1)
	return nil
}

// Find returns the first table with the given ID.
func (l *UniqueTableList) Find(tableID int) (*models.Table, bool) {
	i := l.indexOf(tableID)
	if i < 0 {
		return nil, false
	}
	return l.tables[i], true
}

// AssignGuestToTable seats guest at the table. The table is rejected as full
// when the guest count after seating would reach its capacity, so a table of
// capacity N holds at most N-1 guests.
// TODO: confirm with the planners whether capacity N should seat N guests; the
// >= comparison is kept until then.
func (l *UniqueTableList) AssignGuestToTable(tableID int, guest models.Person) error {
	i := l.indexOf(tableID)
	if i < 0 {
		return fmt.Errorf("%w: table with ID %d", ErrTableNotFound, tableID)
	}
	table := l.tables[i]

	guests := table.GuestList().With(guest)
	if guests.Len() >= table.Capacity() {
		return fmt.Errorf("%w: table %d has capacity %d", ErrTableFull, tableID, table.Capacity())
	}

	l.tables[i] = models.NewTable(table.ID(), table.Capacity(), guests)
	return nil
}

// DeleteGuestFromTable unseats every guest equal to guest. Removing a guest
// who is not seated is not an error; the table is still replaced.
func (l *UniqueTableList) DeleteGuestFromTable(tableID int, guest models.Person) error {
	i := l.indexOf(tableID)
	if i < 0 {
		return fmt.Errorf("%w: table with ID %d", ErrTableNotFound, tableID)
	}
	table := l.tables[i]
	l.tables[i] = models.NewTable(table.ID(), table.Capacity(), table.GuestList().Without(guest))
	return nil
}

// SetTable replaces target (matched by full equality) with edited at the
// same position.
func (l *UniqueTableList) SetTable(target, edited *models.Table) error {
	i := slices.IndexFunc(l.tables, target.Equal)
	if i < 0 {
		return fmt.Errorf("%w: table with ID %d", ErrTableNotFound, target.ID())
	}
	if !target.IsSameTable(edited) && l.Contains(edited) {
		return fmt.Errorf("%w: table with ID %d", ErrDuplicateTable, edited.ID())
	}
	l.tables[i] = edited
	return nil
}

// SetTables replaces the whole list. It fails without changes if tables holds
// duplicate IDs.
func (l *UniqueTableList) SetTables(tables []*models.Table) error {
	for i, t := range tables {
		if slices.ContainsFunc(tables[:i], t.IsSameTable) {
			return fmt.Errorf("%w: table with ID %d", ErrDuplicateTable, t.ID())
		}
	}
	l.tables = slices.Clone(tables)
	return nil
}

// ReplaceGuest re-seats updated wherever a guest equal to old sits.
func (l *UniqueTableList) ReplaceGuest(old, updated models.Person) {
	for i, t := range l.tables {
		if t.Seats(old) {
			l.tables[i] = models.NewTable(t.ID(), t.Capacity(), t.GuestList().Replace(old, updated))
		}
	}
}

// RemoveGuest unseats p from every table seating it.
func (l *UniqueTableList) RemoveGuest(p models.Person) {
	for i, t := range l.tables {
		if t.Seats(p) {
			l.tables[i] = models.NewTable(t.ID(), t.Capacity(), t.GuestList().Without(p))
		}
	}
}

// TableOf returns the table seating p, if any.
func (l *UniqueTableList) TableOf(p models.Person) (*models.Table, bool) {
	for _, t := range l.tables {
		if t.Seats(p) {
			return t, true
		}
	}
	return nil, false
}

// Tables returns a copy of the list. The tables themselves are shared; they
// are immutable.
func (l *UniqueTableList) Tables() []*models.Table {
	return slices.Clone(l.tables)
}

func (l *UniqueTableList) Len() int { return len(l.tables) }

func (l *UniqueTableList) indexOf(tableID int) int {
	return slices.IndexFunc(l.tables, func(t *models.Table) bool { return t.ID() == tableID })
}
