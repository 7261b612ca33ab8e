package addressbook

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wedding-planner/internal/models"
)

func guest(name string) models.Person {
	return models.Person{
		Name:    name,
		Phone:   "91234567",
		Email:   "guest@example.com",
		Address: "Blk 30 Geylang Street 29",
		Rsvp:    models.RsvpYes,
		Diet:    models.DietNone,
	}
}

func emptyTable(id, capacity int) *models.Table {
	return models.NewTable(id, capacity, models.NewRsvpList())
}

func TestAssignGuestToTable_CapacitySeatsOneLess(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 2)))

	// --- Act ---
	firstErr := list.AssignGuestToTable(1, guest("Alice"))
	secondErr := list.AssignGuestToTable(1, guest("Bob"))

	// --- Assert ---
	require.NoError(t, firstErr)
	require.ErrorIs(t, secondErr, ErrTableFull)
	require.ErrorIs(t, secondErr, ErrCapacityExceeded)

	table, ok := list.Find(1)
	require.True(t, ok)
	require.Equal(t, 1, table.GuestCount(), "a rejected guest must not be seated")
}

func TestAssignGuestToTable_CapacityOneSeatsNobody(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 1)))

	require.ErrorIs(t, list.AssignGuestToTable(1, guest("Alice")), ErrTableFull)
}

func TestAssignGuestToTable_UnknownTable(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	err := list.AssignGuestToTable(9, guest("Alice"))
	require.ErrorIs(t, err, ErrTableNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAssignGuestToTable_InstallsNewTable(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 5)))
	before, _ := list.Find(1)

	require.NoError(t, list.AssignGuestToTable(1, guest("Alice")))

	after, _ := list.Find(1)
	require.NotSame(t, before, after)
	require.Equal(t, 0, before.GuestCount(), "the old table value must not change")
	require.Equal(t, 1, after.GuestCount())
}

func TestAdd_DuplicateLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 5)))

	err := list.Add(emptyTable(1, 10))

	require.ErrorIs(t, err, ErrDuplicateTable)
	require.ErrorIs(t, err, ErrDuplicate)
	require.Equal(t, 1, list.Len())
	table, _ := list.Find(1)
	require.Equal(t, 5, table.Capacity())
}

func TestFindAfterAdd(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	table := emptyTable(7, 4)
	require.NoError(t, list.Add(table))

	found, ok := list.Find(7)
	require.True(t, ok)
	require.Same(t, table, found)

	_, ok = list.Find(8)
	require.False(t, ok)
}

func TestDeleteGuestFromTable_AbsentGuestStillReplacesTable(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 5)))
	before, _ := list.Find(1)

	require.NoError(t, list.DeleteGuestFromTable(1, guest("Nobody")))

	after, _ := list.Find(1)
	require.NotSame(t, before, after)
	require.True(t, before.Equal(after))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 5)))
	require.NoError(t, list.Add(emptyTable(2, 5)))

	require.NoError(t, list.Delete(1))
	require.ErrorIs(t, list.Delete(1), ErrTableNotFound)
	require.Equal(t, 1, list.Len())
}

func TestSetTable(t *testing.T) {
	t.Parallel()

	t1, t2 := emptyTable(1, 5), emptyTable(2, 5)

	t.Run("replaces in place", func(t *testing.T) {
		list := NewUniqueTableList()
		require.NoError(t, list.SetTables([]*models.Table{t1, t2}))

		edited := emptyTable(3, 8)
		require.NoError(t, list.SetTable(t1, edited))
		require.Equal(t, 3, list.Tables()[0].ID())
	})

	t.Run("missing target", func(t *testing.T) {
		list := NewUniqueTableList()
		require.ErrorIs(t, list.SetTable(t1, t2), ErrTableNotFound)
	})

	t.Run("edited collides with another table", func(t *testing.T) {
		list := NewUniqueTableList()
		require.NoError(t, list.SetTables([]*models.Table{t1, t2}))
		require.ErrorIs(t, list.SetTable(t1, emptyTable(2, 9)), ErrDuplicateTable)
	})
}

func TestSetTables_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(4, 5)))

	err := list.SetTables([]*models.Table{emptyTable(1, 5), emptyTable(1, 6)})

	require.ErrorIs(t, err, ErrDuplicateTable)
	require.Equal(t, 4, list.Tables()[0].ID(), "list must be unchanged on error")
}

func TestTablesReturnsCopy(t *testing.T) {
	t.Parallel()

	list := NewUniqueTableList()
	require.NoError(t, list.Add(emptyTable(1, 5)))

	tables := list.Tables()
	tables[0] = emptyTable(99, 1)

	found, ok := list.Find(1)
	require.True(t, ok)
	require.Equal(t, 5, found.Capacity())
}
