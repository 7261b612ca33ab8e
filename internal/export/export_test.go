package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/models"
)

func seatingBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()

	ab := addressbook.New()
	alice := models.Person{Name: "Alice", Phone: "94351253", Email: "alice@example.com", Address: "x", Rsvp: models.RsvpYes, Diet: models.DietVegan}
	bob := models.Person{Name: "Bob", Phone: "98765432", Email: "bob@example.com", Address: "y", Rsvp: models.RsvpPending, Diet: models.DietNone}
	require.NoError(t, ab.AddPerson(alice))
	require.NoError(t, ab.AddPerson(bob))
	require.NoError(t, ab.AddTable(models.NewTable(3, 8, models.NewRsvpList())))
	require.NoError(t, ab.AddPersonToTable(alice, 3))
	return ab
}

func TestExport_WritesBothSheets(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	w := NewWriter(dir)

	// --- Act ---
	path, err := w.Export(filepath.Join(dir, "plan"), seatingBook(t))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "plan.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{GuestsSheet, TablesSheet}, f.GetSheetList())

	guests, err := f.GetRows(GuestsSheet)
	require.NoError(t, err)
	require.Len(t, guests, 3)
	require.Equal(t, guestHeaders, guests[0])
	require.Equal(t, []string{"Alice", "94351253", "alice@example.com", "YES", "VEGAN", "3"}, guests[1])
	require.Equal(t, []string{"Bob", "98765432", "bob@example.com", "PENDING", "NONE"}, guests[2][:5])

	tables, err := f.GetRows(TablesSheet)
	require.NoError(t, err)
	require.Equal(t, [][]string{tableHeaders, {"3", "8", "1", "Alice"}}, tables)
}

func TestExport_DefaultPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := NewWriter(filepath.Join(dir, "exports")).Export("", addressbook.New())

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "exports"), filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "seating-"))
	require.True(t, strings.HasSuffix(path, ".xlsx"))
}
