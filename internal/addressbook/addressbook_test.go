package addressbook

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wedding-planner/internal/models"
)

func TestUniquePersonList(t *testing.T) {
	t.Parallel()

	l := NewUniquePersonList()
	alice := guest("Alice")
	require.NoError(t, l.Add(alice))

	dup := alice
	dup.Phone = "88888888"
	require.ErrorIs(t, l.Add(dup), ErrDuplicatePerson)
	require.Equal(t, 1, l.Len())

	found, ok := l.FindByName("Alice")
	require.True(t, ok)
	require.True(t, found.Equal(alice))

	require.ErrorIs(t, l.Remove(dup), ErrPersonNotFound, "remove matches by full equality")
	require.NoError(t, l.Remove(alice))
	require.Equal(t, 0, l.Len())
}

func TestUniquePersonList_SetPersonRename(t *testing.T) {
	t.Parallel()

	l := NewUniquePersonList()
	alice, bob := guest("Alice"), guest("Bob")
	require.NoError(t, l.SetPersons([]models.Person{alice, bob}))

	require.ErrorIs(t, l.SetPerson(alice, guest("Bob")), ErrDuplicatePerson)

	renamed := guest("Alicia")
	require.NoError(t, l.SetPerson(alice, renamed))
	require.Equal(t, "Alicia", l.Persons()[0].Name)
}

func seatedBook(t *testing.T) (*AddressBook, models.Person) {
	t.Helper()

	ab := New()
	alice := guest("Alice")
	require.NoError(t, ab.AddPerson(alice))
	require.NoError(t, ab.AddTable(emptyTable(1, 5)))
	require.NoError(t, ab.AddPersonToTable(alice, 1))
	return ab, alice
}

func TestRemovePerson_Unseats(t *testing.T) {
	t.Parallel()

	ab, alice := seatedBook(t)

	require.NoError(t, ab.RemovePerson(alice))

	table, _ := ab.Table(1)
	require.Equal(t, 0, table.GuestCount())
	_, seated := ab.TableOf(alice)
	require.False(t, seated)
}

func TestSetPerson_ReseatsEditedGuest(t *testing.T) {
	t.Parallel()

	ab, alice := seatedBook(t)
	edited := alice
	edited.Diet = models.DietKosher

	require.NoError(t, ab.SetPerson(alice, edited))

	table, ok := ab.TableOf(edited)
	require.True(t, ok)
	require.Equal(t, 1, table.ID())
	require.Equal(t, models.DietKosher, table.Guests()[0].Diet)
}

func TestSetPerson_DeclineUnseats(t *testing.T) {
	t.Parallel()

	ab, alice := seatedBook(t)
	edited := alice
	edited.Rsvp = models.RsvpNo

	require.NoError(t, ab.SetPerson(alice, edited))

	table, _ := ab.Table(1)
	require.Equal(t, 0, table.GuestCount())
	p, ok := ab.FindPersonByName("Alice")
	require.True(t, ok)
	require.Equal(t, models.RsvpNo, p.Rsvp)
}

func TestWeddings(t *testing.T) {
	t.Parallel()

	ab := New()
	spring := models.Wedding{Name: "Spring Wedding", Date: "2026-04-01", Venue: "Garden"}
	autumn := models.Wedding{Name: "Autumn Wedding"}
	require.NoError(t, ab.AddWedding(spring))
	require.NoError(t, ab.AddWedding(autumn))
	require.ErrorIs(t, ab.AddWedding(spring), ErrDuplicateWedding)

	_, ok := ab.CurrentWedding()
	require.False(t, ok, "adding a wedding does not make it current")

	require.ErrorIs(t, ab.SetCurrentWedding("Winter Wedding"), ErrWeddingNotFound)
	require.NoError(t, ab.SetCurrentWedding(spring.Name))
	current, ok := ab.CurrentWedding()
	require.True(t, ok)
	require.Equal(t, spring, current)
}

func TestDeleteWedding_CurrentClearsSeating(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ab, alice := seatedBook(t)
	require.NoError(t, ab.AddWedding(models.Wedding{Name: "Spring Wedding"}))
	require.NoError(t, ab.AddWedding(models.Wedding{Name: "Autumn Wedding"}))
	require.NoError(t, ab.SetCurrentWedding("Spring Wedding"))

	// --- Act ---
	require.NoError(t, ab.DeleteWedding("Autumn Wedding"))
	tablesAfterOther := len(ab.Tables())
	deleted, err := ab.DeleteCurrentWedding()

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 1, tablesAfterOther, "deleting another wedding keeps the seating plan")
	require.Equal(t, "Spring Wedding", deleted.Name)
	require.Empty(t, ab.Tables())
	require.Empty(t, ab.Weddings())
	require.True(t, ab.HasPerson(alice), "guests survive wedding deletion")

	_, err = ab.DeleteCurrentWedding()
	require.ErrorIs(t, err, ErrNoCurrentWedding)
}

func TestResetData_IsAtomic(t *testing.T) {
	t.Parallel()

	ab, _ := seatedBook(t)
	before := ab.String()

	bad := New()
	bad.persons.persons = []models.Person{guest("Zed"), guest("Zed")}

	require.ErrorIs(t, ab.ResetData(bad), ErrDuplicatePerson)
	require.Equal(t, before, ab.String())
}

func TestNewFrom_CopiesEverything(t *testing.T) {
	t.Parallel()

	ab, _ := seatedBook(t)
	require.NoError(t, ab.AddWedding(models.Wedding{Name: "Spring Wedding"}))
	require.NoError(t, ab.SetCurrentWedding("Spring Wedding"))

	cp, err := NewFrom(ab)
	require.NoError(t, err)
	require.True(t, ab.Equal(cp))

	require.NoError(t, cp.AddPerson(guest("Bob")))
	require.False(t, ab.Equal(cp), "the copy must be independent")
}
