package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/config"
	"wedding-planner/internal/models"
)

func sampleBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()

	ab := addressbook.New()
	alice := models.Person{
		Name: "Alice Pauline", Phone: "94351253", Email: "alice@example.com",
		Address: "123, Jurong West Ave 6", Rsvp: models.RsvpYes, Diet: models.DietVegan,
		Tags: []string{"family", "friends"},
	}
	bob := models.Person{
		Name: "Bob Choo", Phone: "98765432", Email: "bob@example.com",
		Address: "Blk 30 Lorong 3", Rsvp: models.RsvpPending, Diet: models.DietNone,
	}
	require.NoError(t, ab.AddPerson(alice))
	require.NoError(t, ab.AddPerson(bob))
	require.NoError(t, ab.AddWedding(models.Wedding{Name: "Spring Wedding", Date: "2026-04-01", Venue: "Garden"}))
	require.NoError(t, ab.AddWedding(models.Wedding{Name: "Autumn Wedding"}))
	require.NoError(t, ab.SetCurrentWedding("Spring Wedding"))
	require.NoError(t, ab.AddTable(models.NewTable(1, 6, models.NewRsvpList())))
	require.NoError(t, ab.AddTable(models.NewTable(2, 4, models.NewRsvpList())))
	require.NoError(t, ab.AddPersonToTable(alice, 2))
	return ab
}

// backends opens each storage backend in a fresh temp directory.
var backends = map[string]func(t *testing.T) Storage{
	config.BackendJSON: func(t *testing.T) Storage {
		return NewJSONStorage(filepath.Join(t.TempDir(), "addressbook.json"))
	},
	config.BackendSQLite: func(t *testing.T) Storage {
		s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "addressbook.db"))
		require.NoError(t, err)
		return s
	},
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			// --- Arrange ---
			ctx := context.Background()
			store := open(t)
			defer store.Close()
			want := sampleBook(t)

			// --- Act ---
			require.NoError(t, store.Save(ctx, want))
			got, err := store.Load(ctx)

			// --- Assert ---
			require.NoError(t, err)
			require.True(t, want.Equal(got), "want %s, got %s", want, got)

			table, ok := got.Table(2)
			require.True(t, ok)
			require.Equal(t, "Alice Pauline", table.Guests()[0].Name)
			current, ok := got.CurrentWedding()
			require.True(t, ok)
			require.Equal(t, "Garden", current.Venue)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := open(t)
			defer store.Close()

			require.NoError(t, store.Save(ctx, sampleBook(t)))
			require.NoError(t, store.Save(ctx, addressbook.New()))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			require.True(t, addressbook.New().Equal(got))
		})
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			got, err := store.Load(context.Background())
			require.NoError(t, err)
			require.Empty(t, got.Persons())
			_, ok := got.CurrentWedding()
			require.False(t, ok)
		})
	}
}

func TestJSONLoad_IllegalValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"invalid phone":         `{"persons":[{"name":"Alice","phone":"abc","email":"a@example.com","address":"x","rsvp":"YES","diet":"NONE"}]}`,
		"unknown seated guest":  `{"persons":[],"tables":[{"id":1,"capacity":4,"guests":["Ghost"]}]}`,
		"zero capacity":         `{"tables":[{"id":1,"capacity":0,"guests":[]}]}`,
		"duplicate table":       `{"tables":[{"id":1,"capacity":4,"guests":[]},{"id":1,"capacity":2,"guests":[]}]}`,
		"unlisted current":      `{"weddings":[{"name":"W1"}],"current_wedding":"W2"}`,
		"duplicate person name": `{"persons":[{"name":"Al","phone":"123","email":"a@example.com","address":"x","rsvp":"NO","diet":"NONE"},{"name":"Al","phone":"456","email":"b@example.com","address":"y","rsvp":"NO","diet":"NONE"}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "addressbook.json")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			_, err := NewJSONStorage(path).Load(context.Background())
			require.ErrorIs(t, err, ErrIllegalValue)
		})
	}
}

func TestJSONLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "addressbook.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewJSONStorage(path).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrIllegalValue)
}

func TestNew_SelectsBackend(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	prefs := config.DefaultUserPrefs(dir)

	s, err := New(prefs)
	require.NoError(t, err)
	require.IsType(t, &JSONStorage{}, s)

	prefs.StorageBackend = config.BackendSQLite
	prefs.DataFilePath = filepath.Join(dir, "addressbook.db")
	s, err = New(prefs)
	require.NoError(t, err)
	defer s.Close()
	require.IsType(t, &SQLiteStorage{}, s)

	prefs.StorageBackend = "csv"
	_, err = New(prefs)
	require.Error(t, err)
}

func TestJSONLoad_CanonicalisesRsvpAndDiet(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "addressbook.json")
	data := `{"persons":[{"name":"Alice","phone":"91234567","email":"a@example.com","address":"x","rsvp":"yes","diet":"gluten-free"}],` +
		`"tables":[{"id":1,"capacity":4,"guests":["Alice"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	// --- Act ---
	got, err := NewJSONStorage(path).Load(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	alice, ok := got.FindPersonByName("Alice")
	require.True(t, ok)
	require.Equal(t, models.RsvpYes, alice.Rsvp)
	require.Equal(t, models.DietGlutenFree, alice.Diet)
	table, _ := got.Table(1)
	require.Equal(t, models.RsvpYes, table.Guests()[0].Rsvp)
	require.True(t, models.RsvpFilter{Status: models.RsvpYes}.Test(alice))
}

func TestJSONSave_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewJSONStorage(filepath.Join(dir, "addressbook.json"))

	require.NoError(t, store.Save(context.Background(), sampleBook(t)))
	require.NoError(t, store.Save(context.Background(), sampleBook(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "addressbook.json", entries[0].Name())

	info, err := os.Stat(filepath.Join(dir, "addressbook.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
