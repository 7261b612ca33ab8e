package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/config"
	"wedding-planner/internal/models"
	"wedding-planner/internal/parser"
	"wedding-planner/internal/planner"
	"wedding-planner/internal/storage"
)

type fakeInviter struct {
	sent []models.Person
	err  error
}

func (f *fakeInviter) SendInvitation(_ context.Context, guest models.Person, _ models.Wedding) error {
	f.sent = append(f.sent, guest)
	return f.err
}

type fakeConfirmer struct {
	confirmed []models.Person
}

func (f *fakeConfirmer) Confirm(_ context.Context, guest models.Person, _ models.Wedding) error {
	f.confirmed = append(f.confirmed, guest)
	return nil
}

type fakeExporter struct {
	paths []string
}

func (f *fakeExporter) Export(path string, _ addressbook.ReadOnly) (string, error) {
	if path == "" {
		path = "exports/default.xlsx"
	}
	f.paths = append(f.paths, path)
	return path, nil
}

type failingStorage struct {
	storage.Storage
}

func (failingStorage) Save(context.Context, addressbook.ReadOnly) error { return errors.New("disk full") }

func (failingStorage) Path() string { return "broken" }

type fixture struct {
	logic    *Manager
	model    *planner.Manager
	store    storage.Storage
	exporter *fakeExporter
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()

	prefs := config.DefaultUserPrefs(t.TempDir())
	model, err := planner.NewManager(addressbook.New(), prefs, zerolog.Nop())
	require.NoError(t, err)
	store := storage.NewJSONStorage(prefs.DataFilePath)
	exporter := &fakeExporter{}
	return fixture{
		logic:    New(model, parser.New(zerolog.Nop()), store, exporter, zerolog.Nop(), opts...),
		model:    model,
		store:    store,
		exporter: exporter,
	}
}

func (f fixture) exec(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := f.logic.Execute(context.Background(), line)
		require.NoError(t, err, line)
	}
}

func TestExecute_PersistsAndPublishes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := newFixture(t)
	var versions []uint64
	f.model.Subscribe(func(v planner.View) { versions = append(versions, v.Version) })

	// --- Act ---
	res, err := f.logic.Execute(context.Background(), "add-guest n/Jane Roe p/91234567 e/jane@example.com a/Blk 30 r/YES d/VEGAN")

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, res.Feedback, "New person added: Jane Roe")
	require.Equal(t, []uint64{1}, versions)

	saved, err := f.store.Load(context.Background())
	require.NoError(t, err)
	p, ok := saved.FindPersonByName("Jane Roe")
	require.True(t, ok)
	require.Equal(t, models.DietVegan, p.Diet)
}

func TestExecute_Errors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.logic.Execute(context.Background(), "bogus")
	require.Equal(t, parser.KindUnknownCommand, parser.KindOf(err))

	_, err = f.logic.Execute(context.Background(), "set-wedding Nowhere")
	require.ErrorIs(t, err, addressbook.ErrWeddingNotFound)
}

func TestExecute_SaveFailureKeepsChange(t *testing.T) {
	t.Parallel()

	prefs := config.DefaultUserPrefs(t.TempDir())
	model, err := planner.NewManager(addressbook.New(), prefs, zerolog.Nop())
	require.NoError(t, err)
	l := New(model, parser.New(zerolog.Nop()), failingStorage{}, &fakeExporter{}, zerolog.Nop())

	res, err := l.Execute(context.Background(), "create-wedding n/W1")

	require.ErrorContains(t, err, "failed to save address book")
	require.Contains(t, res.Feedback, "Wedding created")
	require.Len(t, model.Weddings(), 1)
}

func TestExecute_Invite(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t)
		f.exec(t, "add n/Jane p/91234567 e/jane@example.com a/x", "create-wedding n/W1", "set-wedding W1")

		_, err := f.logic.Execute(context.Background(), "invite n/Jane")
		require.ErrorIs(t, err, ErrInvitationsDisabled)
	})

	t.Run("sent", func(t *testing.T) {
		inviter := &fakeInviter{}
		f := newFixture(t, WithInviter(inviter))
		f.exec(t, "add n/Jane p/91234567 e/jane@example.com a/x", "create-wedding n/W1", "set-wedding W1")

		res, err := f.logic.Execute(context.Background(), "invite n/Jane")
		require.NoError(t, err)
		require.Equal(t, "Invitation sent to Jane (91234567)", res.Feedback)
		require.Len(t, inviter.sent, 1)
	})

	t.Run("send fails", func(t *testing.T) {
		f := newFixture(t, WithInviter(&fakeInviter{err: errors.New("not on WhatsApp")}))
		f.exec(t, "add n/Jane p/91234567 e/jane@example.com a/x", "create-wedding n/W1", "set-wedding W1")

		_, err := f.logic.Execute(context.Background(), "invite n/Jane")
		require.ErrorContains(t, err, "failed to send invitation")
	})
}

func TestExecute_Export(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	res, err := f.logic.Execute(context.Background(), "export")
	require.NoError(t, err)
	require.Equal(t, "Seating plan exported to exports/default.xlsx", res.Feedback)

	res, err = f.logic.Execute(context.Background(), "export f/plan.xlsx")
	require.NoError(t, err)
	require.Equal(t, "Seating plan exported to plan.xlsx", res.Feedback)
	require.Equal(t, []string{"exports/default.xlsx", "plan.xlsx"}, f.exporter.paths)
}

func TestApplyRsvpReply(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	confirmer := &fakeConfirmer{}
	f := newFixture(t, WithConfirmer(confirmer), WithCountryCode("65"))
	f.exec(t,
		"add-guest n/Jane p/91234567 e/jane@example.com a/x r/YES d/NONE",
		"create-wedding n/W1", "set-wedding W1",
		"add-table tid/1 c/4",
		"add-guest-to-table n/Jane tid/1",
	)

	// --- Act ---
	p, err := f.logic.ApplyRsvpReply(context.Background(), "6591234567", models.RsvpNo)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Jane", p.Name)
	require.Equal(t, models.RsvpNo, p.Rsvp)
	table, _ := f.model.Table(1)
	require.Equal(t, 0, table.GuestCount(), "a declined guest loses their seat")
	require.Len(t, confirmer.confirmed, 1)

	saved, err := f.store.Load(context.Background())
	require.NoError(t, err)
	stored, _ := saved.FindPersonByName("Jane")
	require.Equal(t, models.RsvpNo, stored.Rsvp)

	_, err = f.logic.ApplyRsvpReply(context.Background(), "4915112345678", models.RsvpYes)
	require.ErrorIs(t, err, addressbook.ErrPersonNotFound)
}

func TestApplyRsvpReply_NoCurrentWeddingSkipsConfirmation(t *testing.T) {
	t.Parallel()

	confirmer := &fakeConfirmer{}
	f := newFixture(t, WithConfirmer(confirmer))
	f.exec(t, "add n/Jane p/0501234567 e/jane@example.com a/x")

	_, err := f.logic.ApplyRsvpReply(context.Background(), "0501234567", models.RsvpYes)
	require.NoError(t, err)
	require.Empty(t, confirmer.confirmed)
}
