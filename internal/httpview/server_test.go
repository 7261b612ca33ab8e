package httpview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_ServesPublishedView(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	alice := models.Person{Name: "Alice", Phone: "94351253", Email: "alice@example.com", Address: "x", Rsvp: models.RsvpYes, Diet: models.DietVegan}
	s := New(planner.View{}, zerolog.Nop())

	// --- Act ---
	s.Publish(planner.View{
		Version: 4,
		Persons: []models.Person{alice},
		Tables:  []*models.Table{models.NewTable(1, 8, models.NewRsvpList(alice))},
		Wedding: &models.Wedding{Name: "W1", Venue: "Garden"},
	})

	// --- Assert ---
	rec := get(t, s, "/persons")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var persons []models.Person
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &persons))
	if diff := cmp.Diff([]models.Person{alice}, persons); diff != "" {
		t.Errorf("persons mismatch (-want +got):\n%s", diff)
	}

	rec = get(t, s, "/tables")
	require.JSONEq(t, `[{"id":1,"capacity":8,"guests":["Alice"]}]`, rec.Body.String())

	rec = get(t, s, "/wedding")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"name":"W1","venue":"Garden"}`, rec.Body.String())

	rec = get(t, s, "/health")
	require.JSONEq(t, `{"status":"ok","version":4}`, rec.Body.String())

	rec = get(t, s, "/view")
	var v struct {
		Version uint64 `json:"version"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	require.Equal(t, uint64(4), v.Version)
}

func TestServer_NoCurrentWedding(t *testing.T) {
	t.Parallel()

	s := New(planner.View{}, zerolog.Nop())

	rec := get(t, s, "/wedding")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, s, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
