package planner

import (
	"wedding-planner/internal/models"
)

// View is an immutable snapshot of what the user currently sees. Version
// increases by one on every Commit that follows a change.
type View struct {
	Version  uint64           `json:"version"`
	Persons  []models.Person  `json:"persons"`
	Tables   []*models.Table  `json:"tables"`
	Wedding  *models.Wedding  `json:"wedding"`
	Weddings []models.Wedding `json:"weddings"`
}

// View builds a snapshot from the latest state and predicates.
func (m *Manager) View() View {
	v := View{
		Version:  m.version,
		Persons:  m.FilteredPersons(),
		Tables:   m.FilteredTables(),
		Weddings: m.ab.Weddings(),
	}
	if w, ok := m.ab.CurrentWedding(); ok {
		v.Wedding = &w
	}
	return v
}

// Subscribe registers fn to receive a View after each committed change.
func (m *Manager) Subscribe(fn func(View)) (unsubscribe func()) {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// Commit publishes a new View version if anything changed since the last
// commit. It is called once per executed command.
func (m *Manager) Commit() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.version++
	v := m.View()
	m.log.Debug().Uint64("version", v.Version).Int("persons", len(v.Persons)).Int("tables", len(v.Tables)).Msg("View committed")
	for _, fn := range m.listeners {
		fn(v)
	}
}
