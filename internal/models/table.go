package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// RsvpList is an ordered sequence of guests. It never mutates in place: With
// and Without return new lists. Duplicates are left to callers.
type RsvpList struct {
	guests []Person
}

func NewRsvpList(guests ...Person) RsvpList {
	return RsvpList{guests: slices.Clone(guests)}
}

func (l RsvpList) Len() int { return len(l.guests) }

// Guests returns a copy of the guests in order.
func (l RsvpList) Guests() []Person { return slices.Clone(l.guests) }

// With returns a new list with guest appended.
func (l RsvpList) With(guest Person) RsvpList {
	out := make([]Person, 0, len(l.guests)+1)
	out = append(out, l.guests...)
	return RsvpList{guests: append(out, guest)}
}

// Without returns a new list excluding every guest equal to guest.
func (l RsvpList) Without(guest Person) RsvpList {
	out := make([]Person, 0, len(l.guests))
	for _, g := range l.guests {
		if !g.Equal(guest) {
			out = append(out, g)
		}
	}
	return RsvpList{guests: out}
}

// Replace returns a new list where every guest equal to old becomes updated.
func (l RsvpList) Replace(old, updated Person) RsvpList {
	out := make([]Person, len(l.guests))
	for i, g := range l.guests {
		if g.Equal(old) {
			g = updated
		}
		out[i] = g
	}
	return RsvpList{guests: out}
}

// Contains reports whether a guest equal to p is in the list.
func (l RsvpList) Contains(p Person) bool {
	return slices.ContainsFunc(l.guests, p.Equal)
}

func (l RsvpList) Equal(other RsvpList) bool {
	return slices.EqualFunc(l.guests, other.guests, Person.Equal)
}

// Table is an immutable seating table. Seating changes build a new Table.
type Table struct {
	id       int
	capacity int
	guests   RsvpList
}

const MessageCapacityConstraints = "Capacity should be a positive integer"
const MessageTableIDConstraints = "Table ID should be a positive integer"

func NewTable(id, capacity int, guests RsvpList) *Table {
	return &Table{id: id, capacity: capacity, guests: guests}
}

func (t *Table) ID() int { return t.id }

func (t *Table) Capacity() int { return t.capacity }

func (t *Table) GuestList() RsvpList { return t.guests }

func (t *Table) Guests() []Person { return t.guests.Guests() }

func (t *Table) GuestCount() int { return t.guests.Len() }

// Seats reports whether a guest equal to p is seated here.
func (t *Table) Seats(p Person) bool { return t.guests.Contains(p) }

// IsSameTable compares identity only: the table ID.
func (t *Table) IsSameTable(other *Table) bool {
	if other == nil {
		return false
	}
	return t.id == other.id
}

// Equal compares ID, capacity and the seated guests.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	return t.id == other.id && t.capacity == other.capacity && t.guests.Equal(other.guests)
}

func (t *Table) String() string {
	names := make([]string, 0, t.guests.Len())
	for _, g := range t.guests.guests {
		names = append(names, g.Name)
	}
	return fmt.Sprintf("Table %d (%d/%d): %s", t.id, t.guests.Len(), t.capacity, strings.Join(names, ", "))
}

type tableJSON struct {
	ID       int      `json:"id"`
	Capacity int      `json:"capacity"`
	Guests   []string `json:"guests"`
}

// MarshalJSON renders seated guests by name.
func (t *Table) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, t.guests.Len())
	for _, g := range t.guests.guests {
		names = append(names, g.Name)
	}
	return json.Marshal(tableJSON{ID: t.id, Capacity: t.capacity, Guests: names})
}
