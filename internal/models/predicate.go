package models

import (
	"fmt"
	"strings"
)

// PersonPredicate selects persons for a filtered view.
type PersonPredicate interface {
	Test(Person) bool
}

// TablePredicate selects tables for a filtered view.
type TablePredicate interface {
	Test(*Table) bool
}

type ShowAllPersons struct{}

func (ShowAllPersons) Test(Person) bool { return true }

type ShowAllTables struct{}

func (ShowAllTables) Test(*Table) bool { return true }

// NameContainsKeywords matches when any keyword equals a whole word of the
// name, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Test(person Person) bool {
	words := strings.Fields(person.Name)
	for _, keyword := range p.Keywords {
		for _, word := range words {
			if strings.EqualFold(word, keyword) {
				return true
			}
		}
	}
	return false
}

type RsvpFilter struct {
	Status RsvpStatus
}

func (f RsvpFilter) Test(p Person) bool { return p.Rsvp == f.Status }

func (f RsvpFilter) String() string { return fmt.Sprintf("rsvp=%s", f.Status) }

type DietaryRestrictionFilter struct {
	Restriction DietaryRestriction
}

func (f DietaryRestrictionFilter) Test(p Person) bool { return p.Diet == f.Restriction }

func (f DietaryRestrictionFilter) String() string { return fmt.Sprintf("diet=%s", f.Restriction) }

// AllOf matches persons accepted by every predicate. An empty AllOf matches
// everyone.
type AllOf []PersonPredicate

func (a AllOf) Test(p Person) bool {
	for _, pred := range a {
		if !pred.Test(p) {
			return false
		}
	}
	return true
}

type TableIDIs struct {
	ID int
}

func (f TableIDIs) Test(t *Table) bool { return t.ID() == f.ID }
