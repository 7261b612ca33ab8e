package commands

import (
	"fmt"
	"strings"

	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

const (
	FilterWord  = "filter"
	FilterUsage = FilterWord + ": Shows persons matching an RSVP status and/or dietary restriction. " +
		"When both are given, only persons matching both are shown.\n" +
		"Parameters: [r/RSVP] [d/DIET] (at least one)\n" +
		"Example: " + FilterWord + " r/YES d/VEGAN"

	SeeRsvpListWord  = "see-rsvp-list"
	SeeRsvpListUsage = SeeRsvpListWord + ": Shows guests with their RSVP status and a count per status.\n" +
		"Parameters: [r/RSVP]\n" +
		"Example: " + SeeRsvpListWord + " r/PENDING"
)

// FilterPersonsCommand narrows the person view. A nil filter is not applied.
type FilterPersonsCommand struct {
	Diet *models.DietaryRestrictionFilter
	Rsvp *models.RsvpFilter
}

// Predicate combines the set filters into their intersection.
func (c FilterPersonsCommand) Predicate() models.PersonPredicate {
	var all models.AllOf
	if c.Diet != nil {
		all = append(all, *c.Diet)
	}
	if c.Rsvp != nil {
		all = append(all, *c.Rsvp)
	}
	return all
}

func (c FilterPersonsCommand) Execute(m planner.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Predicate())
	return Result{
		Feedback: fmt.Sprintf("%d persons listed!", len(m.FilteredPersons())),
		Display:  DisplayPersons,
	}, nil
}

// SeeRsvpListCommand shows the guest list grouped by RSVP status.
type SeeRsvpListCommand struct {
	Status *models.RsvpStatus
}

func (c SeeRsvpListCommand) Execute(m planner.Model) (Result, error) {
	if c.Status != nil {
		m.UpdateFilteredPersonList(models.RsvpFilter{Status: *c.Status})
	} else {
		m.UpdateFilteredPersonList(models.ShowAllPersons{})
	}

	counts := make(map[models.RsvpStatus]int)
	for _, p := range m.AddressBook().Persons() {
		counts[p.Rsvp]++
	}

	var b strings.Builder
	b.WriteString("RSVP list")
	for _, status := range models.RsvpStatuses {
		fmt.Fprintf(&b, " | %s: %d", status, counts[status])
	}
	return Result{Feedback: b.String(), Display: DisplayPersons}, nil
}
