package commands

import (
	"fmt"
	"strings"

	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

const (
	WeddingOverviewWord  = "wedding-overview"
	WeddingOverviewUsage = WeddingOverviewWord + ": Shows a summary of the current wedding. Takes no arguments."

	CreateWeddingWord  = "create-wedding"
	CreateWeddingUsage = CreateWeddingWord + ": Creates a wedding. It does not become the current wedding.\n" +
		"Parameters: n/NAME [dt/DATE] [v/VENUE]\n" +
		"Example: " + CreateWeddingWord + " n/Anne and Dave dt/2026-06-12 v/Rosewood Hall"

	SetWeddingWord  = "set-wedding"
	SetWeddingUsage = SetWeddingWord + ": Makes a wedding the current wedding.\n" +
		"Parameters: NAME\n" +
		"Example: " + SetWeddingWord + " Anne and Dave"

	DeleteWeddingWord  = "delete-wedding"
	DeleteWeddingUsage = DeleteWeddingWord + ": Deletes the named wedding, or the current one when no name is given. " +
		"Deleting the current wedding also removes all of its tables.\n" +
		"Parameters: [NAME]\n" +
		"Example: " + DeleteWeddingWord + " Anne and Dave"
)

type CreateWeddingCommand struct {
	Wedding models.Wedding
}

func (c CreateWeddingCommand) Execute(m planner.Model) (Result, error) {
	if err := m.AddWedding(c.Wedding); err != nil {
		return Result{}, fmt.Errorf("could not create wedding: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Wedding created: %s", c.Wedding)}, nil
}

type SetWeddingCommand struct {
	Name string
}

func (c SetWeddingCommand) Execute(m planner.Model) (Result, error) {
	if err := m.SetCurrentWedding(c.Name); err != nil {
		return Result{}, fmt.Errorf("could not set wedding: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Current wedding set to: %s", c.Name), Display: DisplayAll}, nil
}

// DeleteWeddingCommand deletes the named wedding, or the current one when
// Name is empty.
type DeleteWeddingCommand struct {
	Name string
}

func (c DeleteWeddingCommand) Execute(m planner.Model) (Result, error) {
	name := c.Name
	if name == "" {
		w, err := m.DeleteCurrentWedding()
		if err != nil {
			return Result{}, fmt.Errorf("could not delete wedding: %w", err)
		}
		name = w.Name
	} else if err := m.DeleteWedding(name); err != nil {
		return Result{}, fmt.Errorf("could not delete wedding: %w", err)
	}
	return Result{Feedback: fmt.Sprintf("Wedding deleted: %s", name), Display: DisplayAll}, nil
}

type WeddingOverviewCommand struct{}

func (WeddingOverviewCommand) Execute(m planner.Model) (Result, error) {
	w, err := requireCurrentWedding(m)
	if err != nil {
		return Result{}, err
	}

	tables := m.AddressBook().Tables()
	seated, capacity := 0, 0
	for _, t := range tables {
		seated += t.GuestCount()
		capacity += t.Capacity()
	}

	counts := make(map[models.RsvpStatus]int)
	unseated := 0
	for _, p := range m.AddressBook().Persons() {
		counts[p.Rsvp]++
		if p.Rsvp == models.RsvpYes {
			if _, ok := m.TableOf(p); !ok {
				unseated++
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wedding: %s\n", w)
	fmt.Fprintf(&b, "Tables: %d, seated guests: %d, total capacity: %d\n", len(tables), seated, capacity)
	fmt.Fprintf(&b, "RSVP: YES %d, NO %d, PENDING %d\n", counts[models.RsvpYes], counts[models.RsvpNo], counts[models.RsvpPending])
	fmt.Fprintf(&b, "Attending guests without a seat: %d", unseated)
	return Result{Feedback: b.String()}, nil
}
