package commands

import (
	"fmt"

	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

const (
	AddWord  = "add"
	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [r/RSVP] [d/DIET] [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 t/friends"

	AddGuestWord  = "add-guest"
	AddGuestUsage = AddGuestWord + ": Adds a wedding guest with their RSVP and dietary restriction. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS r/RSVP d/DIET [t/TAG]...\n" +
		"Example: " + AddGuestWord + " n/Jane Roe p/91234567 e/jane@example.com a/Blk 30 r/YES d/VEGAN"

	EditWord  = "edit"
	EditUsage = EditWord + ": Edits the person identified by the index number used in the displayed person list. " +
		"Parameters: INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [r/RSVP] [d/DIET] [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 r/YES"

	DeleteWord  = "delete"
	DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	DeleteGuestWord  = "delete-guest"
	DeleteGuestUsage = DeleteGuestWord + ": Deletes a guest by name and frees their seat.\n" +
		"Parameters: n/NAME\n" +
		"Example: " + DeleteGuestWord + " n/Jane Roe"

	FindWord  = "find"
	FindUsage = FindWord + ": Finds all persons whose names contain any of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob"
)

// AddCommand adds a person. add and add-guest share it; they differ only in
// which fields the parser requires.
type AddCommand struct {
	Person models.Person
}

func (c AddCommand) Execute(m planner.Model) (Result, error) {
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, fmt.Errorf("this person already exists in the address book: %w", err)
	}
	return Result{
		Feedback: fmt.Sprintf("New person added: %s", c.Person),
		Display:  DisplayPersons,
	}, nil
}

// EditPersonDescriptor carries the fields to change; nil leaves a field as is.
type EditPersonDescriptor struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Rsvp    *models.RsvpStatus
	Diet    *models.DietaryRestriction
	Tags    *[]string
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil ||
		d.Rsvp != nil || d.Diet != nil || d.Tags != nil
}

// Apply returns p with the descriptor's fields applied.
func (d EditPersonDescriptor) Apply(p models.Person) models.Person {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Phone != nil {
		p.Phone = *d.Phone
	}
	if d.Email != nil {
		p.Email = *d.Email
	}
	if d.Address != nil {
		p.Address = *d.Address
	}
	if d.Rsvp != nil {
		p.Rsvp = *d.Rsvp
	}
	if d.Diet != nil {
		p.Diet = *d.Diet
	}
	if d.Tags != nil {
		p.Tags = models.NormalizeTags(*d.Tags)
	}
	return p
}

type EditCommand struct {
	Index int
	Edit  EditPersonDescriptor
}

func (c EditCommand) Execute(m planner.Model) (Result, error) {
	shown := m.FilteredPersons()
	if c.Index < 1 || c.Index > len(shown) {
		return Result{}, ErrInvalidPersonIndex
	}
	target := shown[c.Index-1]
	edited := c.Edit.Apply(target)

	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, fmt.Errorf("could not edit %s: %w", target.Name, err)
	}
	m.UpdateFilteredPersonList(models.ShowAllPersons{})
	return Result{
		Feedback: fmt.Sprintf("Edited Person: %s", edited),
		Display:  DisplayAll,
	}, nil
}

type DeleteCommand struct {
	Index int
}

func (c DeleteCommand) Execute(m planner.Model) (Result, error) {
	shown := m.FilteredPersons()
	if c.Index < 1 || c.Index > len(shown) {
		return Result{}, ErrInvalidPersonIndex
	}
	target := shown[c.Index-1]
	if err := m.DeletePerson(target); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted Person: %s", target),
		Display:  DisplayAll,
	}, nil
}

type DeleteGuestCommand struct {
	Name string
}

func (c DeleteGuestCommand) Execute(m planner.Model) (Result, error) {
	guest, err := findGuest(m, c.Name)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(guest); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Deleted guest: %s", guest.Name),
		Display:  DisplayAll,
	}, nil
}

type FindCommand struct {
	Predicate models.NameContainsKeywords
}

func (c FindCommand) Execute(m planner.Model) (Result, error) {
	m.UpdateFilteredPersonList(c.Predicate)
	return Result{
		Feedback: fmt.Sprintf("%d persons listed!", len(m.FilteredPersons())),
		Display:  DisplayPersons,
	}, nil
}
