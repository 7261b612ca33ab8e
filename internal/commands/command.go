// Package commands holds one type per user intent. A command is built by the
// parser with already-validated fields and executed against a planner.Model.
package commands

import (
	"errors"
	"fmt"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

// Command is an executable user intent.
type Command interface {
	Execute(m planner.Model) (Result, error)
}

// Display tells the presentation layer which list changed.
type Display int

const (
	DisplayNone Display = iota
	DisplayPersons
	DisplayTables
	DisplayAll
)

// Invitation asks the caller to send an invitation once the command is done.
type Invitation struct {
	Guest   models.Person
	Wedding models.Wedding
}

// ExportRequest asks the caller to write the seating plan. An empty Path
// means the default location.
type ExportRequest struct {
	Path string
}

// Result is what a command reports back to the user, plus any side effect
// the caller must carry out.
type Result struct {
	Feedback string
	Display  Display
	ShowHelp bool
	Exit     bool
	Invite   *Invitation
	Export   *ExportRequest
}

var (
	ErrInvalidPersonIndex = errors.New("the person index provided is invalid")
	ErrGuestNotAttending  = errors.New("guest has not accepted the invitation")
	ErrGuestAlreadySeated = fmt.Errorf("guest is already seated: %w", addressbook.ErrDuplicate)
)

// requireCurrentWedding fails with ErrNoCurrentWedding when none is set.
func requireCurrentWedding(m planner.Model) (models.Wedding, error) {
	w, ok := m.CurrentWedding()
	if !ok {
		return models.Wedding{}, fmt.Errorf("%w, use %s first", addressbook.ErrNoCurrentWedding, SetWeddingWord)
	}
	return w, nil
}

func findGuest(m planner.Model, name string) (models.Person, error) {
	p, ok := m.FindPersonByName(name)
	if !ok {
		return models.Person{}, fmt.Errorf("%w: %s", addressbook.ErrPersonNotFound, name)
	}
	return p, nil
}
