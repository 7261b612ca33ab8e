package commands

import (
	"fmt"

	"wedding-planner/internal/planner"
)

const (
	InviteWord  = "invite"
	InviteUsage = InviteWord + ": Sends a WhatsApp invitation for the current wedding to a guest.\n" +
		"Parameters: n/NAME\n" +
		"Example: " + InviteWord + " n/Jane Roe"

	ExportWord  = "export"
	ExportUsage = ExportWord + ": Writes the guest list and seating plan to an Excel file.\n" +
		"Parameters: [f/FILE_PATH]\n" +
		"Example: " + ExportWord + " f/seating.xlsx"
)

// InviteCommand only validates and prepares the invitation; sending happens
// after the command, outside the model.
type InviteCommand struct {
	Name string
}

func (c InviteCommand) Execute(m planner.Model) (Result, error) {
	w, err := requireCurrentWedding(m)
	if err != nil {
		return Result{}, err
	}
	guest, err := findGuest(m, c.Name)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: fmt.Sprintf("Sending invitation for %s to %s (%s)", w.Name, guest.Name, guest.Phone),
		Invite:   &Invitation{Guest: guest, Wedding: w},
	}, nil
}

type ExportCommand struct {
	Path string
}

func (c ExportCommand) Execute(planner.Model) (Result, error) {
	return Result{
		Feedback: "Exporting seating plan",
		Export:   &ExportRequest{Path: c.Path},
	}, nil
}
