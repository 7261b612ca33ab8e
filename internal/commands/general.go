package commands

import (
	"strings"

	"wedding-planner/internal/addressbook"
	"wedding-planner/internal/models"
	"wedding-planner/internal/planner"
)

const (
	ListWord  = "list"
	ListUsage = ListWord + ": Lists all persons and tables."

	ClearWord  = "clear"
	ClearUsage = ClearWord + ": Clears all persons, tables and weddings."

	HelpWord  = "help"
	HelpUsage = HelpWord + ": Shows program usage instructions.\nExample: " + HelpWord

	ExitWord  = "exit"
	ExitUsage = ExitWord + ": Exits the program."
)

type ListCommand struct{}

func (ListCommand) Execute(m planner.Model) (Result, error) {
	m.UpdateFilteredPersonList(models.ShowAllPersons{})
	m.UpdateFilteredTableList(models.ShowAllTables{})
	return Result{Feedback: "Listed all persons", Display: DisplayAll}, nil
}

type ClearCommand struct{}

func (ClearCommand) Execute(m planner.Model) (Result, error) {
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Address book has been cleared!", Display: DisplayAll}, nil
}

type HelpCommand struct{}

func (HelpCommand) Execute(planner.Model) (Result, error) {
	return Result{Feedback: HelpMessage(), ShowHelp: true}, nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(planner.Model) (Result, error) {
	return Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}

// Usages lists the usage text of every command, in help order.
var Usages = []string{
	AddUsage, AddGuestUsage, EditUsage, DeleteUsage, DeleteGuestUsage, FindUsage,
	FilterUsage, SeeRsvpListUsage, ListUsage, ClearUsage,
	WeddingOverviewUsage, CreateWeddingUsage, SetWeddingUsage, DeleteWeddingUsage,
	AddTableUsage, DeleteTableUsage, FindTableUsage, GetAllTablesUsage,
	AddGuestToTableUsage, DeleteGuestFromTableUsage,
	InviteUsage, ExportUsage, HelpUsage, ExitUsage,
}

func HelpMessage() string {
	return strings.Join(Usages, "\n\n")
}
