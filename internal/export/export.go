// Package export writes the guest list and seating plan to an Excel workbook.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"wedding-planner/internal/addressbook"
)

const (
	GuestsSheet = "Guests"
	TablesSheet = "Tables"
)

var (
	guestHeaders = []string{"Name", "Phone", "Email", "RSVP", "Diet", "Table"}
	tableHeaders = []string{"Table", "Capacity", "Seated", "Guests"}
)

// Writer writes workbooks into Dir when no explicit path is given.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// DefaultPath names a fresh file in the export directory.
func (w *Writer) DefaultPath() string {
	return filepath.Join(w.Dir, fmt.Sprintf("seating-%s.xlsx", uuid.NewString()))
}

// Export writes ab to path, or to DefaultPath when path is empty, and returns
// the path written.
func (w *Writer) Export(path string, ab addressbook.ReadOnly) (string, error) {
	if path == "" {
		path = w.DefaultPath()
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GuestsSheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(TablesSheet); err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeRow(f, GuestsSheet, 1, toCells(guestHeaders)); err != nil {
		return "", err
	}
	for i, p := range ab.Persons() {
		table := ""
		for _, t := range ab.Tables() {
			if t.Seats(p) {
				table = fmt.Sprint(t.ID())
				break
			}
		}
		row := []any{p.Name, p.Phone, p.Email, string(p.Rsvp), string(p.Diet), table}
		if err := writeRow(f, GuestsSheet, i+2, row); err != nil {
			return "", err
		}
	}

	if err := writeRow(f, TablesSheet, 1, toCells(tableHeaders)); err != nil {
		return "", err
	}
	for i, t := range ab.Tables() {
		names := make([]string, 0, t.GuestCount())
		for _, g := range t.Guests() {
			names = append(names, g.Name)
		}
		row := []any{t.ID(), t.Capacity(), t.GuestCount(), strings.Join(names, ", ")}
		if err := writeRow(f, TablesSheet, i+2, row); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(headers []string) []any {
	out := make([]any, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}
