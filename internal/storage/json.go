package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"wedding-planner/internal/addressbook"
)

// JSONStorage keeps the address book in a single JSON file.
type JSONStorage struct {
	file string
}

// NewJSONStorage creates a new storage instance
func NewJSONStorage(filePath string) *JSONStorage {
	return &JSONStorage{file: filePath}
}

func (s *JSONStorage) Path() string { return s.file }

// Save saves the address book to file
func (s *JSONStorage) Save(_ context.Context, ab addressbook.ReadOnly) error {
	data, err := json.MarshalIndent(snapshotOf(ab), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write beside the target and rename so a crash never leaves a truncated book.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.file)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.file); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// Load loads the address book from file. A missing or empty file yields an
// empty address book.
func (s *JSONStorage) Load(_ context.Context) (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.file)
	if errors.Is(err, os.ErrNotExist) {
		return addressbook.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return addressbook.New(), nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return snap.toAddressBook()
}

func (s *JSONStorage) Close() error { return nil }
