package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// UserPrefs are the settings the user can change between sessions.
type UserPrefs struct {
	DataFilePath   string `yaml:"data_file_path"`
	StorageBackend string `yaml:"storage_backend"`
	ExportDir      string `yaml:"export_dir"`
}

// DefaultUserPrefs places all files under dataDir.
func DefaultUserPrefs(dataDir string) UserPrefs {
	return UserPrefs{
		DataFilePath:   filepath.Join(dataDir, "addressbook.json"),
		StorageBackend: BackendJSON,
		ExportDir:      filepath.Join(dataDir, "exports"),
	}
}

// Validate rejects an unknown backend or an empty data file path.
func (p UserPrefs) Validate() error {
	if p.DataFilePath == "" {
		return errors.New("data_file_path must not be empty")
	}
	switch p.StorageBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage_backend %q: must be %s or %s", p.StorageBackend, BackendJSON, BackendSQLite)
	}
	return nil
}

// LoadUserPrefs reads preferences from path. A missing file yields defaults;
// fields absent from the file keep their default values.
func LoadUserPrefs(path string, defaults UserPrefs) (UserPrefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return UserPrefs{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs := defaults
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return UserPrefs{}, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	if err := prefs.Validate(); err != nil {
		return UserPrefs{}, fmt.Errorf("invalid preferences %s: %w", path, err)
	}
	return prefs, nil
}

// SaveUserPrefs writes preferences to path, creating its directory.
func SaveUserPrefs(path string, prefs UserPrefs) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
