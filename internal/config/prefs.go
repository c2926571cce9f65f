package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GuiSettings is the window geometry the render layer restores on start.
type GuiSettings struct {
	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
	WindowX      *int    `yaml:"window_x,omitempty"`
	WindowY      *int    `yaml:"window_y,omitempty"`
}

// DefaultGuiSettings is used when no preferences file exists.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{WindowWidth: 740, WindowHeight: 600}
}

// UserPrefs is persisted between runs in a YAML file.
type UserPrefs struct {
	Gui                   GuiSettings `yaml:"gui"`
	AddressBookFilePath   string      `yaml:"address_book_file"`
	ScheduleFilePath      string      `yaml:"schedule_file"`
	FlashcardBankFilePath string      `yaml:"flashcard_bank_file"`
}

// DefaultPrefs places the three data files under dataDir.
func DefaultPrefs(dataDir string) UserPrefs {
	return UserPrefs{
		Gui:                   DefaultGuiSettings(),
		AddressBookFilePath:   filepath.Join(dataDir, "addressbook.db"),
		ScheduleFilePath:      filepath.Join(dataDir, "schedule.db"),
		FlashcardBankFilePath: filepath.Join(dataDir, "flashcardbank.db"),
	}
}

// LoadPrefs reads preferences from path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadPrefs(path, dataDir string) (UserPrefs, error) {
	prefs := DefaultPrefs(dataDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("read preferences %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPrefs(dataDir), fmt.Errorf("parse preferences %s: %w", path, err)
	}
	return prefs, nil
}

// SavePrefs writes prefs to path through a temp file and rename, so a crash
// never leaves a half-written file behind.
func SavePrefs(path string, prefs UserPrefs) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp preferences: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}
	return nil
}
