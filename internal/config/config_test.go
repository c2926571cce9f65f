package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/studybananas/internal/config"
	"github.com/vytor/studybananas/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_COLORS", "")
	t.Setenv("PREFS_PATH", "")
	t.Setenv("DATA_DIR", "")

	cfg := config.Load()

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.LogColors)
	assert.Equal(t, "preferences.yaml", cfg.PrefsPath)
	assert.Equal(t, "data", cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_COLORS", "false")
	t.Setenv("PREFS_PATH", "/tmp/p.yaml")
	t.Setenv("DATA_DIR", "/tmp/data")

	cfg := config.Load()

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.False(t, cfg.LogColors)
	assert.Equal(t, "/tmp/p.yaml", cfg.PrefsPath)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_InvalidBoolKeepsDefault(t *testing.T) {
	t.Setenv("LOG_COLORS", "sometimes")
	assert.True(t, config.Load().LogColors)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr []string
	}{
		{
			name: "valid",
			cfg:  config.Config{LogLevel: "warn", PrefsPath: "p.yaml", DataDir: "data"},
		},
		{
			name:    "bad level",
			cfg:     config.Config{LogLevel: "LOUD", PrefsPath: "p.yaml", DataDir: "data"},
			wantErr: []string{"LOG_LEVEL"},
		},
		{
			name:    "everything wrong",
			cfg:     config.Config{LogLevel: "LOUD"},
			wantErr: []string{"LOG_LEVEL", "PREFS_PATH: cannot be empty", "DATA_DIR: cannot be empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrValidation)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestPrefs_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	prefs, err := config.LoadPrefs(filepath.Join(dir, "nope.yaml"), "store")

	require.NoError(t, err)
	assert.Equal(t, config.DefaultPrefs("store"), prefs)
	assert.Equal(t, filepath.Join("store", "flashcardbank.db"), prefs.FlashcardBankFilePath)
}

func TestPrefs_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.yaml")
	x := 40
	want := config.DefaultPrefs(dir)
	want.Gui.WindowWidth = 1024
	want.Gui.WindowX = &x

	require.NoError(t, config.SavePrefs(path, want))
	got, err := config.LoadPrefs(path, "ignored")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestPrefs_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schedule_file: elsewhere.db\n"), 0o644))

	got, err := config.LoadPrefs(path, "data")
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.db", got.ScheduleFilePath)
	assert.Equal(t, filepath.Join("data", "addressbook.db"), got.AddressBookFilePath)
	assert.Equal(t, 740.0, got.Gui.WindowWidth)
}

func TestPrefs_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gui: [oops"), 0o644))

	got, err := config.LoadPrefs(path, "data")
	assert.Error(t, err)
	assert.Equal(t, config.DefaultPrefs("data"), got)
}
