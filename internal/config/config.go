// Package config resolves runtime settings from the optional settings file
// and environment variables. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the resolved runtime settings.
type Config struct {
	TablePath   string   // CHECKIN_TABLE; where the layout lives
	DatabaseURL string   // CHECKIN_DATABASE_URL (optional, empty = no session archive)
	Roster      []string // CHECKIN_ROSTER (comma-separated); names for seeded tables
	NoColor     bool     // settings file only
}

// Settings is the on-disk settings file shape.
type Settings struct {
	Table    string   `toml:"table,omitempty"`
	Database string   `toml:"database,omitempty"`
	Roster   []string `toml:"roster,omitempty"`
	NoColor  bool     `toml:"no_color,omitempty"`
}

// SettingsPath returns the settings file location, creating its directory.
func SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "checkin")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// Load resolves the configuration: built-in defaults, then the settings
// file, then environment variables.
func Load() (*Config, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	c := &Config{
		TablePath:   settings.Table,
		DatabaseURL: settings.Database,
		Roster:      settings.Roster,
		NoColor:     settings.NoColor,
	}
	if c.TablePath == "" {
		c.TablePath = DefaultTablePath()
	}

	if v := os.Getenv("CHECKIN_TABLE"); v != "" {
		c.TablePath = v
	}
	if v := os.Getenv("CHECKIN_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CHECKIN_ROSTER"); v != "" {
		c.Roster = splitRoster(v)
	}

	return c, nil
}

// DefaultTablePath places the layout next to the executable, falling back to
// the working directory.
func DefaultTablePath() string {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	} else if wd, err := os.Getwd(); err == nil {
		dir = wd
	}
	return filepath.Join(dir, "table.conf.json")
}

// SaveSettings writes the settings file.
func SaveSettings(s Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

func loadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		// No home directory: run on defaults.
		return Settings{}, nil
	}
	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
	}
	return s, nil
}

func splitRoster(v string) []string {
	var names []string
	for _, part := range strings.Split(v, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
