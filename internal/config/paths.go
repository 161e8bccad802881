package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the editbox config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/editbox; on macOS
// to ~/Library/Application Support/editbox; and on Windows to %AppData%/editbox.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "editbox"), nil
}

// SettingsPath returns the path of settings.json.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}
