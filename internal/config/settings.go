package config

import (
	"fmt"

	"editbox/internal/store"
)

// MaxCols bounds the window width accepted from settings and flags.
const MaxCols = 512

// Settings are the persisted defaults for the edit window. Flags given on
// the command line override them for one run.
type Settings struct {
	Rows      int  `json:"rows"`
	Cols      int  `json:"cols"`
	Overwrite bool `json:"overwrite"`
	Status    bool `json:"status"`
	Border    bool `json:"border"`
}

// Defaults is a five line, forty column box in insert mode.
func Defaults() Settings {
	return Settings{Rows: 5, Cols: 40, Status: true, Border: true}
}

// Validate rejects window sizes the editor cannot use.
func (s Settings) Validate() error {
	if s.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", s.Rows)
	}
	if s.Cols < 1 || s.Cols > MaxCols {
		return fmt.Errorf("cols must be between 1 and %d, got %d", MaxCols, s.Cols)
	}
	return nil
}

// Load reads settings.json. A missing file yields Defaults.
func Load() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	s := Defaults()
	if err := store.LoadJSON(p, &s); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", p, err)
	}
	return s, nil
}

// Save validates s and writes it to settings.json.
func Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	return store.SaveJSON(p, s)
}
