// Package config loads the demo host's layered settings.
//
// Settings are merged from three files (lowest priority first):
//  1. User: ~/.askuser/settings.json
//  2. Project: .askuser/settings.json
//  3. Local: .askuser/settings.local.json (gitignored, per-project)
//
// ASKUSER_* environment variables override every file layer.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Settings holds merged configuration from all levels.
type Settings struct {
	// MaxVisibleRows bounds the option list window in the widget.
	MaxVisibleRows *int `json:"maxVisibleRows,omitempty"`
	// PreserveSelections keeps cursor and checked state across a trip
	// into the freeform editor. Off discards them when the editor opens.
	PreserveSelections *bool `json:"preserveSelections,omitempty"`
	// Theme selects "dark" (default) or "light".
	Theme string `json:"theme,omitempty"`
	// SkillDirs lists directories scanned for SKILL.md documents.
	SkillDirs []string `json:"skillDirs,omitempty"`
}

// Load merges settings from all levels, lowest priority first, then
// applies environment overrides. Missing or invalid files are skipped.
func Load(cwd string) *Settings {
	merged := &Settings{}
	for _, path := range settingsPaths(cwd) {
		layer, err := loadFile(path)
		if err != nil {
			continue
		}
		merged = merge(merged, layer)
	}
	mergeEnv(merged)
	return merged
}

// settingsPaths returns settings file paths from lowest to highest
// priority.
func settingsPaths(cwd string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".askuser", "settings.json"))
	}
	return append(paths,
		filepath.Join(cwd, ".askuser", "settings.json"),
		filepath.Join(cwd, ".askuser", "settings.local.json"),
	)
}

func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Settings{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// merge overlays one settings layer on top of another. Overlay fields
// win when set.
func merge(base, overlay *Settings) *Settings {
	result := &Settings{}

	result.MaxVisibleRows = base.MaxVisibleRows
	if overlay.MaxVisibleRows != nil {
		result.MaxVisibleRows = overlay.MaxVisibleRows
	}

	result.PreserveSelections = base.PreserveSelections
	if overlay.PreserveSelections != nil {
		result.PreserveSelections = overlay.PreserveSelections
	}

	result.Theme = base.Theme
	if overlay.Theme != "" {
		result.Theme = overlay.Theme
	}

	result.SkillDirs = base.SkillDirs
	if len(overlay.SkillDirs) > 0 {
		result.SkillDirs = overlay.SkillDirs
	}

	return result
}

// mergeEnv applies ASKUSER_* overrides on top of the file layers.
// Unparseable values are ignored rather than erroring.
func mergeEnv(s *Settings) {
	if v := os.Getenv("ASKUSER_MAX_VISIBLE_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.MaxVisibleRows = IntPtr(n)
		}
	}
	if v := os.Getenv("ASKUSER_PRESERVE_SELECTIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.PreserveSelections = BoolPtr(b)
		}
	}
	if v := os.Getenv("ASKUSER_THEME"); v != "" {
		s.Theme = v
	}
	if v := os.Getenv("ASKUSER_SKILL_DIRS"); v != "" {
		s.SkillDirs = filepath.SplitList(v)
	}
}

// BoolVal returns the value of a *bool pointer, or the default if nil.
func BoolVal(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

// IntVal returns the value of an *int pointer, or the default if nil.
func IntVal(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// IntPtr returns a pointer to an int value.
func IntPtr(v int) *int {
	return &v
}
