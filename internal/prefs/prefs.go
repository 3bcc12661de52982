package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Defaults applied when no preferences file exists or it cannot be parsed.
const (
	DefaultFontFamily = "Sans Serif"
	DefaultFontSize   = 12.0
	DefaultWrap       = true
	DefaultReopenLast = true
	RecentMax         = 10
)

// Preferences is the persisted per-user settings record. It is owned by the
// caller and passed explicitly to every mutating operation; nothing in this
// package keeps ambient state.
type Preferences struct {
	FontFamily  string   `json:"font_family"`
	FontSize    float64  `json:"font_size"`
	ZoomSteps   int      `json:"zoom_steps"`
	WordWrap    bool     `json:"word_wrap"`
	ReopenLast  bool     `json:"reopen_last"`
	LastFile    string   `json:"last_file,omitempty"`
	RecentFiles []string `json:"recent_files"`
}

// DefaultPreferences returns the settings used on first run.
func DefaultPreferences() *Preferences {
	return &Preferences{
		FontFamily:  DefaultFontFamily,
		FontSize:    DefaultFontSize,
		ZoomSteps:   0,
		WordWrap:    DefaultWrap,
		ReopenLast:  DefaultReopenLast,
		RecentFiles: []string{},
	}
}

// ConfigPath returns the path to the preferences file.
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "zorinpad.json")
	}
	return filepath.Join(home, ".config", "zorinpad.json")
}

// Store reads and writes the preferences file.
type Store struct{}

// NewStore creates a preferences store.
func NewStore() *Store {
	return &Store{}
}

// Load reads preferences from disk. A missing, unreadable, or malformed file
// is never an error: corruption must not block startup, so Load falls back to
// defaults in every failure case.
func (s *Store) Load() *Preferences {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		return DefaultPreferences()
	}

	p := DefaultPreferences()
	if err := json.Unmarshal(data, p); err != nil {
		return DefaultPreferences()
	}

	p.sanitize()
	return p
}

// Save writes preferences to disk, creating the parent directory if needed.
// Persistence is best-effort: callers log the returned error at most and
// carry on, they never fail the user action because of it.
func (s *Store) Save(p *Preferences) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

// sanitize repairs a loaded record so the in-memory invariants hold even when
// the file was edited by hand: non-nil bounded deduplicated recent list,
// positive font size.
func (p *Preferences) sanitize() {
	if p.RecentFiles == nil {
		p.RecentFiles = []string{}
	}
	seen := make(map[string]bool, len(p.RecentFiles))
	kept := p.RecentFiles[:0]
	for _, f := range p.RecentFiles {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		kept = append(kept, f)
	}
	if len(kept) > RecentMax {
		kept = kept[:RecentMax]
	}
	p.RecentFiles = kept

	if p.FontSize <= 0 {
		p.FontSize = DefaultFontSize
	}
	if p.FontFamily == "" {
		p.FontFamily = DefaultFontFamily
	}
}
