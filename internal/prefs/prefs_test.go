package prefs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// overrideConfigPath points the store at a file inside a temp dir for the
// duration of a test.
func overrideConfigPath(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "zorinpad.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})

	return testConfigPath
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	if p.FontFamily != DefaultFontFamily {
		t.Errorf("Expected font family %q, got %q", DefaultFontFamily, p.FontFamily)
	}
	if p.FontSize != DefaultFontSize {
		t.Errorf("Expected font size %v, got %v", DefaultFontSize, p.FontSize)
	}
	if p.ZoomSteps != 0 {
		t.Errorf("Expected zero zoom steps, got %d", p.ZoomSteps)
	}
	if !p.WordWrap {
		t.Error("Expected word wrap on by default")
	}
	if !p.ReopenLast {
		t.Error("Expected reopen-last on by default")
	}
	if p.RecentFiles == nil || len(p.RecentFiles) != 0 {
		t.Errorf("Expected empty recent list, got %v", p.RecentFiles)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	overrideConfigPath(t)
	store := NewStore()

	p := &Preferences{
		FontFamily:  "Ubuntu",
		FontSize:    14,
		ZoomSteps:   -2,
		WordWrap:    false,
		ReopenLast:  true,
		LastFile:    "/home/user/notes.zpad",
		RecentFiles: []string{"/home/user/notes.zpad", "/home/user/todo.txt"},
	}

	if err := store.Save(p); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}

	loaded := store.Load()
	if !reflect.DeepEqual(loaded, p) {
		t.Errorf("Round trip mismatch.\nSaved:  %+v\nLoaded: %+v", p, loaded)
	}
}

func TestZoomStepsPersist(t *testing.T) {
	overrideConfigPath(t)
	store := NewStore()

	p := store.Load()
	p.ZoomSteps = 3
	if err := store.Save(p); err != nil {
		t.Fatalf("Failed to save preferences: %v", err)
	}

	// Reconstruct from disk.
	reloaded := NewStore().Load()
	if reloaded.ZoomSteps != 3 {
		t.Errorf("Expected zoom steps 3 after reload, got %d", reloaded.ZoomSteps)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	overrideConfigPath(t)

	p := NewStore().Load()
	if !reflect.DeepEqual(p, DefaultPreferences()) {
		t.Errorf("Expected defaults for missing file, got %+v", p)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "!!! this is not json !!!"},
		{name: "truncated", data: `{"font_family": "Ubu`},
		{name: "wrong type", data: `{"font_size": "twelve"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := overrideConfigPath(t)
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			p := NewStore().Load()
			if !reflect.DeepEqual(p, DefaultPreferences()) {
				t.Errorf("Expected defaults for corrupt file, got %+v", p)
			}
		})
	}
}

func TestLoadSanitizesRecentList(t *testing.T) {
	path := overrideConfigPath(t)
	data := `{
  "font_family": "Sans Serif",
  "font_size": 12,
  "recent_files": ["/a", "/b", "/a", "", "/c", "/d", "/e", "/f", "/g", "/h", "/i", "/j", "/k", "/l"]
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	p := NewStore().Load()

	if len(p.RecentFiles) > RecentMax {
		t.Errorf("Recent list not bounded: %d entries", len(p.RecentFiles))
	}
	seen := map[string]bool{}
	for _, f := range p.RecentFiles {
		if f == "" {
			t.Error("Empty entry survived sanitize")
		}
		if seen[f] {
			t.Errorf("Duplicate entry survived sanitize: %s", f)
		}
		seen[f] = true
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "deep", "nested", "zorinpad.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string { return nested }
	defer func() { ConfigPath = originalConfigPath }()

	if err := NewStore().Save(DefaultPreferences()); err != nil {
		t.Fatalf("Save should create parent directories: %v", err)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Errorf("Preferences file was not created: %v", err)
	}
}

func TestSaveFailureIsInspectable(t *testing.T) {
	// Point the config path at a directory so the write fails.
	tmpDir := t.TempDir()

	originalConfigPath := ConfigPath
	ConfigPath = func() string { return tmpDir }
	defer func() { ConfigPath = originalConfigPath }()

	if err := NewStore().Save(DefaultPreferences()); err == nil {
		t.Error("Expected an error writing preferences to a directory path")
	}
}
