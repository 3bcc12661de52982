// Package selftest implements the headless --self-test mode: a handful of
// end-to-end checks over the preferences store and the format dispatcher,
// printed as PASS/FAIL lines with a non-zero exit on any failure.
package selftest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrcise612/ZorinPad/internal/document"
	"github.com/mrcise612/ZorinPad/internal/pandoc"
	"github.com/mrcise612/ZorinPad/internal/prefs"
)

// Run executes all checks, writing results to w. Returns 0 when every check
// passed, 1 otherwise.
func Run(w io.Writer) int {
	failures := 0
	check := func(name string, cond bool, detail string) {
		status := "PASS"
		if !cond {
			status = "FAIL"
			failures++
		}
		if detail != "" {
			fmt.Fprintf(w, "[TEST] %s: %s — %s\n", name, status, detail)
		} else {
			fmt.Fprintf(w, "[TEST] %s: %s\n", name, status)
		}
	}

	pcap := pandoc.Detect()
	check("pandoc available", pcap.Available(), "Optional; enables RTF/DOCX/ODT")

	// Run the persistence checks against a scratch config location so the
	// user's real preferences are never touched.
	tmpDir, err := os.MkdirTemp("", "zorinpad-selftest-")
	if err != nil {
		check("temp dir", false, err.Error())
		fmt.Fprintf(w, "\nSELF-TESTS FAILED (%d)\n", failures)
		return 1
	}
	defer os.RemoveAll(tmpDir)

	origConfigPath := prefs.ConfigPath
	prefs.ConfigPath = func() string {
		return filepath.Join(tmpDir, "zorinpad.json")
	}
	defer func() { prefs.ConfigPath = origConfigPath }()

	store := prefs.NewStore()
	p := store.Load()
	p.ZoomSteps = 3
	saveErr := store.Save(p)
	reloaded := store.Load()
	check("prefs persisted", saveErr == nil && reloaded.ZoomSteps == 3, "")

	reloaded.AddRecent(filepath.Join(tmpDir, "a.zpad"))
	reloaded.AddRecent(filepath.Join(tmpDir, "a.zpad"))
	check("recent files deduplicated", len(reloaded.Recent()) == 1, "")

	// File round-trip through the dispatcher.
	disp := document.NewDispatcher(pcap)
	htmlPath := filepath.Join(tmpDir, "t.zpad")
	txtPath := filepath.Join(tmpDir, "t.txt")
	htmlSample := "<h1>Title</h1><p>Hello <b>world</b></p>"
	txtSample := "Hello world\nLine 2"

	wErr1 := os.WriteFile(htmlPath, []byte(htmlSample), 0644)
	wErr2 := os.WriteFile(txtPath, []byte(txtSample), 0644)
	check("fixtures written", wErr1 == nil && wErr2 == nil, "")

	h, hErr := disp.Load(htmlPath)
	check("read .zpad as markup", hErr == nil && h.Markup && strings.Contains(h.Text, "<h1>Title</h1>"), "")

	t, tErr := disp.Load(txtPath)
	check("read .txt as plain", tErr == nil && !t.Markup && strings.Contains(t.Text, "Line 2"), "")

	if failures == 0 {
		fmt.Fprintln(w, "\nSELF-TESTS PASSED")
		return 0
	}
	fmt.Fprintf(w, "\nSELF-TESTS FAILED (%d)\n", failures)
	return 1
}
