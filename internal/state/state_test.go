package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestTakeAndUnchanged(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "doc.zpad", "<p>hello</p>")

	stamp, err := Take(path)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}

	changed, err := stamp.Changed(path)
	if err != nil {
		t.Fatalf("Changed failed: %v", err)
	}
	if changed {
		t.Error("Untouched file reported as changed")
	}
}

func TestChangedDetectsContentChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "doc.zpad", "<p>hello</p>")

	stamp, err := Take(path)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("<p>modified elsewhere</p>"), 0644); err != nil {
		t.Fatalf("Failed to modify file: %v", err)
	}
	// Force a different mtime so the fast path cannot mask the change.
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	changed, err := stamp.Changed(path)
	if err != nil {
		t.Fatalf("Changed failed: %v", err)
	}
	if !changed {
		t.Error("Modified file not detected")
	}
}

func TestChangedIgnoresTouchOnlyUpdate(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "doc.zpad", "<p>hello</p>")

	stamp, err := Take(path)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}

	// Same content, different mtime: the hash check must rescue this.
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	changed, err := stamp.Changed(path)
	if err != nil {
		t.Fatalf("Changed failed: %v", err)
	}
	if changed {
		t.Error("Touch-only update reported as a content change")
	}
}

func TestChangedMissingFileErrors(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "doc.zpad", "x")

	stamp, err := Take(path)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := stamp.Changed(path); err == nil {
		t.Error("Expected an error for a deleted file")
	}
}

func TestComputeHashStable(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a", "same content")
	b := writeFixture(t, dir, "b", "same content")
	c := writeFixture(t, dir, "c", "different content")

	ha, err := ComputeHash(a)
	if err != nil {
		t.Fatalf("ComputeHash failed: %v", err)
	}
	hb, _ := ComputeHash(b)
	hc, _ := ComputeHash(c)

	if ha != hb {
		t.Error("Identical content produced different hashes")
	}
	if ha == hc {
		t.Error("Different content produced identical hashes")
	}
}
