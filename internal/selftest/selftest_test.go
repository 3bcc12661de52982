package selftest

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCoreChecksPass(t *testing.T) {
	var buf bytes.Buffer
	Run(&buf)
	out := buf.String()

	// The pandoc check depends on the host; the core checks never should.
	wantPass := []string{
		"[TEST] prefs persisted: PASS",
		"[TEST] recent files deduplicated: PASS",
		"[TEST] fixtures written: PASS",
		"[TEST] read .zpad as markup: PASS",
		"[TEST] read .txt as plain: PASS",
	}
	for _, w := range wantPass {
		if !strings.Contains(out, w) {
			t.Errorf("Expected output to contain %q.\nOutput:\n%s", w, out)
		}
	}
}

func TestRunReportsVerdict(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&buf)
	out := buf.String()

	switch code {
	case 0:
		if !strings.Contains(out, "SELF-TESTS PASSED") {
			t.Errorf("Exit 0 should report PASSED.\nOutput:\n%s", out)
		}
	default:
		if !strings.Contains(out, "SELF-TESTS FAILED") {
			t.Errorf("Non-zero exit should report FAILED.\nOutput:\n%s", out)
		}
	}
}
