// Package pandoc wraps the optional pandoc binary used for RTF/DOCX/ODT
// conversion. The binary may be entirely absent at runtime; availability is
// probed once at startup and exposed as a Capability.
package pandoc

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts command execution to enable testing without real subprocesses.
type Runner interface {
	Run(stdin string, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(stdin string, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("pandoc: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), stderr.String(), nil
}

// Converter invokes pandoc for format conversion.
type Converter struct {
	path   string
	runner Runner
}

// NewConverter creates a converter bound to the pandoc binary at path.
func NewConverter(path string, runner Runner) *Converter {
	return &Converter{path: path, runner: runner}
}

// ConvertText converts in-memory text from one format to another and returns
// the converted text.
func (c *Converter) ConvertText(input, from, to string) (string, error) {
	out, _, err := c.runner.Run(input, c.path, "-f", from, "-t", to)
	if err != nil {
		return "", err
	}
	return out, nil
}

// ConvertFile converts a file on disk to the given format, letting pandoc
// infer the source format from the file itself. Used for binary container
// formats that cannot round-trip through a text pipe.
func (c *Converter) ConvertFile(path, to string) (string, error) {
	out, _, err := c.runner.Run("", c.path, path, "-t", to)
	if err != nil {
		return "", err
	}
	return out, nil
}

// ConvertTextToFile converts in-memory text and writes the result directly to
// outPath. Pandoc picks the output container from the -o extension, which is
// how binary targets like docx and odt are produced.
func (c *Converter) ConvertTextToFile(input, from, to, outPath string) error {
	_, _, err := c.runner.Run(input, c.path, "-f", from, "-t", to, "-o", outPath)
	return err
}

// Version queries the installed pandoc version.
func (c *Converter) Version() (string, error) {
	out, _, err := c.runner.Run("", c.path, "--version")
	if err != nil {
		return "", err
	}
	return parseVersion(out)
}

// parseVersion extracts the version number from `pandoc --version` output.
// First line looks like: "pandoc 3.1.9".
func parseVersion(out string) (string, error) {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "pandoc" {
		return "", fmt.Errorf("unexpected pandoc version output: %q", line)
	}
	return fields[1], nil
}
