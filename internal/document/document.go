// Package document routes file loads and saves by extension: native markup
// and plain text are read and written directly, legacy office formats go
// through the optional pandoc converter.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mrcise612/ZorinPad/internal/pandoc"
)

// DefaultExt is the native on-disk format (HTML under the hood).
const DefaultExt = ".zpad"

// ErrConverterRequired is returned for RTF/DOCX/ODT operations when no usable
// pandoc install was found at startup.
var ErrConverterRequired = errors.New("RTF/DOCX/ODT support requires pandoc; install it with: sudo apt install pandoc")

// Format classifies a file extension.
type Format int

const (
	// FormatMarkup is the native rich format: .zpad, .html, .htm.
	FormatMarkup Format = iota
	// FormatPlain is raw text: .txt.
	FormatPlain
	// FormatConverter covers the pandoc-only formats: .rtf, .docx, .odt.
	FormatConverter
	// FormatUnknown is any other extension; treated as plain text on load.
	FormatUnknown
)

// Classify maps a path's extension to its format class.
func Classify(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zpad", ".html", ".htm":
		return FormatMarkup
	case ".txt":
		return FormatPlain
	case ".rtf", ".docx", ".odt":
		return FormatConverter
	default:
		return FormatUnknown
	}
}

// Content is a loaded document: the text plus whether it is rich markup or
// plain text. The editor shell renders it accordingly.
type Content struct {
	Text   string
	Markup bool
}

// Dispatcher performs load/save routing. The converter capability is fixed at
// construction; there is no lazy re-probe.
type Dispatcher struct {
	cap pandoc.Capability
}

// NewDispatcher creates a dispatcher with the given converter capability.
func NewDispatcher(capability pandoc.Capability) *Dispatcher {
	return &Dispatcher{cap: capability}
}

// ConverterAvailable reports whether the converter-gated formats work.
func (d *Dispatcher) ConverterAvailable() bool {
	return d.cap.Available()
}

// Load reads the file at path and returns its content. Markup and plain
// files are decoded leniently (invalid byte sequences replaced, never an
// encoding failure). Converter formats fail with ErrConverterRequired when
// pandoc is unavailable; all other errors are the underlying I/O errors.
func (d *Dispatcher) Load(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch Classify(path) {
	case FormatMarkup:
		return Content{Text: decodeLenient(data), Markup: true}, nil

	case FormatPlain:
		return Content{Text: decodeLenient(data), Markup: false}, nil

	case FormatConverter:
		if !d.cap.Available() {
			return Content{}, fmt.Errorf("cannot open %s: %w", ext, ErrConverterRequired)
		}
		var html string
		if ext == ".rtf" {
			// RTF is a text format; convert the decoded content directly.
			html, err = d.cap.Converter.ConvertText(decodeStrip(data), "rtf", "html")
		} else {
			// DOCX/ODT are binary containers; convert from the file itself.
			html, err = d.cap.Converter.ConvertFile(path, "html")
		}
		if err != nil {
			return Content{}, err
		}
		return Content{Text: html, Markup: true}, nil

	default:
		// Best-effort fallback for unrecognized extensions.
		return Content{Text: decodeLenient(data), Markup: false}, nil
	}
}

// Save writes the document to path, routing by extension. Markup formats get
// the markup string verbatim, .txt gets the plain-text projection, converter
// formats are exported through pandoc. An unrecognized extension is replaced
// with the native one and the markup is written there. Returns the path
// actually written.
func (d *Dispatcher) Save(path, markup, plain string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = DefaultExt
	}

	switch ext {
	case ".zpad", ".html", ".htm":
		return path, writeFileAtomic(path, []byte(markup))

	case ".txt":
		return path, writeFileAtomic(path, []byte(plain))

	case ".rtf", ".docx", ".odt":
		if !d.cap.Available() {
			return "", fmt.Errorf("cannot save %s: %w", ext, ErrConverterRequired)
		}
		if ext == ".rtf" {
			out, err := d.cap.Converter.ConvertText(markup, "html", "rtf")
			if err != nil {
				return "", err
			}
			return path, writeFileAtomic(path, []byte(out))
		}
		// Binary outputs are written by pandoc itself via -o.
		if err := d.cap.Converter.ConvertTextToFile(markup, "html", strings.TrimPrefix(ext, "."), path); err != nil {
			return "", err
		}
		return path, nil

	default:
		// Unrecognized extension: redirect to the native format.
		target := strings.TrimSuffix(path, filepath.Ext(path)) + DefaultExt
		return target, writeFileAtomic(target, []byte(markup))
	}
}

// decodeLenient converts bytes to a UTF-8 string, replacing invalid sequences
// rather than failing.
func decodeLenient(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

// decodeStrip drops invalid sequences instead of replacing them, so stray
// bytes in RTF control streams do not leak replacement runes into pandoc.
func decodeStrip(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

// writeFileAtomic writes data to a uniquely named temp file in the target
// directory and renames it into place, so a failed write never leaves a
// truncated document behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.New().String()[:8])
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
