// Package state tracks on-disk stamps for open documents so the editor can
// detect files modified outside the current session before overwriting them.
package state

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// Stamp records what a file looked like when it was last read or written by
// the editor.
type Stamp struct {
	MTime int64
	Hash  string
}

// ComputeHash computes the SHA256 hash of a file.
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// Take records the current stamp for a file.
func Take(path string) (Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return Stamp{}, err
	}

	return Stamp{MTime: info.ModTime().Unix(), Hash: hash}, nil
}

// Changed reports whether the file differs from the stamp.
// Uses hybrid mtime + hash approach: mtime as the fast path, content hash to
// rule out touch-only updates.
func (s Stamp) Changed(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if info.ModTime().Unix() == s.MTime {
		return false, nil
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != s.Hash, nil
}
