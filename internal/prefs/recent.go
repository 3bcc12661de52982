package prefs

import "path/filepath"

// AddRecent records path as the most recently used file: any existing
// occurrence is removed, the path is pushed to the front, the list is
// truncated to RecentMax, and LastFile is updated.
func (p *Preferences) AddRecent(path string) {
	sp := filepath.Clean(path)

	kept := make([]string, 0, len(p.RecentFiles)+1)
	kept = append(kept, sp)
	for _, f := range p.RecentFiles {
		if f != sp {
			kept = append(kept, f)
		}
	}
	if len(kept) > RecentMax {
		kept = kept[:RecentMax]
	}

	p.RecentFiles = kept
	p.LastFile = sp
}

// ClearRecent empties the recent-files list.
func (p *Preferences) ClearRecent() {
	p.RecentFiles = []string{}
}

// Recent returns a copy of the recent-files list, most recent first.
func (p *Preferences) Recent() []string {
	out := make([]string, len(p.RecentFiles))
	copy(out, p.RecentFiles)
	return out
}

// AddRecent updates the record and writes it through to disk. The save error
// is returned for inspection but is safe to ignore.
func (s *Store) AddRecent(p *Preferences, path string) error {
	p.AddRecent(path)
	return s.Save(p)
}

// ClearRecent empties the record's recent list and writes it through to disk.
func (s *Store) ClearRecent(p *Preferences) error {
	p.ClearRecent()
	return s.Save(p)
}
