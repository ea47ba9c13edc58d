// Package usage keeps per-template selection counts and a recently-used list.
package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gitignore-tui/internal/domain"
)

// Store persists the usage record to a single JSON file
type Store struct {
	mu     sync.Mutex
	path   string
	record domain.UsageRecord
}

// NewStore creates a store backed by path. Call Load to read existing data.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		record: domain.NewUsageRecord(),
	}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load reads the record from disk. Any read or parse failure leaves the
// store empty; the returned error is informational only.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = domain.NewUsageRecord()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &domain.PersistenceError{Op: "read usage", Path: s.path, Err: err}
	}

	var raw struct {
		Usage        json.RawMessage `json:"usage"`
		RecentlyUsed json.RawMessage `json:"recently_used"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &domain.PersistenceError{Op: "parse usage", Path: s.path, Err: err}
	}

	// Each field is decoded on its own so a malformed one does not discard
	// the other.
	var counts map[string]int
	if len(raw.Usage) > 0 && json.Unmarshal(raw.Usage, &counts) == nil && counts != nil {
		s.record.Usage = counts
	}
	var recent []string
	if len(raw.RecentlyUsed) > 0 && json.Unmarshal(raw.RecentlyUsed, &recent) == nil {
		s.record.RecentlyUsed = normalizeRecent(recent)
	}
	return nil
}

// RecordUse bumps the count for name, moves it to the front of the recent
// list and writes the record. The in-memory update survives a failed write.
func (s *Store) RecordUse(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record.Usage[name]++
	recent := make([]string, 0, domain.MaxRecent)
	recent = append(recent, name)
	for _, n := range s.record.RecentlyUsed {
		if n != name {
			recent = append(recent, n)
		}
	}
	s.record.RecentlyUsed = normalizeRecent(recent)

	return s.record.Usage[name], s.saveLocked()
}

// Count returns how many times name was selected
func (s *Store) Count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Usage[name]
}

// Usage returns a copy of the count map
func (s *Store) Usage() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.record.Usage))
	for k, v := range s.record.Usage {
		out[k] = v
	}
	return out
}

// Recent returns a copy of the recently-used list, most recent first
func (s *Store) Recent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.record.RecentlyUsed...)
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "encode usage", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.PersistenceError{Op: "write usage", Path: s.path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".usage-*.json")
	if err != nil {
		return &domain.PersistenceError{Op: "write usage", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "write usage", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "write usage", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &domain.PersistenceError{Op: "write usage", Path: s.path, Err: fmt.Errorf("replace: %w", err)}
	}
	return nil
}

// normalizeRecent drops duplicates and empties, keeping the first
// occurrence, and caps the list
func normalizeRecent(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, domain.MaxRecent)
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == domain.MaxRecent {
			break
		}
	}
	return out
}
