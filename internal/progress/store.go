// Package progress persists the set of watched videos as one small JSON
// document, rewritten wholesale on every change.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// document is the on-disk schema: {"watched": ["Section/video.mp4", ...]}.
type document struct {
	Watched []string `json:"watched"`
}

// Store tracks watched video keys in a JSON file. Every mutation reloads
// the file, applies the change, and atomically rewrites the whole
// document, so the file is the single source of truth. A mutex makes the
// read-modify-write cycle atomic within the process.
type Store struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// NewStore creates a store backed by the JSON document at path.
// The file is created lazily on first mutation.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load returns the current watched set. A missing file is an empty set;
// a malformed file is logged and also treated as empty, so a corrupted
// document never takes the player down.
func (s *Store) Load() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Watched reports whether key is in the set.
func (s *Store) Watched(key string) bool {
	return s.Load()[key]
}

// Keys returns the watched keys sorted, for embedding in the page.
func (s *Store) Keys() []string {
	set := s.Load()
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add inserts key into the set. Inserting an existing key is a no-op
// but still rewrites the document.
func (s *Store) Add(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.load()
	set[key] = true
	return s.save(set)
}

// Remove deletes key from the set. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.load()
	delete(set, key)
	return s.save(set)
}

// Toggle flips membership of key and returns the resulting state.
func (s *Store) Toggle(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.load()
	watched := !set[key]
	if watched {
		set[key] = true
	} else {
		delete(set, key)
	}
	return watched, s.save(set)
}

// Reset replaces the set with an empty one.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(map[string]bool{})
}

func (s *Store) load() map[string]bool {
	set := make(map[string]bool)
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("read progress file")
		}
		return set
	}
	if len(data) == 0 {
		return set
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("malformed progress file, treating as empty")
		return set
	}
	for _, k := range doc.Watched {
		if k != "" {
			set[k] = true
		}
	}
	return set
}

// save writes the full document atomically: encode to a temp file in the
// same directory, then rename over the real one.
func (s *Store) save(set map[string]bool) error {
	doc := document{Watched: make([]string, 0, len(set))}
	for k := range set {
		doc.Watched = append(doc.Watched, k)
	}
	sort.Strings(doc.Watched)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open tmp: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
