package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "progress.json"), zerolog.Nop())
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("want empty set, got %v", got)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "progress.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(p, zerolog.Nop())
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("want empty set for malformed file, got %v", got)
	}
}

func TestAdd_Idempotent(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 2; i++ {
		if err := s.Add("SectionA/vid.mp4"); err != nil {
			t.Fatal(err)
		}
	}
	keys := s.Keys()
	if len(keys) != 1 || keys[0] != "SectionA/vid.mp4" {
		t.Fatalf("want one key, got %v", keys)
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove("never/added.mp4"); err != nil {
		t.Fatal(err)
	}
	if len(s.Load()) != 0 {
		t.Fatal("set should stay empty")
	}
}

func TestToggle_Twice_RestoresState(t *testing.T) {
	s := newTestStore(t)
	on, err := s.Toggle("a/b.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("first toggle should report watched")
	}
	off, err := s.Toggle("a/b.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if off {
		t.Fatal("second toggle should report unwatched")
	}
	if s.Watched("a/b.mp4") {
		t.Fatal("key should be absent after double toggle")
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	s := newTestStore(t)
	_ = s.Add("x.mp4")
	_ = s.Add("y.mp4")
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("want empty after reset, got %v", got)
	}
}

func TestSave_DocumentShape(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "progress.json")
	s := NewStore(p, zerolog.Nop())
	if err := s.Add("b.mp4"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("a.mp4"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Watched []string `json:"watched"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document not valid JSON: %v", err)
	}
	if len(doc.Watched) != 2 || doc.Watched[0] != "a.mp4" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	// No stray temp file after a successful write.
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}

func TestMutation_WriteFailureSurfaces(t *testing.T) {
	// A store path that is a directory makes the final rename fail.
	s := NewStore(t.TempDir(), zerolog.Nop())
	if err := s.Add("a.mp4"); err == nil {
		t.Fatal("expected write failure")
	}
}
