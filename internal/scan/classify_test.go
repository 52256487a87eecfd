package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"lesson.mp4", KindVideo},
		{"lesson.MKV", KindVideo},
		{"clip.webm", KindVideo},
		{"lesson.srt", KindSubtitle},
		{"lesson.vtt", KindSubtitle},
		{"notes.pdf", KindResource},
		{"slides.pptx", KindResource},
		{".DS_Store", KindIgnored},
		{"index.html", KindIgnored},
		{"progress.json", KindIgnored},
		{"course_player.py", KindIgnored},
		{".hidden.mp4", KindVideo}, // extension wins over the dot
	}
	for _, c := range cases {
		if got := Classify(c.name); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindSubtitle_PriorityOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"vid.srt", "vid.vtt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// .srt is probed first even though both exist.
	if got := FindSubtitle(dir, "vid"); got != "vid.srt" {
		t.Fatalf("got %q, want vid.srt", got)
	}
}

func TestFindSubtitle_FallsBackToVTT(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vid.vtt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindSubtitle(dir, "vid"); got != "vid.vtt" {
		t.Fatalf("got %q, want vid.vtt", got)
	}
}

func TestFindSubtitle_None(t *testing.T) {
	if got := FindSubtitle(t.TempDir(), "vid"); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}
