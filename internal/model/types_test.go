package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCourse_MarshalJSON_PreservesOrder(t *testing.T) {
	c := Course{
		Name: "Go Course",
		Sections: []Section{
			{ID: "00-General", Path: ".", Videos: []Video{{Name: "intro", Path: "intro.mp4"}}},
			{ID: "Section 2", Path: "Section 2", Videos: []Video{{Name: "a", Path: "Section 2/a.mp4"}}},
			{ID: "Section 10", Path: "Section 10", Videos: []Video{{Name: "b", Path: "Section 10/b.mp4"}}},
		},
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	i2 := strings.Index(s, `"Section 2"`)
	i10 := strings.Index(s, `"Section 10"`)
	ig := strings.Index(s, `"00-General"`)
	if ig == -1 || i2 == -1 || i10 == -1 {
		t.Fatalf("missing section keys: %s", s)
	}
	if !(ig < i2 && i2 < i10) {
		t.Fatalf("section order not preserved: %s", s)
	}
	// Round-trips as a plain object.
	var m map[string]Section
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("not a valid JSON object: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("want 3 sections, got %d", len(m))
	}
}

func TestCourse_Counters(t *testing.T) {
	c := Course{Sections: []Section{
		{ID: "A", Videos: []Video{{Path: "a.mp4", Subtitle: "a.srt"}, {Path: "b.mp4"}}},
		{ID: "B", Videos: []Video{{Path: "c.mp4"}}},
	}}
	if c.Empty() {
		t.Fatal("course is not empty")
	}
	if got := c.TotalVideos(); got != 3 {
		t.Fatalf("TotalVideos = %d, want 3", got)
	}
	if got := c.TotalSubtitles(); got != 1 {
		t.Fatalf("TotalSubtitles = %d, want 1", got)
	}
	if !(Course{}).Empty() {
		t.Fatal("zero course should be empty")
	}
}
