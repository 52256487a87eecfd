package model

import (
	"bytes"
	"encoding/json"
)

// Resource is a non-video file living next to videos in a course
// directory (slides, notes, exercise archives).
type Resource struct {
	Name string `json:"name"` // filename as shown
	Path string `json:"path"` // course-relative, forward slashes
	Size string `json:"size,omitempty"`
}

// Video is a single playable item.
type Video struct {
	Name      string     `json:"name"`               // contextual display name
	Path      string     `json:"path"`               // course-relative key, forward slashes, unique
	Subtitle  string     `json:"subtitle,omitempty"` // course-relative sidecar subtitle, if any
	Resources []Resource `json:"resources"`
}

// Section groups the videos of one top-level course directory
// (or the synthesized root-level group). Sections are never empty.
type Section struct {
	ID     string  `json:"-"`
	Path   string  `json:"path"` // course-relative directory, "." for root
	Videos []Video `json:"videos"`
}

// Course is the ordered set of sections of one scanned directory tree.
// Order is fixed at build time; the JSON form is an object whose keys
// appear in that order, which is what the player page indexes into.
type Course struct {
	Name     string
	Sections []Section
}

// Empty reports whether the scan found no videos at all.
func (c Course) Empty() bool {
	return len(c.Sections) == 0
}

// TotalVideos counts videos across all sections.
func (c Course) TotalVideos() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Videos)
	}
	return n
}

// TotalSubtitles counts videos with a matched subtitle.
func (c Course) TotalSubtitles() int {
	n := 0
	for _, s := range c.Sections {
		for _, v := range s.Videos {
			if v.Subtitle != "" {
				n++
			}
		}
	}
	return n
}

// MarshalJSON emits sections as a JSON object keyed by section ID,
// preserving section order. A map would re-sort keys lexicographically,
// which breaks natural section ordering like "Section 2" before
// "Section 10".
func (c Course) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range c.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
