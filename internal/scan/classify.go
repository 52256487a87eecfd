// Package scan turns a directory tree of video files into the ordered
// course model served by the player.
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind is the classification of one directory entry.
type Kind int

const (
	KindVideo Kind = iota
	KindSubtitle
	KindResource
	KindIgnored
)

var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
}

// Subtitle extensions in sibling-lookup priority order.
var subtitleExts = []string{".srt", ".vtt"}

// reservedNames are files the player itself generates or reads; they are
// never offered as course resources.
var reservedNames = map[string]bool{
	"index.html":       true,
	"progress.json":    true,
	"course_player.py": true,
}

// Classify decides what role a filename plays in a course directory.
// Extension checks win over the hidden-file check, so a dotfile with a
// video extension still counts as a video.
func Classify(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if videoExts[ext] {
		return KindVideo
	}
	for _, s := range subtitleExts {
		if ext == s {
			return KindSubtitle
		}
	}
	if strings.HasPrefix(name, ".") || reservedNames[name] {
		return KindIgnored
	}
	return KindResource
}

// FindSubtitle probes dir for a sibling subtitle of a video, trying each
// recognized extension in priority order against the video's stem.
// It returns the bare subtitle filename, or "" when none exists.
// Absence is the normal case, not an error.
func FindSubtitle(dir, stem string) string {
	for _, ext := range subtitleExts {
		name := stem + ext
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	return ""
}
