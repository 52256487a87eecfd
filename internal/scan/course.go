package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ShitalDhakal/VibePlayer/internal/model"
	"github.com/ShitalDhakal/VibePlayer/internal/natsort"
)

// GeneralSection is the identifier of the synthesized section holding
// videos that sit directly in the course root. The numeric prefix makes
// it sort before any real section name.
const GeneralSection = "00-General"

// contextMarker anchors contextual display names: the first path
// component starting with this token (case-insensitive) begins the
// folder context shown before a video's stem.
const contextMarker = "module"

// BuildCourse scans root once and returns the full course model:
// a "General" section for root-level videos plus one section per
// immediate subdirectory that contains at least one video anywhere
// below it, all naturally ordered. An empty course is valid output;
// the caller decides whether that is worth serving.
func BuildCourse(root string, log zerolog.Logger) (model.Course, error) {
	course := model.Course{Name: filepath.Base(mustAbs(root))}

	entries, err := os.ReadDir(root)
	if err != nil {
		return course, fmt.Errorf("read course root: %w", err)
	}

	var rootVideos []model.Video
	rootResources := collectResources(entries, ".")
	for _, e := range entries {
		if e.IsDir() || Classify(e.Name()) != KindVideo {
			continue
		}
		name := e.Name()
		rootVideos = append(rootVideos, model.Video{
			Name:      stem(name),
			Path:      name,
			Subtitle:  FindSubtitle(root, stem(name)),
			Resources: rootResources,
		})
	}
	if len(rootVideos) > 0 {
		sort.Slice(rootVideos, func(i, j int) bool {
			return natsort.Less(rootVideos[i].Path, rootVideos[j].Path)
		})
		course.Sections = append(course.Sections, model.Section{
			ID:     GeneralSection,
			Path:   ".",
			Videos: rootVideos,
		})
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sec := BuildSection(root, e.Name(), log)
		if len(sec.Videos) > 0 {
			course.Sections = append(course.Sections, sec)
		}
	}

	sort.Slice(course.Sections, func(i, j int) bool {
		return natsort.Less(course.Sections[i].ID, course.Sections[j].ID)
	})
	return course, nil
}

// BuildSection walks one top-level section directory and every directory
// below it, collecting videos with contextual names, subtitles and
// sibling resources. The walk is an explicit queue rather than recursion
// so depth is bounded by the heap. Unreadable directories are logged and
// skipped; they never abort the walk. The returned section may be empty,
// in which case the caller drops it.
func BuildSection(root, name string, log zerolog.Logger) model.Section {
	sec := model.Section{ID: name, Path: name}

	// Queue of course-relative directory paths, forward slashes.
	pending := []string{name}
	for len(pending) > 0 {
		rel := pending[0]
		pending = pending[1:]

		dir := filepath.Join(root, filepath.FromSlash(rel))
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", rel).Msg("skipping unreadable directory")
			continue
		}

		var videos []string
		for _, e := range entries {
			if e.IsDir() {
				pending = append(pending, rel+"/"+e.Name())
				continue
			}
			if Classify(e.Name()) == KindVideo {
				videos = append(videos, e.Name())
			}
		}
		if len(videos) == 0 {
			continue
		}

		resources := collectResources(entries, rel)
		for _, v := range videos {
			video := model.Video{
				Name:      displayName(sectionRel(rel, name), stem(v)),
				Path:      rel + "/" + v,
				Resources: resources,
			}
			if sub := FindSubtitle(dir, stem(v)); sub != "" {
				video.Subtitle = rel + "/" + sub
			}
			sec.Videos = append(sec.Videos, video)
		}
	}

	// Order by the full course-relative path, not the display name, so
	// videos in Module 1 come before Module 2 regardless of how the
	// directories were visited.
	sort.Slice(sec.Videos, func(i, j int) bool {
		return natsort.Less(sec.Videos[i].Path, sec.Videos[j].Path)
	})
	return sec
}

// sectionRel strips the section name off a course-relative directory
// path, yielding the path relative to the section root ("." at the root
// itself).
func sectionRel(rel, section string) string {
	if rel == section {
		return "."
	}
	return strings.TrimPrefix(rel, section+"/")
}

// displayName builds the contextual title of a video from its
// section-relative directory and filename stem. Directly inside the
// section root the stem stands alone. Deeper down, the folder chain is
// joined with " - " — starting at the first component whose name begins
// with "module" (any case) when one exists, so deeply nested layouts
// still read as "Module 2 - Topic - Lesson".
func displayName(sectionRel, stem string) string {
	if sectionRel == "." {
		return stem
	}
	parts := strings.Split(sectionRel, "/")
	start := 0
	for i, p := range parts {
		if len(p) >= len(contextMarker) && strings.EqualFold(p[:len(contextMarker)], contextMarker) {
			start = i
			break
		}
	}
	return strings.Join(parts[start:], " - ") + " - " + stem
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
