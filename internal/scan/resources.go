package scan

import (
	"io/fs"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/ShitalDhakal/VibePlayer/internal/model"
	"github.com/ShitalDhakal/VibePlayer/internal/natsort"
)

// collectResources picks the supplementary files out of one directory's
// listing: everything that is not a video, not a subtitle, not hidden and
// not a generated file. rel is the directory's course-relative path with
// forward slashes ("." for the root); resource paths are made relative to
// the course root. Output is sorted naturally by filename. Not recursive.
func collectResources(entries []fs.DirEntry, rel string) []model.Resource {
	var resources []model.Resource
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if Classify(name) != KindResource {
			continue
		}
		r := model.Resource{Name: name, Path: joinSlash(rel, name)}
		if info, err := e.Info(); err == nil {
			r.Size = humanize.Bytes(uint64(info.Size()))
		}
		resources = append(resources, r)
	}
	sort.Slice(resources, func(i, j int) bool {
		return natsort.Less(resources[i].Name, resources[j].Name)
	})
	return resources
}

// joinSlash joins course-relative path segments with forward slashes,
// treating "" and "." as the root.
func joinSlash(rel, name string) string {
	if rel == "" || rel == "." {
		return name
	}
	return rel + "/" + name
}
