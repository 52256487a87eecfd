package http

import (
	nethttp "net/http"
	"os"
	stdpath "path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ShitalDhakal/VibePlayer/internal/subtitle"
)

// handleFile serves any path under the course root: videos (with range
// support, via ServeFile), resources, and subtitles — .srt files are
// transformed to WebVTT on the way out because that is the only subtitle
// format browsers play.
func (s *server) handleFile(w nethttp.ResponseWriter, r *nethttp.Request) {
	rel := strings.TrimPrefix(stdpath.Clean(r.URL.Path), "/")
	if rel == "" || rel == "." {
		httpError(w, nethttp.StatusNotFound, "not found")
		return
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if !isSubpath(s.root, full) {
		httpError(w, nethttp.StatusNotFound, "not found")
		return
	}
	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		httpError(w, nethttp.StatusNotFound, "not found")
		return
	}

	if hasSuffixFold(rel, ".srt") {
		s.serveSRT(w, full)
		return
	}
	w.Header().Set("Accept-Ranges", "bytes")
	nethttp.ServeFile(w, r, full)
}

func (s *server) serveSRT(w nethttp.ResponseWriter, full string) {
	vtt, err := subtitle.FileToVTT(full)
	if err != nil {
		s.log.Warn().Err(err).Str("path", full).Msg("subtitle transform failed")
		httpError(w, nethttp.StatusInternalServerError, "subtitle conversion failed")
		return
	}
	w.Header().Set("Content-Type", "text/vtt; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(vtt)))
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(vtt)
}

// isSubpath ensures child is within root, preventing path traversal.
func isSubpath(root, child string) bool {
	absRoot, _ := filepath.Abs(root)
	absChild, _ := filepath.Abs(child)
	rel, err := filepath.Rel(absRoot, absChild)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// normalizeKey converts a client-supplied video key to the canonical
// forward-slash form used by the scanner and the store.
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "\\", "/")
}
