// Package http serves the course player: the generated page, the course
// tree itself, the on-the-fly subtitle transform and the progress API.
package http

import (
	"encoding/json"
	"html/template"
	"io"
	nethttp "net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ShitalDhakal/VibePlayer/internal/model"
	"github.com/ShitalDhakal/VibePlayer/internal/progress"
)

type server struct {
	root       string
	course     model.Course
	courseJSON template.JS
	store      *progress.Store
	tpl        *template.Template
	log        zerolog.Logger
}

// NewServer builds the handler for a scanned course rooted at dir.
// The course model is immutable for the life of the server; the watched
// set is re-read from the store on every page render.
func NewServer(root string, course model.Course, store *progress.Store, log zerolog.Logger) nethttp.Handler {
	courseJSON, err := json.Marshal(course)
	if err != nil {
		// Only reachable with a broken model type, not with scan output.
		panic(err)
	}
	s := &server{
		root:       root,
		course:     course,
		courseJSON: template.JS(courseJSON),
		store:      store,
		tpl:        template.Must(template.New("player").Parse(playerTpl)),
		log:        log,
	}
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/", s.handleAPI)
	return mux
}

func (s *server) handleRoot(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path == "/" {
		s.handlePage(w, r)
		return
	}
	s.handleFile(w, r)
}

func (s *server) handlePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	watchedJSON, err := json.Marshal(s.store.Keys())
	if err != nil {
		httpError(w, nethttp.StatusInternalServerError, "internal error")
		return
	}
	data := struct {
		CourseName  string
		CourseJSON  template.JS
		WatchedJSON template.JS
	}{
		CourseName:  s.course.Name,
		CourseJSON:  s.courseJSON,
		WatchedJSON: template.JS(watchedJSON),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("render player page")
	}
}

func (s *server) handleHealth(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = io.WriteString(w, `{"status":"ok"}`)
}

func httpError(w nethttp.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}

// hasSuffixFold reports whether s ends with suffix, ignoring case.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
