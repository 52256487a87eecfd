package http

import (
	"encoding/json"
	nethttp "net/http"
)

// markRequest is the body of the watched-state mutation endpoints.
type markRequest struct {
	Path string `json:"path"`
}

func (s *server) handleAPI(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/api/mark_watched", "/api/toggle_watched", "/api/reset_progress":
	default:
		httpError(w, nethttp.StatusNotFound, "unknown API endpoint")
		return
	}
	if r.Method != nethttp.MethodPost {
		w.Header().Set("Allow", nethttp.MethodPost)
		httpError(w, nethttp.StatusMethodNotAllowed, "POST required")
		return
	}

	switch r.URL.Path {
	case "/api/mark_watched":
		s.handleMarkWatched(w, r)
	case "/api/toggle_watched":
		s.handleToggleWatched(w, r)
	case "/api/reset_progress":
		s.handleResetProgress(w, r)
	}
}

func (s *server) handleMarkWatched(w nethttp.ResponseWriter, r *nethttp.Request) {
	path, ok := s.decodePath(w, r)
	if !ok {
		return
	}
	if err := s.store.Add(path); err != nil {
		s.persistError(w, err, "mark watched")
		return
	}
	s.log.Debug().Str("path", path).Msg("marked watched")
	writeJSON(w, nethttp.StatusOK, map[string]any{"success": true, "path": path})
}

func (s *server) handleToggleWatched(w nethttp.ResponseWriter, r *nethttp.Request) {
	path, ok := s.decodePath(w, r)
	if !ok {
		return
	}
	watched, err := s.store.Toggle(path)
	if err != nil {
		s.persistError(w, err, "toggle watched")
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"success": true, "watched": watched, "path": path})
}

func (s *server) handleResetProgress(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := s.store.Reset(); err != nil {
		s.persistError(w, err, "reset progress")
		return
	}
	s.log.Info().Msg("progress reset")
	writeJSON(w, nethttp.StatusOK, map[string]any{"success": true})
}

// decodePath reads the request body and extracts the video key.
// It writes a 400 and returns ok=false on a malformed body or a missing
// path; no state changes in either case.
func (s *server) decodePath(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, nethttp.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	if req.Path == "" {
		httpError(w, nethttp.StatusBadRequest, "missing 'path' parameter")
		return "", false
	}
	// Keys are stored with forward slashes no matter what the client sent.
	return normalizeKey(req.Path), true
}

// persistError reports a failed store write to the client instead of
// claiming success over state that never hit the disk.
func (s *server) persistError(w nethttp.ResponseWriter, err error, op string) {
	s.log.Error().Err(err).Msg(op)
	writeJSON(w, nethttp.StatusInternalServerError, map[string]any{"success": false})
}

func writeJSON(w nethttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
