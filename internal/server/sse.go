package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/brand-styleguide/internal/pipeline"
)

// Stream event names
const (
	EventStep     = "step"
	EventComplete = "complete"
	EventError    = "error"
)

// SSEWriter streams generation progress as server-sent events. Each event
// carries an increasing id so clients can tell a dropped step from a slow one.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	seq     int
}

// NewSSEWriter sets the event-stream headers. It fails when w cannot flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends one named event with a JSON payload
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.seq++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.seq, event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Progress forwards one pipeline step
func (s *SSEWriter) Progress(ev pipeline.ProgressEvent) error {
	return s.WriteEvent(EventStep, ev)
}

// Complete sends the finished styleguide
func (s *SSEWriter) Complete(resp StyleguideResponse) error {
	return s.WriteEvent(EventComplete, resp)
}

// WriteError sends a terminal error event with the status a plain request would have returned
func (s *SSEWriter) WriteError(status int, message string) {
	_ = s.WriteEvent(EventError, map[string]any{"status": status, "error": message})
}
