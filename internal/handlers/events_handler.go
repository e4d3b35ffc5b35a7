// internal/handlers/events_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"adproof/internal/preview"
)

type EventsHandler struct {
	studio *preview.Studio
}

func NewEventsHandler(studio *preview.Studio) *EventsHandler {
	return &EventsHandler{studio: studio}
}

// Stream pushes state-change events over SSE so mirror views can refetch
// previews as the editor works. A snapshot event is sent immediately so
// clients know the current version without a separate request.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "streaming_unsupported", "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := h.studio.Subscribe()
	defer cancel()

	writeEvent(w, preview.Event{Version: h.studio.Version(), Change: "connected"})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-events:
			if !open {
				return
			}
			writeEvent(w, ev)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, ev preview.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: change\ndata: %s\n\n", data)
}
