package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adproof/internal/assets"
	"adproof/internal/preview"
)

func TestEventStreamDeliversChanges(t *testing.T) {
	studio := preview.NewStudio(assets.NewLibrary())
	h := NewEventsHandler(studio)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/studio/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Stream(w, req)
		close(done)
	}()

	// Give the handler time to subscribe before mutating, then let the
	// event drain before tearing the stream down.
	time.Sleep(20 * time.Millisecond)
	studio.SetScale(1.2)
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop on context cancel")
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "event: change") {
		t.Fatalf("no change events in stream: %q", body)
	}
	if !strings.Contains(body, `"change":"connected"`) {
		t.Fatalf("missing connected handshake: %q", body)
	}
	if !strings.Contains(body, `"change":"scale"`) {
		t.Fatalf("mutation never reached the stream: %q", body)
	}
}

func TestEventStreamStopsWhenClientLeaves(t *testing.T) {
	studio := preview.NewStudio(assets.NewLibrary())
	h := NewEventsHandler(studio)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/studio/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.Stream(w, req)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop on context cancel")
	}
}
