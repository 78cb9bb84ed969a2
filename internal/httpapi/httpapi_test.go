package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/porkbrain/harriet-vision/internal/queue"
)

func newTestServer(t *testing.T, q *queue.Queue) (*Server, string, string) {
	t.Helper()
	base := t.TempDir()
	inputDir := filepath.Join(base, "input")
	outputDir := filepath.Join(base, "output")
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("mkdir input: %v", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatalf("mkdir output: %v", err)
	}
	return New(inputDir, outputDir, q, zerolog.Nop()), inputDir, outputDir
}

func doRequest(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/highlights/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHandleHighlightsRejectsNonAlphanumericName(t *testing.T) {
	q := queue.New(4)
	s, _, _ := newTestServer(t, q)

	rec := doRequest(t, s, map[string]string{"name": "not valid!"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestHandleHighlightsRejectsMissingInputDir(t *testing.T) {
	q := queue.New(4)
	s, _, _ := newTestServer(t, q)

	rec := doRequest(t, s, map[string]string{"name": "nosuchdir"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleHighlightsRejectsExistingOutputDir(t *testing.T) {
	q := queue.New(4)
	s, inputDir, outputDir := newTestServer(t, q)

	if err := os.MkdirAll(filepath.Join(inputDir, "batch1"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(outputDir, "batch1"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	rec := doRequest(t, s, map[string]string{"name": "batch1"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestHandleHighlightsAcceptsAndEnqueuesRegularFiles(t *testing.T) {
	q := queue.New(4)
	s, inputDir, _ := newTestServer(t, q)

	dir := filepath.Join(inputDir, "batch2")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"a.png", "b.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	rec := doRequest(t, s, map[string]string{"name": "batch2"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusAccepted)
	}

	if got := len(q.Receive()); got != 2 {
		t.Fatalf("expected 2 enqueued paths, got %d", got)
	}
}

func TestHandleHighlightsReturnsServiceUnavailableWhenQueueFull(t *testing.T) {
	q := queue.New(1)
	s, inputDir, _ := newTestServer(t, q)

	dir := filepath.Join(inputDir, "batch3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"a.png", "b.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	rec := doRequest(t, s, map[string]string{"name": "batch3"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
