package download_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/domain/task"
	"github.com/minne100/ViduUI/internal/infrastructure/download"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/media/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("artifact bytes for " + r.URL.Path))
	})
	mux.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchCreations_MainAndCoverSlots(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	d := download.New(5*time.Second, zerolog.Nop())

	finished := &task.Task{
		ID:    "t-9",
		State: task.StatusSuccess,
		Creations: []task.Creation{
			{
				ID:       "c-1",
				URL:      server.URL + "/media/c-1.mp4?X-Signature=abc123",
				CoverURL: server.URL + "/media/c-1.jpg?X-Signature=def456",
			},
		},
	}

	files, err := d.FetchCreations(context.Background(), finished, dir, "")
	if err != nil {
		t.Fatalf("FetchCreations() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("FetchCreations() returned %d slots, want 2", len(files))
	}

	mainPath, ok := files["main_0"]
	if !ok {
		t.Fatal("missing main_0 slot")
	}
	if filepath.Base(mainPath) != "t-9_c-1.mp4" {
		t.Errorf("main file = %q, want t-9_c-1.mp4 (prefix defaults to task ID, query stripped)", filepath.Base(mainPath))
	}

	coverPath, ok := files["cover_0"]
	if !ok {
		t.Fatal("missing cover_0 slot")
	}
	if filepath.Base(coverPath) != "t-9_c-1_cover.jpg" {
		t.Errorf("cover file = %q, want t-9_c-1_cover.jpg", filepath.Base(coverPath))
	}

	for slot, p := range files {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Errorf("slot %s not written: %v", slot, err)
			continue
		}
		if !strings.HasPrefix(string(data), "artifact bytes") {
			t.Errorf("slot %s content = %q, want the served bytes", slot, data)
		}
	}
}

func TestFetchCreations_PartialFailureKeepsSiblings(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	d := download.New(5*time.Second, zerolog.Nop())

	finished := &task.Task{
		ID:    "t-9",
		State: task.StatusSuccess,
		Creations: []task.Creation{
			{ID: "c-1", URL: server.URL + "/broken/c-1.mp4"},
			{ID: "c-2", URL: server.URL + "/media/c-2.mp4", CoverURL: server.URL + "/media/c-2.jpg"},
		},
	}

	files, err := d.FetchCreations(context.Background(), finished, dir, "run")
	if err == nil {
		t.Fatal("FetchCreations() error = nil, want the failed slot reported")
	}
	if !strings.Contains(err.Error(), "main_0") {
		t.Errorf("error %q does not name the failed slot main_0", err)
	}

	if _, ok := files["main_0"]; ok {
		t.Error("failed slot main_0 present in the result map")
	}
	if p, ok := files["main_1"]; !ok {
		t.Error("sibling slot main_1 missing: batch aborted on first failure")
	} else if filepath.Base(p) != "run_c-2.mp4" {
		t.Errorf("main_1 file = %q, want run_c-2.mp4 (caller prefix used)", filepath.Base(p))
	}
	if _, ok := files["cover_1"]; !ok {
		t.Error("sibling slot cover_1 missing")
	}
}

func TestFetchCreations_RequiresFinishedTask(t *testing.T) {
	d := download.New(time.Second, zerolog.Nop())

	tests := []struct {
		name string
		tk   *task.Task
	}{
		{"still processing", &task.Task{ID: "t", State: task.StatusProcessing}},
		{"failed remotely", &task.Task{ID: "t", State: task.StatusFailed, ErrCode: "500002"}},
		{"succeeded without output", &task.Task{ID: "t", State: task.StatusSuccess}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.FetchCreations(context.Background(), tt.tk, t.TempDir(), "")
			if !errors.Is(err, download.ErrNoCreations) {
				t.Errorf("FetchCreations() error = %v, want ErrNoCreations", err)
			}
		})
	}
}

func TestFetchFile_DefaultExtensionAndDirectories(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	d := download.New(5*time.Second, zerolog.Nop())

	finished := &task.Task{
		ID:    "t-2",
		State: task.StatusSuccess,
		Creations: []task.Creation{
			{ID: "c-1", URL: server.URL + "/media/stream"},
		},
	}

	nested := filepath.Join(dir, "a", "b")
	files, err := d.FetchCreations(context.Background(), finished, nested, "")
	if err != nil {
		t.Fatalf("FetchCreations() error = %v", err)
	}
	p := files["main_0"]
	if filepath.Ext(p) != ".mp4" {
		t.Errorf("extensionless URL saved as %q, want .mp4 default", filepath.Base(p))
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("nested destination not created: %v", err)
	}
}

func TestFetchFile_StatusErrors(t *testing.T) {
	server := newTestServer(t)
	d := download.New(5*time.Second, zerolog.Nop())

	err := d.FetchFile(context.Background(), server.URL+"/broken/x.mp4", filepath.Join(t.TempDir(), "x.mp4"))
	if err == nil {
		t.Fatal("FetchFile() error = nil, want status failure")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q does not carry the HTTP status", err)
	}
}
