package uploads_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
	"github.com/minne100/ViduUI/internal/infrastructure/uploads"
)

var pngData = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x01}, 64)...)

func newTestStore(t *testing.T, maxFileSize, budget int64) *uploads.Store {
	t.Helper()
	store, err := uploads.NewStore(&config.Config{
		UploadDir:     t.TempDir(),
		MaxFileSize:   maxFileSize,
		UploadsBudget: budget,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestSave_GeneratesTypedNames(t *testing.T) {
	store := newTestStore(t, 1<<20, 1<<30)

	name, size, err := store.Save("image", "photo.png", bytes.NewReader(pngData))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(name, "image_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("name = %q, want image_<uuid>.png", name)
	}
	if size != int64(len(pngData)) {
		t.Errorf("size = %d, want %d", size, len(pngData))
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if !bytes.Equal(data, pngData) {
		t.Error("stored bytes differ from upload")
	}
}

func TestSave_Rejections(t *testing.T) {
	store := newTestStore(t, 32, 1<<30)

	tests := []struct {
		name     string
		fileType string
		filename string
		data     []byte
		wantErr  string
	}{
		{
			name:     "unknown type",
			fileType: "document",
			filename: "notes.pdf",
			data:     []byte("x"),
			wantErr:  "unknown upload type",
		},
		{
			name:     "bad extension",
			fileType: "video",
			filename: "clip.mkv",
			data:     []byte("x"),
			wantErr:  "unsupported video extension",
		},
		{
			name:     "empty file",
			fileType: "image",
			filename: "photo.png",
			data:     nil,
			wantErr:  "file is empty",
		},
		{
			name:     "oversize",
			fileType: "image",
			filename: "photo.png",
			data:     bytes.Repeat([]byte{0x01}, 64),
			wantErr:  "exceeds max size",
		},
		{
			name:     "spoofed content",
			fileType: "video",
			filename: "clip.mp4",
			data:     pngData[:32],
			wantErr:  "file content is image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := store.Save(tt.fileType, tt.filename, bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestSave_AcceptsAudio(t *testing.T) {
	store := newTestStore(t, 1<<20, 1<<30)

	mp3Data := append([]byte("ID3"), bytes.Repeat([]byte{0x00}, 61)...)
	name, _, err := store.Save("audio", "voice.mp3", bytes.NewReader(mp3Data))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(name, "audio_") || !strings.HasSuffix(name, ".mp3") {
		t.Errorf("name = %q, want audio_<uuid>.mp3", name)
	}
}

func TestPrune_RemovesOldestFirst(t *testing.T) {
	store := newTestStore(t, 1<<20, 150)

	write := func(name string, age time.Duration) {
		t.Helper()
		path := filepath.Join(store.Dir(), name)
		if err := os.WriteFile(path, bytes.Repeat([]byte{0x01}, 100), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		stamp := time.Now().Add(-age)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}

	write("image_old.png", 2*time.Hour)
	write("image_new.png", time.Minute)

	store.Prune()

	if _, err := os.Stat(filepath.Join(store.Dir(), "image_old.png")); !os.IsNotExist(err) {
		t.Error("oldest file should have been pruned")
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "image_new.png")); err != nil {
		t.Errorf("newest file should survive: %v", err)
	}
}

func TestPrune_KeepsDirectoryUnderBudget(t *testing.T) {
	budget := int64(2 * len(pngData))
	store := newTestStore(t, 1<<20, budget)

	for i := 0; i < 5; i++ {
		if _, _, err := store.Save("image", "photo.png", bytes.NewReader(pngData)); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var total int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			t.Fatalf("Info: %v", err)
		}
		total += info.Size()
	}
	if total > budget {
		t.Errorf("directory holds %d bytes, budget is %d", total, budget)
	}
	if len(entries) > 2 {
		t.Errorf("directory holds %d files, want at most 2", len(entries))
	}
}
