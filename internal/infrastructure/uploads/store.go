// Package uploads persists browser supplied files so the remote API
// can fetch them by URL.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
)

// Extensions accepted per upload type.
var allowedExts = map[string]map[string]bool{
	"video": {".mp4": true, ".mov": true, ".avi": true, ".wmv": true},
	"audio": {".mp3": true, ".wav": true, ".m4a": true, ".aac": true, ".ogg": true, ".wma": true},
	"image": {".png": true, ".jpg": true, ".jpeg": true, ".webp": true},
}

// Store writes uploads to a local directory under generated names and
// keeps the directory under a configured byte cap.
type Store struct {
	dir         string
	maxFileSize int64
	budget      int64
	log         zerolog.Logger

	mu sync.Mutex
}

// NewStore creates the upload directory and returns a store bound to it.
func NewStore(cfg *config.Config, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{
		dir:         cfg.UploadDir,
		maxFileSize: cfg.MaxFileSize,
		budget:      cfg.UploadsBudget,
		log:         log.With().Str("component", "upload-store").Logger(),
	}, nil
}

// Dir returns the directory uploads are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and stores one upload, returning the generated file
// name. fileType must be one of video, audio or image.
func (s *Store) Save(fileType, filename string, r io.Reader) (string, int64, error) {
	exts, ok := allowedExts[fileType]
	if !ok {
		return "", 0, fmt.Errorf("unknown upload type %q", fileType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !exts[ext] {
		return "", 0, fmt.Errorf("unsupported %s extension %q", fileType, ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxFileSize+1))
	if err != nil {
		return "", 0, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", 0, errors.New("file is empty")
	}
	if int64(len(data)) > s.maxFileSize {
		return "", 0, fmt.Errorf("file exceeds max size of %d bytes", s.maxFileSize)
	}

	if detected := kindOf(mimetype.Detect(data)); detected != "" && detected != fileType {
		return "", 0, fmt.Errorf("file content is %s, expected %s", detected, fileType)
	}

	name := fmt.Sprintf("%s_%s%s", fileType, uuid.NewString(), ext)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", 0, fmt.Errorf("write upload: %w", err)
	}

	s.log.Info().
		Str("name", name).
		Str("type", fileType).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("Upload stored")

	s.pruneLocked()

	return name, int64(len(data)), nil
}

// Prune removes oldest uploads until the directory fits its budget.
func (s *Store) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
}

func (s *Store) pruneLocked() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to scan upload directory")
		return
	}

	type fileInfo struct {
		name    string
		size    int64
		modTime int64
	}

	var total int64
	files := make([]fileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		total += info.Size()
		files = append(files, fileInfo{
			name:    entry.Name(),
			size:    info.Size(),
			modTime: info.ModTime().UnixNano(),
		})
	}

	if total <= s.budget {
		return
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime < files[j].modTime
	})

	for _, f := range files {
		if total <= s.budget {
			break
		}
		if err := os.Remove(filepath.Join(s.dir, f.name)); err != nil {
			s.log.Error().Err(err).Str("name", f.name).Msg("Failed to prune upload")
			continue
		}
		total -= f.size
		s.log.Info().
			Str("name", f.name).
			Str("size", humanize.Bytes(uint64(f.size))).
			Msg("Pruned old upload")
	}
}

// kindOf maps a sniffed MIME type to an upload type. ASF and Ogg
// containers carry both audio and video, so they stay unclassified.
func kindOf(m *mimetype.MIME) string {
	mime := m.String()
	switch {
	case mime == "video/x-ms-asf" || mime == "application/ogg":
		return ""
	case strings.HasPrefix(mime, "image/"):
		return "image"
	case strings.HasPrefix(mime, "video/"):
		return "video"
	case strings.HasPrefix(mime, "audio/"):
		return "audio"
	}
	return ""
}
