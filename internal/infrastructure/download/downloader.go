// Package download fetches finished task artifacts to the local
// filesystem. Batch downloads tolerate per-file failures: a slot that
// fails is reported in the returned error while its siblings are still
// attempted.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/domain/task"
)

// Artifact URLs are pre-signed and short-lived, so downloads never
// retry; a fresh task query yields fresh URLs.

// ErrNoCreations is returned when a task has no downloadable output,
// either because it has not succeeded or because it produced nothing.
var ErrNoCreations = errors.New("task has no creations to download")

// Downloader streams remote artifacts to disk.
type Downloader struct {
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a Downloader with the given per-request timeout.
func New(timeout time.Duration, log zerolog.Logger) *Downloader {
	return &Downloader{
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "downloader").Logger(),
	}
}

// FetchFile streams one artifact to destPath, creating parent
// directories as needed. The destination is written directly; callers
// own cleanup of partial files on error.
func (d *Downloader) FetchFile(ctx context.Context, rawURL, destPath string) error {
	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}

	d.log.Info().
		Str("path", destPath).
		Str("size", humanize.Bytes(uint64(written))).
		Msg("artifact saved")
	return nil
}

// FetchCreations downloads every creation of a finished task into
// destDir. Output names are deterministic: {prefix}_{creationID}{ext}
// for the artifact and {prefix}_{creationID}_cover{ext} for its cover,
// with the extension taken from the URL path (query string ignored)
// and defaulting to .mp4 and .jpg respectively. The prefix defaults to
// the task ID.
//
// The returned map assigns each succeeding slot (main_N / cover_N,
// N being the creation index) its local path. Per-slot failures are
// joined into the returned error; both return values are meaningful.
func (d *Downloader) FetchCreations(ctx context.Context, t *task.Task, destDir, prefix string) (map[string]string, error) {
	if !t.Succeeded() || len(t.Creations) == 0 {
		return nil, ErrNoCreations
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", destDir, err)
	}
	if prefix == "" {
		prefix = t.ID
	}

	files := make(map[string]string)
	var errs []error

	for i, creation := range t.Creations {
		creationID := creation.ID
		if creationID == "" {
			creationID = fmt.Sprintf("creation_%d", i)
		}

		if creation.URL != "" {
			slot := fmt.Sprintf("main_%d", i)
			name := fmt.Sprintf("%s_%s%s", prefix, creationID, extensionOf(creation.URL, ".mp4"))
			dest := filepath.Join(destDir, name)
			if err := d.FetchFile(ctx, creation.URL, dest); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", slot, err))
			} else {
				files[slot] = dest
			}
		}

		if creation.CoverURL != "" {
			slot := fmt.Sprintf("cover_%d", i)
			name := fmt.Sprintf("%s_%s_cover%s", prefix, creationID, extensionOf(creation.CoverURL, ".jpg"))
			dest := filepath.Join(destDir, name)
			if err := d.FetchFile(ctx, creation.CoverURL, dest); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", slot, err))
			} else {
				files[slot] = dest
			}
		}
	}

	return files, errors.Join(errs...)
}

// extensionOf infers a file extension from the URL path, ignoring the
// query string pre-signed URLs carry. def applies when the path has no
// extension.
func extensionOf(rawURL, def string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return def
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return def
}
