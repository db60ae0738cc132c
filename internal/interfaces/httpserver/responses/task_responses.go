package responses

import (
	"github.com/minne100/ViduUI/internal/domain/generation"
	"github.com/minne100/ViduUI/internal/domain/task"
)

// CreationResponse is one generated artifact.
type CreationResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url,omitempty"`
}

// TaskResponse mirrors the remote task state.
type TaskResponse struct {
	ID        string             `json:"id"`
	State     string             `json:"state"`
	ErrCode   string             `json:"err_code,omitempty"`
	Credits   int                `json:"credits,omitempty"`
	Payload   string             `json:"payload,omitempty"`
	Creations []CreationResponse `json:"creations"`
}

// FromTask maps the domain task to its DTO.
func FromTask(t *task.Task) TaskResponse {
	creations := make([]CreationResponse, len(t.Creations))
	for i, c := range t.Creations {
		creations[i] = CreationResponse{
			ID:       c.ID,
			URL:      c.URL,
			CoverURL: c.CoverURL,
		}
	}
	return TaskResponse{
		ID:        t.ID,
		State:     string(t.State),
		ErrCode:   t.ErrCode,
		Credits:   t.Credits,
		Payload:   t.Payload,
		Creations: creations,
	}
}

// SubmitResponse acknowledges an accepted generation job.
type SubmitResponse struct {
	TaskID  string `json:"task_id"`
	State   string `json:"state"`
	Credits int    `json:"credits,omitempty"`
}

// NewSubmitResponse maps a freshly created task to its DTO.
func NewSubmitResponse(t *task.Task) SubmitResponse {
	return SubmitResponse{
		TaskID:  t.ID,
		State:   string(t.State),
		Credits: t.Credits,
	}
}

// CancelResponse acknowledges a cancel request.
type CancelResponse struct {
	TaskID    string `json:"task_id"`
	Cancelled bool   `json:"cancelled"`
}

// DownloadResponse lists the saved artifact files per slot. Files maps
// slots to local paths, URLs maps the same slots to served URLs.
type DownloadResponse struct {
	TaskID string            `json:"task_id"`
	Files  map[string]string `json:"files"`
	URLs   map[string]string `json:"urls"`
	Errors []string          `json:"errors,omitempty"`
}

// UploadResponse points at a stored browser upload.
type UploadResponse struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Bytes int64  `json:"bytes"`
}

// ModelCatalogResponse maps job types to their per-model options so
// the UI can populate its dropdowns.
type ModelCatalogResponse map[string]map[string]ModelOptions

// ModelOptions enumerates legal durations and per-duration resolutions.
type ModelOptions struct {
	Durations   []int            `json:"durations"`
	Resolutions map[int][]string `json:"resolutions"`
}

// NewModelCatalog assembles the catalog from the domain tables.
func NewModelCatalog() ModelCatalogResponse {
	tables := map[string]map[generation.Model][]int{
		"img2video":       generation.ImageToVideoDurations,
		"reference2video": generation.ReferenceToVideoDurations,
		"start-end2video": generation.StartEndToVideoDurations,
		"text2video":      generation.TextToVideoDurations,
	}

	catalog := make(ModelCatalogResponse, len(tables))
	for jobType, durations := range tables {
		models := make(map[string]ModelOptions, len(durations))
		for model, allowed := range durations {
			resolutions := make(map[int][]string, len(allowed))
			for _, duration := range allowed {
				choices := generation.ResolutionsFor(model, duration)
				names := make([]string, len(choices))
				for i, r := range choices {
					names[i] = string(r)
				}
				resolutions[duration] = names
			}
			models[string(model)] = ModelOptions{
				Durations:   allowed,
				Resolutions: resolutions,
			}
		}
		catalog[jobType] = models
	}
	return catalog
}
