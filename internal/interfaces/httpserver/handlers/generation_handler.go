package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
	"github.com/minne100/ViduUI/internal/domain/generation"
	"github.com/minne100/ViduUI/internal/domain/task"
	"github.com/minne100/ViduUI/internal/infrastructure/metrics"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver/requests"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver/responses"
)

// Client covers the remote generation operations used by the handler.
type Client interface {
	SubmitImageToVideo(ctx context.Context, p generation.ImageToVideoParams) (*task.Task, error)
	SubmitReferenceToVideo(ctx context.Context, p generation.ReferenceToVideoParams) (*task.Task, error)
	SubmitStartEndToVideo(ctx context.Context, p generation.StartEndToVideoParams) (*task.Task, error)
	SubmitTextToVideo(ctx context.Context, p generation.TextToVideoParams) (*task.Task, error)
	SubmitUpscale(ctx context.Context, p generation.UpscaleParams) (*task.Task, error)
	SubmitLipSync(ctx context.Context, p generation.LipSyncParams) (*task.Task, error)
	SubmitTextToAudio(ctx context.Context, p generation.TextToAudioParams) (*task.Task, error)
	SubmitTimingToAudio(ctx context.Context, p generation.TimingToAudioParams) (*task.Task, error)
	QueryTask(ctx context.Context, taskID string) (*task.Task, error)
	CancelTask(ctx context.Context, taskID string) error
	WaitForCompletion(ctx context.Context, taskID string, interval, timeout time.Duration) (*task.Task, error)
}

// Fetcher saves finished creations to local disk.
type Fetcher interface {
	FetchCreations(ctx context.Context, t *task.Task, destDir, prefix string) (map[string]string, error)
}

// GenerationHandler exposes the generation endpoints.
type GenerationHandler struct {
	cfg     *config.Config
	client  Client
	fetcher Fetcher
	log     zerolog.Logger
}

// NewGenerationHandler constructs the handler.
func NewGenerationHandler(cfg *config.Config, client Client, fetcher Fetcher, log zerolog.Logger) *GenerationHandler {
	return &GenerationHandler{
		cfg:     cfg,
		client:  client,
		fetcher: fetcher,
		log:     log.With().Str("handler", "generation").Logger(),
	}
}

// ImageToVideo godoc
// @Summary      Submit an image-to-video job
// @Description  Animates a single source image into a video clip.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ImageToVideoRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/image [post]
func (h *GenerationHandler) ImageToVideo(c *gin.Context) {
	var req requests.ImageToVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitImageToVideo(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "img2video").Msg("submit failed")
		metrics.RecordSubmission("img2video", "error")
		responses.HandleError(c, err, "failed to submit image-to-video job")
		return
	}

	metrics.RecordSubmission("img2video", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// ReferenceToVideo godoc
// @Summary      Submit a reference-to-video job
// @Description  Generates a video from up to seven reference images and a prompt.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.ReferenceToVideoRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/reference [post]
func (h *GenerationHandler) ReferenceToVideo(c *gin.Context) {
	var req requests.ReferenceToVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitReferenceToVideo(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "reference2video").Msg("submit failed")
		metrics.RecordSubmission("reference2video", "error")
		responses.HandleError(c, err, "failed to submit reference-to-video job")
		return
	}

	metrics.RecordSubmission("reference2video", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// StartEndToVideo godoc
// @Summary      Submit a start-end-to-video job
// @Description  Interpolates a video between a first frame and a last frame.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.StartEndToVideoRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/start-end [post]
func (h *GenerationHandler) StartEndToVideo(c *gin.Context) {
	var req requests.StartEndToVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitStartEndToVideo(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "start-end2video").Msg("submit failed")
		metrics.RecordSubmission("start-end2video", "error")
		responses.HandleError(c, err, "failed to submit start-end-to-video job")
		return
	}

	metrics.RecordSubmission("start-end2video", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// TextToVideo godoc
// @Summary      Submit a text-to-video job
// @Description  Generates a video from a text prompt.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TextToVideoRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/text [post]
func (h *GenerationHandler) TextToVideo(c *gin.Context) {
	var req requests.TextToVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitTextToVideo(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "text2video").Msg("submit failed")
		metrics.RecordSubmission("text2video", "error")
		responses.HandleError(c, err, "failed to submit text-to-video job")
		return
	}

	metrics.RecordSubmission("text2video", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// Upscale godoc
// @Summary      Submit an upscale job
// @Description  Upscales an earlier creation or an external video to a higher resolution.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.UpscaleRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/upscale [post]
func (h *GenerationHandler) Upscale(c *gin.Context) {
	var req requests.UpscaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitUpscale(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "upscale").Msg("submit failed")
		metrics.RecordSubmission("upscale", "error")
		responses.HandleError(c, err, "failed to submit upscale job")
		return
	}

	metrics.RecordSubmission("upscale", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// LipSync godoc
// @Summary      Submit a lip-sync job
// @Description  Syncs mouth movement in a video to an audio file or synthesized speech.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.LipSyncRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/videos/lip-sync [post]
func (h *GenerationHandler) LipSync(c *gin.Context) {
	var req requests.LipSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitLipSync(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "lip-sync").Msg("submit failed")
		metrics.RecordSubmission("lip-sync", "error")
		responses.HandleError(c, err, "failed to submit lip-sync job")
		return
	}

	metrics.RecordSubmission("lip-sync", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// TextToAudio godoc
// @Summary      Submit a text-to-audio job
// @Description  Generates a sound clip from a text prompt.
// @Tags         audios
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TextToAudioRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/audios/text [post]
func (h *GenerationHandler) TextToAudio(c *gin.Context) {
	var req requests.TextToAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitTextToAudio(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "text2audio").Msg("submit failed")
		metrics.RecordSubmission("text2audio", "error")
		responses.HandleError(c, err, "failed to submit text-to-audio job")
		return
	}

	metrics.RecordSubmission("text2audio", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// TimingToAudio godoc
// @Summary      Submit a timing-to-audio job
// @Description  Generates a sound clip from timed sound events on a timeline.
// @Tags         audios
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TimingToAudioRequest  true  "Job parameters"
// @Success      200      {object}  responses.SubmitResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v1/audios/timing [post]
func (h *GenerationHandler) TimingToAudio(c *gin.Context) {
	var req requests.TimingToAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.SubmitTimingToAudio(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.log.Error().Err(err).Str("job_type", "timing2audio").Msg("submit failed")
		metrics.RecordSubmission("timing2audio", "error")
		responses.HandleError(c, err, "failed to submit timing-to-audio job")
		return
	}

	metrics.RecordSubmission("timing2audio", "success")
	c.JSON(http.StatusOK, responses.NewSubmitResponse(t))
}

// QueryTask godoc
// @Summary      Query task state
// @Description  Returns the current state and creations of a task.
// @Tags         tasks
// @Produce      json
// @Param        task_id  path      string  true  "Task ID"
// @Success      200      {object}  responses.TaskResponse
// @Failure      502      {object}  responses.ErrorResponse
// @Router       /v1/tasks/{task_id} [get]
func (h *GenerationHandler) QueryTask(c *gin.Context) {
	taskID := c.Param("task_id")

	t, err := h.client.QueryTask(c.Request.Context(), taskID)
	if err != nil {
		h.log.Error().Err(err).Str("task_id", taskID).Msg("query failed")
		responses.HandleError(c, err, "failed to query task")
		return
	}

	c.JSON(http.StatusOK, responses.FromTask(t))
}

// CancelTask godoc
// @Summary      Cancel a task
// @Description  Asks the remote service to cancel a queued or running task.
// @Tags         tasks
// @Produce      json
// @Param        task_id  path      string  true  "Task ID"
// @Success      200      {object}  responses.CancelResponse
// @Failure      502      {object}  responses.ErrorResponse
// @Router       /v1/tasks/{task_id}/cancel [post]
func (h *GenerationHandler) CancelTask(c *gin.Context) {
	taskID := c.Param("task_id")

	if err := h.client.CancelTask(c.Request.Context(), taskID); err != nil {
		h.log.Error().Err(err).Str("task_id", taskID).Msg("cancel failed")
		responses.HandleError(c, err, "failed to cancel task")
		return
	}

	c.JSON(http.StatusOK, responses.CancelResponse{TaskID: taskID, Cancelled: true})
}

// WaitTask godoc
// @Summary      Wait for task completion
// @Description  Blocks until the task reaches a terminal state or the timeout passes.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path      string                    true   "Task ID"
// @Param        request  body      requests.WaitTaskRequest  false  "Wait options"
// @Success      200      {object}  responses.TaskResponse
// @Failure      504      {object}  responses.ErrorResponse
// @Router       /v1/tasks/{task_id}/wait [post]
func (h *GenerationHandler) WaitTask(c *gin.Context) {
	taskID := c.Param("task_id")

	var req requests.WaitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.BadRequest(c, err)
		return
	}

	start := time.Now()
	t, err := h.client.WaitForCompletion(c.Request.Context(), taskID, h.cfg.CheckInterval, h.cfg.ClampTimeout(req.Timeout))
	if err != nil {
		h.log.Error().Err(err).Str("task_id", taskID).Msg("wait failed")
		responses.HandleError(c, err, "failed to wait for task")
		return
	}

	metrics.RecordTaskFinished(string(t.State), time.Since(start).Seconds())
	c.JSON(http.StatusOK, responses.FromTask(t))
}

// DownloadTask godoc
// @Summary      Download finished creations
// @Description  Saves the creations of a finished task into the download directory and returns served URLs.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path      string                        true   "Task ID"
// @Param        request  body      requests.DownloadTaskRequest  false  "Download options"
// @Success      200      {object}  responses.DownloadResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Router       /v1/tasks/{task_id}/download [post]
func (h *GenerationHandler) DownloadTask(c *gin.Context) {
	taskID := c.Param("task_id")

	var req requests.DownloadTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.BadRequest(c, err)
		return
	}

	t, err := h.client.QueryTask(c.Request.Context(), taskID)
	if err != nil {
		h.log.Error().Err(err).Str("task_id", taskID).Msg("query failed")
		responses.HandleError(c, err, "failed to query task")
		return
	}

	files, err := h.fetcher.FetchCreations(c.Request.Context(), t, h.cfg.DownloadDir, req.Prefix)
	if err != nil && len(files) == 0 {
		h.log.Error().Err(err).Str("task_id", taskID).Msg("download failed")
		metrics.RecordDownload("error", 0)
		responses.HandleError(c, err, "failed to download creations")
		return
	}

	urls := make(map[string]string, len(files))
	for slot, path := range files {
		urls[slot] = h.cfg.PublicBaseURL() + "/downloads/" + filepath.Base(path)
		if info, statErr := os.Stat(path); statErr == nil {
			metrics.RecordDownload("success", info.Size())
		}
	}

	resp := responses.DownloadResponse{TaskID: t.ID, Files: files, URLs: urls}
	if err != nil {
		h.log.Warn().Err(err).Str("task_id", taskID).Msg("some creations failed to download, continuing with the rest")
		metrics.RecordDownload("error", 0)
		resp.Errors = strings.Split(err.Error(), "\n")
	}

	c.JSON(http.StatusOK, resp)
}

// Models godoc
// @Summary      List model options
// @Description  Returns per-model duration and resolution choices for each video job type.
// @Tags         models
// @Produce      json
// @Success      200  {object}  responses.ModelCatalogResponse
// @Router       /v1/models [get]
func (h *GenerationHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, responses.NewModelCatalog())
}
