package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/config"
	"github.com/minne100/ViduUI/internal/infrastructure/metrics"
	"github.com/minne100/ViduUI/internal/interfaces/httpserver/responses"
)

// Store persists browser uploads.
type Store interface {
	Save(fileType, filename string, r io.Reader) (string, int64, error)
}

// UploadHandler exposes the browser upload endpoint.
type UploadHandler struct {
	cfg   *config.Config
	store Store
	log   zerolog.Logger
}

// NewUploadHandler constructs the handler.
func NewUploadHandler(cfg *config.Config, store Store, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		cfg:   cfg,
		store: store,
		log:   log.With().Str("handler", "upload").Logger(),
	}
}

// Upload godoc
// @Summary      Upload a local file
// @Description  Stores a browser file so the remote service can fetch it by URL.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true  "File to upload"
// @Param        type  formData  string  true  "File type: video, audio or image"
// @Success      200   {object}  responses.UploadResponse
// @Failure      400   {object}  responses.ErrorResponse
// @Router       /v1/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	fileType := c.PostForm("type")

	name, size, err := h.store.Save(fileType, header.Filename, file)
	if err != nil {
		h.log.Warn().Err(err).Str("filename", header.Filename).Msg("upload rejected")
		metrics.RecordUpload(fileType, "error", 0)
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecordUpload(fileType, "success", size)
	c.JSON(http.StatusOK, responses.UploadResponse{
		Name:  name,
		URL:   h.cfg.PublicBaseURL() + "/uploads/" + name,
		Type:  fileType,
		Bytes: size,
	})
}
