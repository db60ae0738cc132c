package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/minne100/ViduUI/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")

	videos := group.Group("/videos")
	videos.POST("/image", r.handlers.Generation.ImageToVideo)
	videos.POST("/reference", r.handlers.Generation.ReferenceToVideo)
	videos.POST("/start-end", r.handlers.Generation.StartEndToVideo)
	videos.POST("/text", r.handlers.Generation.TextToVideo)
	videos.POST("/upscale", r.handlers.Generation.Upscale)
	videos.POST("/lip-sync", r.handlers.Generation.LipSync)

	audios := group.Group("/audios")
	audios.POST("/text", r.handlers.Generation.TextToAudio)
	audios.POST("/timing", r.handlers.Generation.TimingToAudio)

	tasks := group.Group("/tasks")
	tasks.GET("/:task_id", r.handlers.Generation.QueryTask)
	tasks.POST("/:task_id/cancel", r.handlers.Generation.CancelTask)
	tasks.POST("/:task_id/wait", r.handlers.Generation.WaitTask)
	tasks.POST("/:task_id/download", r.handlers.Generation.DownloadTask)

	group.GET("/models", r.handlers.Generation.Models)
	group.POST("/uploads", r.handlers.Upload.Upload)
}
