// Package web serves the embedded browser UI.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minne100/ViduUI/internal/config"
)

//go:embed index.html
var content embed.FS

var page = template.Must(template.ParseFS(content, "index.html"))

// Handler renders the form UI with the configured title and theme.
func Handler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := page.Execute(c.Writer, gin.H{
			"Title": cfg.UITitle,
			"Theme": cfg.UITheme,
		}); err != nil {
			_ = c.Error(err)
		}
	}
}
