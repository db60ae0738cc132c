package responses

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minne100/ViduUI/internal/domain/generation"
	"github.com/minne100/ViduUI/internal/infrastructure/download"
	"github.com/minne100/ViduUI/internal/infrastructure/vidu"
	"github.com/minne100/ViduUI/internal/infrastructure/vidu/apierror"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	Code       string `json:"code,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// HandleError maps the error kinds onto HTTP statuses: validation to
// 400, remote catalog errors to their catalog status, wait timeouts to
// 504, everything else to 502.
func HandleError(c *gin.Context, err error, message string) {
	var validationErr *generation.ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Field: validationErr.Field,
		})
		return
	}

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apierror.HTTPStatus(apiErr.Code), ErrorResponse{
			Error:      apiErr.Message,
			Code:       string(apiErr.Code),
			Suggestion: apierror.SuggestedAction(apiErr.Code),
		})
		return
	}

	if errors.Is(err, vidu.ErrWaitTimeout) || errors.Is(err, context.DeadlineExceeded) {
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, ErrorResponse{
			Error: message + ": " + err.Error(),
		})
		return
	}

	if errors.Is(err, download.ErrNoCreations) {
		c.AbortWithStatusJSON(http.StatusConflict, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadGateway, ErrorResponse{
		Error: message + ": " + err.Error(),
	})
}

// BadRequest rejects a malformed request body.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
