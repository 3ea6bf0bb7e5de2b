package application

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	applicationerrors "go-leave/internal/application/errors"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("application request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)

	body := gin.H{"message": httpErr.Message}
	if httpErr.Details != nil {
		body["data"] = httpErr.Details
	}
	c.JSON(httpErr.Status, body)
}

// Submit accepts either a single application object or an array of them.
// The response is always an array, even for a single-object input.
func (h *Handler) Submit(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.writeServiceError(c, applicationerrors.ErrInvalidRequestBody)
		return
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		h.writeServiceError(c, applicationerrors.ErrRequestBodyEmpty)
		return
	}

	var reqs []CreateApplicationRequest
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &reqs); err != nil {
			h.logger.Warn("http submit applications decode failed", zap.Error(err))
			h.writeServiceError(c, applicationerrors.ErrInvalidRequestBody)
			return
		}
	} else {
		var one CreateApplicationRequest
		if err := json.Unmarshal(raw, &one); err != nil {
			h.logger.Warn("http submit application decode failed", zap.Error(err))
			h.writeServiceError(c, applicationerrors.ErrInvalidRequestBody)
			return
		}
		reqs = []CreateApplicationRequest{one}
	}

	resp, err := h.service.Submit(c.Request.Context(), reqs)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchApplicationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http search applications binding failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
