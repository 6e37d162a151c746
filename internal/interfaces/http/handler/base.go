// Package handler implements the HTTP endpoints on top of the
// application services.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BaseHandler carries the helpers every handler shares.
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a BaseHandler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// OK writes a success envelope.
func (h *BaseHandler) OK(c *gin.Context, fields dto.Envelope) {
	c.JSON(http.StatusOK, dto.OK(fields))
}

// Error writes a failure envelope with the status the error maps to.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	h.logger.Debug("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(dto.HTTPStatus(err), dto.Fail(dto.ErrorsPayload(err)))
}
