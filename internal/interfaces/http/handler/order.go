package handler

import (
	"github.com/gin-gonic/gin"
	appcheckout "github.com/procure/backend/internal/application/checkout"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// OrderHandler serves buyer-side order placement and history.
type OrderHandler struct {
	BaseHandler
	checkoutService *appcheckout.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *appcheckout.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler:     NewBaseHandler(logger),
		checkoutService: checkoutService,
	}
}

// List handles GET /order
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.checkoutService.ListOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Orders": orders})
}

// Place handles POST /order
func (h *OrderHandler) Place(c *gin.Context) {
	var input appcheckout.PlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if err := h.checkoutService.PlaceOrder(c.Request.Context(), middleware.UserID(c), input); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}
