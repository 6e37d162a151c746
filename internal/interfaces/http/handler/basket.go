package handler

import (
	"github.com/gin-gonic/gin"
	appbasket "github.com/procure/backend/internal/application/basket"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BasketHandler serves the buyer's cart.
type BasketHandler struct {
	BaseHandler
	basketService *appbasket.Service
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(basketService *appbasket.Service, logger *zap.Logger) *BasketHandler {
	return &BasketHandler{
		BaseHandler:   NewBaseHandler(logger),
		basketService: basketService,
	}
}

type basketItemsInput struct {
	Items []appbasket.ItemInput `json:"items" binding:"required"`
}

// View handles GET /basket
func (h *BasketHandler) View(c *gin.Context) {
	basket, err := h.basketService.View(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Basket": basket, "Total": basket.Total()})
}

// AddItems handles POST /basket
func (h *BasketHandler) AddItems(c *gin.Context) {
	var input basketItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.basketService.AddItems(c.Request.Context(), middleware.UserID(c), input.Items)
	if err != nil {
		h.Error(c, err)
		return
	}
	fields := dto.Envelope{"Created": result.Created}
	if len(result.LineErrors) > 0 {
		fields["Failed"] = result.LineErrors
	}
	h.OK(c, fields)
}

// UpdateItems handles PUT /basket
func (h *BasketHandler) UpdateItems(c *gin.Context) {
	var input basketItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.basketService.UpdateItems(c.Request.Context(), middleware.UserID(c), input.Items)
	if err != nil {
		h.Error(c, err)
		return
	}
	fields := dto.Envelope{"Updated": result.Affected}
	if len(result.LineErrors) > 0 {
		fields["Failed"] = result.LineErrors
	}
	h.OK(c, fields)
}

// RemoveAll handles DELETE /basket
func (h *BasketHandler) RemoveAll(c *gin.Context) {
	deleted, err := h.basketService.RemoveAll(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Deleted": deleted})
}
