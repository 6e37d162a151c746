package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	apppartner "github.com/procure/backend/internal/application/partner"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/pricelist"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// maxUploadSize caps multipart price-list uploads at 32 MiB.
const maxUploadSize = 32 << 20

// PartnerHandler serves the supplier surface: price-list import and
// export, shop state and order fulfillment.
type PartnerHandler struct {
	BaseHandler
	syncService        *apppartner.SyncService
	shopService        *apppartner.ShopService
	fulfillmentService *apppartner.FulfillmentService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(
	syncService *apppartner.SyncService,
	shopService *apppartner.ShopService,
	fulfillmentService *apppartner.FulfillmentService,
	logger *zap.Logger,
) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler:        NewBaseHandler(logger),
		syncService:        syncService,
		shopService:        shopService,
		fulfillmentService: fulfillmentService,
	}
}

// Update handles POST /partner/update. The price list arrives either
// as a multipart file upload or as a url field pointing at the
// document.
func (h *PartnerHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	supplierID := middleware.UserID(c)

	if file, err := c.FormFile("file"); err == nil {
		if file.Size > maxUploadSize {
			h.Error(c, shared.NewDomainError("VALIDATION_ERROR", "Uploaded file is too large"))
			return
		}
		src, err := file.Open()
		if err != nil {
			h.Error(c, err)
			return
		}
		defer src.Close()
		data, err := io.ReadAll(io.LimitReader(src, maxUploadSize))
		if err != nil {
			h.Error(c, err)
			return
		}
		if err := h.syncService.Import(ctx, supplierID, data); err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, nil)
		return
	}

	url := c.PostForm("url")
	if url == "" {
		h.Error(c, shared.NewDomainError("VALIDATION_ERROR", "Either a file or a url is required"))
		return
	}
	if err := h.syncService.ImportFromURL(ctx, supplierID, url); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// Export handles GET /partner/export, answering with the YAML
// document the import endpoint accepts.
func (h *PartnerHandler) Export(c *gin.Context) {
	doc, err := h.shopService.Export(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	data, err := pricelist.Encode(doc)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.Data(200, "application/x-yaml; charset=utf-8", data)
}

// State handles GET /partner/state
func (h *PartnerHandler) State(c *gin.Context) {
	shop, err := h.shopService.State(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Shop": shop})
}

// SetState handles POST /partner/state
func (h *PartnerHandler) SetState(c *gin.Context) {
	var input struct {
		State string `json:"state" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if err := h.shopService.SetState(c.Request.Context(), middleware.UserID(c), input.State); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}

// Orders handles GET /partner/orders
func (h *PartnerHandler) Orders(c *gin.Context) {
	orders, err := h.fulfillmentService.ListOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Orders": orders})
}

// SetOrderStatus handles POST /partner/orders
func (h *PartnerHandler) SetOrderStatus(c *gin.Context) {
	var input apppartner.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, err)
		return
	}
	if err := h.fulfillmentService.SetStatus(c.Request.Context(), middleware.UserID(c), input); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, nil)
}
