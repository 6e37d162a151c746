package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/procure/backend/internal/application/catalog"
	"github.com/procure/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// CatalogHandler serves the public catalog: categories, accepting
// shops and offer search.
type CatalogHandler struct {
	BaseHandler
	browseService *appcatalog.BrowseService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(browseService *appcatalog.BrowseService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:   NewBaseHandler(logger),
		browseService: browseService,
	}
}

// Categories handles GET /categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.browseService.Categories(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Categories": categories})
}

// Shops handles GET /shops
func (h *CatalogHandler) Shops(c *gin.Context) {
	shops, err := h.browseService.Shops(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Shops": shops})
}

// Products handles GET /products with optional shop_id and
// category_id query filters.
func (h *CatalogHandler) Products(c *gin.Context) {
	shopID := queryUint(c, "shop_id")
	categoryID := queryUint(c, "category_id")

	offers, err := h.browseService.SearchOffers(c.Request.Context(), shopID, categoryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.Envelope{"Products": offers})
}

// queryUint reads a numeric query parameter, treating absent or
// malformed values as zero (no filter).
func queryUint(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
