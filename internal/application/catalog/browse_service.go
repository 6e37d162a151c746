// Package catalog exposes the public, read-only catalog surface:
// categories, accepting shops and offer search.
package catalog

import (
	"context"

	"github.com/procure/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// BrowseService serves the public catalog queries.
type BrowseService struct {
	shopRepo     catalog.ShopRepository
	categoryRepo catalog.CategoryRepository
	offerRepo    catalog.OfferRepository
	logger       *zap.Logger
}

// NewBrowseService creates a new BrowseService
func NewBrowseService(
	shopRepo catalog.ShopRepository,
	categoryRepo catalog.CategoryRepository,
	offerRepo catalog.OfferRepository,
	logger *zap.Logger,
) *BrowseService {
	return &BrowseService{
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		offerRepo:    offerRepo,
		logger:       logger,
	}
}

// Categories lists every category.
func (s *BrowseService) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

// Shops lists shops currently accepting orders.
func (s *BrowseService) Shops(ctx context.Context) ([]catalog.Shop, error) {
	return s.shopRepo.FindAccepting(ctx)
}

// SearchOffers returns offers from accepting shops, optionally
// narrowed by shop and category.
func (s *BrowseService) SearchOffers(ctx context.Context, shopID, categoryID uint) ([]catalog.Offer, error) {
	return s.offerRepo.FindDetailed(ctx, catalog.OfferFilter{
		ShopID:        shopID,
		CategoryID:    categoryID,
		AcceptingOnly: true,
	})
}
