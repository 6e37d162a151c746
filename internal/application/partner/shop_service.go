package partner

import (
	"context"
	"fmt"
	"strings"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/pricelist"
	"go.uber.org/zap"
)

// ShopService serves the supplier's own shop: export and the
// accepting-orders toggle.
type ShopService struct {
	shopRepo     catalog.ShopRepository
	categoryRepo catalog.CategoryRepository
	offerRepo    catalog.OfferRepository
	logger       *zap.Logger
}

// NewShopService creates a new ShopService
func NewShopService(
	shopRepo catalog.ShopRepository,
	categoryRepo catalog.CategoryRepository,
	offerRepo catalog.OfferRepository,
	logger *zap.Logger,
) *ShopService {
	return &ShopService{
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		offerRepo:    offerRepo,
		logger:       logger,
	}
}

// Export serializes the supplier's catalog back into the price-list
// document shape, so the output can be re-imported as is.
func (s *ShopService) Export(ctx context.Context, supplierUserID uint) (*pricelist.Document, error) {
	shop, err := s.shopRepo.FindByUser(ctx, supplierUserID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindForShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	offers, err := s.offerRepo.FindForShopOrdered(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	doc := &pricelist.Document{
		Shop:       shop.Name,
		Categories: make([]pricelist.Category, len(categories)),
		Goods:      make([]pricelist.Good, len(offers)),
	}
	for i, c := range categories {
		doc.Categories[i] = pricelist.Category{ID: c.ID, Name: c.Name}
	}
	for i, offer := range offers {
		good := pricelist.Good{
			ID:         offer.ExternalID,
			Model:      offer.Model,
			Price:      offer.Price,
			PriceRRC:   offer.PriceRRC,
			Quantity:   offer.Quantity,
			Parameters: make(map[string]any, len(offer.Parameters)),
		}
		if offer.Product != nil {
			good.Name = offer.Product.Name
			good.Category = offer.Product.CategoryID
		}
		for _, p := range offer.Parameters {
			if p.Parameter != nil {
				good.Parameters[p.Parameter.Name] = p.Value
			}
		}
		doc.Goods[i] = good
	}
	return doc, nil
}

// State returns the supplier's shop record.
func (s *ShopService) State(ctx context.Context, supplierUserID uint) (*catalog.Shop, error) {
	return s.shopRepo.FindByUser(ctx, supplierUserID)
}

// SetState parses a bool-ish state string and toggles whether the
// shop accepts new orders.
func (s *ShopService) SetState(ctx context.Context, supplierUserID uint, state string) error {
	accepting, err := ParseBool(state)
	if err != nil {
		return err
	}
	affected, err := s.shopRepo.SetAccepting(ctx, supplierUserID, accepting)
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrNotFound
	}
	s.logger.Info("shop state changed",
		zap.Uint("supplier_id", supplierUserID),
		zap.Bool("accepting", accepting),
	)
	return nil
}

// ParseBool accepts the loose true/false vocabulary the state
// endpoint has always taken: 1/0, y/n, yes/no, t/f, true/false,
// on/off, case-insensitive.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "y", "yes", "t", "true", "on":
		return true, nil
	case "0", "n", "no", "f", "false", "off":
		return false, nil
	}
	return false, shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Invalid state value %q", value))
}
