package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOfferRepository implements catalog.OfferRepository using GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GormOfferRepository
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// FindByID finds an offer by id
func (r *GormOfferRepository) FindByID(ctx context.Context, id uint) (*catalog.Offer, error) {
	var offer catalog.Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// FindDetailed loads offers with product, category and parameters for
// catalog search responses.
func (r *GormOfferRepository) FindDetailed(ctx context.Context, filter catalog.OfferFilter) ([]catalog.Offer, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.Offer{}).
		Preload("Product").
		Preload("Product.Category").
		Preload("Parameters").
		Preload("Parameters.Parameter")

	if filter.AcceptingOnly {
		query = query.Joins("JOIN shops ON shops.id = offers.shop_id").
			Where("shops.accepting = ?", true)
	}
	if filter.ShopID != 0 {
		query = query.Where("offers.shop_id = ?", filter.ShopID)
	}
	if filter.CategoryID != 0 {
		query = query.Joins("JOIN products ON products.id = offers.product_id").
			Where("products.category_id = ?", filter.CategoryID)
	}

	var offers []catalog.Offer
	if err := query.Order("offers.id ASC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// FindForShopOrdered loads a shop's offers by insertion id with
// everything the export document needs.
func (r *GormOfferRepository) FindForShopOrdered(ctx context.Context, shopID uint) ([]catalog.Offer, error) {
	var offers []catalog.Offer
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Preload("Product").
		Preload("Product.Category").
		Preload("Parameters").
		Preload("Parameters.Parameter").
		Order("id ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save persists an offer together with its parameter values
func (r *GormOfferRepository) Save(ctx context.Context, offer *catalog.Offer) error {
	if err := r.db.WithContext(ctx).Save(offer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return shared.ErrIntegrity
		}
		return err
	}
	return nil
}

// DeleteForShop wipes the shop's offers and their parameter values in
// one pass. Imports call this before writing replacements so stale
// offers never survive.
func (r *GormOfferRepository) DeleteForShop(ctx context.Context, shopID uint) (int64, error) {
	if err := r.db.WithContext(ctx).
		Where("offer_id IN (?)", r.db.Model(&catalog.Offer{}).Select("id").Where("shop_id = ?", shopID)).
		Delete(&catalog.OfferParameter{}).Error; err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Delete(&catalog.Offer{})
	return res.RowsAffected, res.Error
}
