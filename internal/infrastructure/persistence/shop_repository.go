package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShopRepository implements catalog.ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID finds a shop by id
func (r *GormShopRepository) FindByID(ctx context.Context, id uint) (*catalog.Shop, error) {
	var shop catalog.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindByUser finds the shop owned by a supplier user
func (r *GormShopRepository) FindByUser(ctx context.Context, userID uint) (*catalog.Shop, error) {
	var shop catalog.Shop
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// FindAccepting lists shops currently taking orders
func (r *GormShopRepository) FindAccepting(ctx context.Context) ([]catalog.Shop, error) {
	var shops []catalog.Shop
	if err := r.db.WithContext(ctx).
		Where("accepting = ?", true).
		Order("id ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Save persists a shop
func (r *GormShopRepository) Save(ctx context.Context, shop *catalog.Shop) error {
	if err := r.db.WithContext(ctx).Save(shop).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return shared.ErrIntegrity
		}
		return err
	}
	return nil
}

// SetAccepting flips the accepting-orders flag on the user's shop,
// returning the number of shops updated.
func (r *GormShopRepository) SetAccepting(ctx context.Context, userID uint, accepting bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&catalog.Shop{}).
		Where("user_id = ?", userID).
		Update("accepting", accepting)
	return res.RowsAffected, res.Error
}
