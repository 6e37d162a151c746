package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by id
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindOrCreate resolves a product by (name, category), creating it
// when absent. The unique index on the pair keeps concurrent imports
// from duplicating; a lost race falls back to re-reading.
func (r *GormProductRepository) FindOrCreate(ctx context.Context, name string, categoryID uint) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).
		Where("name = ? AND category_id = ?", name, categoryID).
		First(&product).Error
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := catalog.NewProduct(name, categoryID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			var existing catalog.Product
			if ferr := r.db.WithContext(ctx).
				Where("name = ? AND category_id = ?", name, categoryID).
				First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return created, nil
}
