package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements catalog.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its externally assigned id
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll lists all categories
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindForShop lists categories served by the shop, ordered by id so
// exports are stable.
func (r *GormCategoryRepository) FindForShop(ctx context.Context, shopID uint) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).
		Joins("JOIN shop_categories sc ON sc.category_id = categories.id").
		Where("sc.shop_id = ?", shopID).
		Order("categories.id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save persists a category, keeping the externally assigned id
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// AttachShop adds the shop to the category's served-by set. The
// association is additive; attaching twice is a no-op.
func (r *GormCategoryRepository) AttachShop(ctx context.Context, categoryID, shopID uint) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO shop_categories (category_id, shop_id) VALUES (?, ?) ON CONFLICT DO NOTHING", categoryID, shopID).
		Error
}
