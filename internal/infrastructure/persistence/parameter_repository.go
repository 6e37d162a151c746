package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormParameterRepository implements catalog.ParameterRepository using GORM
type GormParameterRepository struct {
	db *gorm.DB
}

// NewGormParameterRepository creates a new GormParameterRepository
func NewGormParameterRepository(db *gorm.DB) *GormParameterRepository {
	return &GormParameterRepository{db: db}
}

// FindOrCreate resolves a parameter name, creating it when absent.
func (r *GormParameterRepository) FindOrCreate(ctx context.Context, name string) (*catalog.Parameter, error) {
	var parameter catalog.Parameter
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&parameter).Error
	if err == nil {
		return &parameter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	parameter = catalog.Parameter{Name: name}
	if err := r.db.WithContext(ctx).Create(&parameter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			var existing catalog.Parameter
			if ferr := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &parameter, nil
}
