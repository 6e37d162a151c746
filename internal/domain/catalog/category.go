package catalog

import "github.com/procure/backend/internal/domain/shared"

// Category groups products. Identifiers come from supplier price
// lists, so they are shared across shops rather than generated here.
// The shop association is additive: imports attach shops and nothing
// ever detaches them.
type Category struct {
	shared.BaseEntity
	Name  string `gorm:"type:varchar(80);not null" json:"name"`
	Shops []Shop `gorm:"many2many:shop_categories" json:"-"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category with an externally assigned id.
func NewCategory(id uint, name string) (*Category, error) {
	if id == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category id must be positive")
	}
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category name is required")
	}
	c := &Category{Name: name}
	c.ID = id
	return c, nil
}

// Rename updates the category name, keeping the old one on empty input.
func (c *Category) Rename(name string) {
	if name != "" {
		c.Name = name
	}
}
