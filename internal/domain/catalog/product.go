package catalog

import "github.com/procure/backend/internal/domain/shared"

// Product is a catalog item shared across shops. Pricing and stock
// live on per-shop offers, never on the product itself.
type Product struct {
	shared.BaseEntity
	Name       string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_product_name_category,priority:1" json:"name"`
	CategoryID uint      `gorm:"not null;uniqueIndex:idx_product_name_category,priority:2;index" json:"-"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product within a category.
func NewProduct(name string, categoryID uint) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name is required")
	}
	if categoryID == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product category is required")
	}
	return &Product{Name: name, CategoryID: categoryID}, nil
}
