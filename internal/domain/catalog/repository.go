package catalog

import "context"

// ShopRepository provides access to shops
type ShopRepository interface {
	FindByID(ctx context.Context, id uint) (*Shop, error)
	FindByUser(ctx context.Context, userID uint) (*Shop, error)
	FindAccepting(ctx context.Context) ([]Shop, error)
	Save(ctx context.Context, shop *Shop) error
	SetAccepting(ctx context.Context, userID uint, accepting bool) (int64, error)
}

// CategoryRepository provides access to categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	FindForShop(ctx context.Context, shopID uint) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	// AttachShop adds the shop to the category's served-by set;
	// attaching twice is a no-op.
	AttachShop(ctx context.Context, categoryID, shopID uint) error
}

// ProductRepository provides access to products
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindOrCreate resolves a product by (name, category), creating it
	// when absent.
	FindOrCreate(ctx context.Context, name string, categoryID uint) (*Product, error)
}

// OfferFilter narrows offer searches.
type OfferFilter struct {
	ShopID        uint
	CategoryID    uint
	AcceptingOnly bool
}

// OfferRepository provides access to per-shop offers
type OfferRepository interface {
	FindByID(ctx context.Context, id uint) (*Offer, error)
	// FindDetailed loads offers with product, category and parameters
	// preloaded.
	FindDetailed(ctx context.Context, filter OfferFilter) ([]Offer, error)
	// FindForShopOrdered loads a shop's offers ordered by insertion id
	// with everything needed for export preloaded.
	FindForShopOrdered(ctx context.Context, shopID uint) ([]Offer, error)
	Save(ctx context.Context, offer *Offer) error
	// DeleteForShop removes every offer of the shop together with
	// their parameter values.
	DeleteForShop(ctx context.Context, shopID uint) (int64, error)
}

// ParameterRepository provides access to attribute names
type ParameterRepository interface {
	// FindOrCreate resolves a parameter by name, creating it when
	// absent.
	FindOrCreate(ctx context.Context, name string) (*Parameter, error)
}
