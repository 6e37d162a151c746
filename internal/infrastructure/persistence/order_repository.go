package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/order"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// basketPreloads expands order lines down to offers, products,
// categories and parameter values.
func basketPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items").
		Preload("Items.Offer").
		Preload("Items.Offer.Product").
		Preload("Items.Offer.Product.Category").
		Preload("Items.Offer.Parameters").
		Preload("Items.Offer.Parameters.Parameter")
}

// GetOrCreateBasket returns the user's basket, creating it when
// absent. The unique index on basket_owner makes the create race-safe:
// a concurrent request that wins the insert causes a duplicate-key
// error here, and the loser re-reads the winner's row.
func (r *GormOrderRepository) GetOrCreateBasket(ctx context.Context, userID uint) (*order.Order, error) {
	basket, err := r.findBasketRow(ctx, userID)
	if err == nil {
		return basket, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := order.NewBasket(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return r.findBasketRow(ctx, userID)
		}
		return nil, err
	}
	return created, nil
}

func (r *GormOrderRepository) findBasketRow(ctx context.Context, userID uint) (*order.Order, error) {
	var basket order.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND state = ?", userID, order.StateBasket).
		First(&basket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &basket, nil
}

// FindBasket returns the user's basket with lines fully expanded.
func (r *GormOrderRepository) FindBasket(ctx context.Context, userID uint) (*order.Order, error) {
	var basket order.Order
	if err := basketPreloads(r.db.WithContext(ctx)).
		Where("user_id = ? AND state = ?", userID, order.StateBasket).
		First(&basket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &basket, nil
}

// FindBasketByID returns the order only when it belongs to the user
// and is still a basket. "Already placed" and "wrong owner" are both
// ErrNotFound on purpose.
func (r *GormOrderRepository) FindBasketByID(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	var basket order.Order
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND state = ?", orderID, userID, order.StateBasket).
		First(&basket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &basket, nil
}

// FindPlacedForUser returns the user's non-basket orders with lines
// expanded and contact attached.
func (r *GormOrderRepository) FindPlacedForUser(ctx context.Context, userID uint) ([]order.Order, error) {
	var orders []order.Order
	if err := basketPreloads(r.db.WithContext(ctx)).
		Preload("Contact").
		Where("user_id = ? AND state <> ?", userID, order.StateBasket).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// supplierOrderIDs selects ids of non-basket orders containing at
// least one line whose offer belongs to the supplier's shop.
func (r *GormOrderRepository) supplierOrderIDs(supplierUserID uint) *gorm.DB {
	return r.db.Model(&order.Item{}).
		Select("order_items.order_id").
		Joins("JOIN offers ON offers.id = order_items.offer_id").
		Joins("JOIN shops ON shops.id = offers.shop_id").
		Where("shops.user_id = ?", supplierUserID)
}

// FindForSupplier returns placed orders containing the supplier's offers.
func (r *GormOrderRepository) FindForSupplier(ctx context.Context, supplierUserID uint) ([]order.Order, error) {
	var orders []order.Order
	if err := basketPreloads(r.db.WithContext(ctx)).
		Preload("Contact").
		Where("state <> ?", order.StateBasket).
		Where("id IN (?)", r.supplierOrderIDs(supplierUserID)).
		Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindForSupplierByID resolves one order the supplier may act on;
// foreign and absent orders collapse into ErrNotFound.
func (r *GormOrderRepository) FindForSupplierByID(ctx context.Context, supplierUserID, orderID uint) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Where("id = ? AND state <> ?", orderID, order.StateBasket).
		Where("id IN (?)", r.supplierOrderIDs(supplierUserID)).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Place persists the basket-to-new transition atomically: the UPDATE
// is guarded on state='basket' so a concurrent placement loses and
// reports ErrNotFound.
func (r *GormOrderRepository) Place(ctx context.Context, o *order.Order) error {
	res := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ? AND user_id = ? AND state = ?", o.ID, o.UserID, order.StateBasket).
		Updates(map[string]any{
			"state":        order.StateNew,
			"contact_id":   o.ContactID,
			"basket_owner": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Save persists an order
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "Contact").Save(o).Error
}

// CreateItem inserts a line; the (order, offer) unique index turns
// duplicates into ErrIntegrity.
func (r *GormOrderRepository) CreateItem(ctx context.Context, item *order.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return shared.ErrIntegrity
		}
		return err
	}
	return nil
}

// UpdateItemQuantity overwrites the quantity of an existing line.
func (r *GormOrderRepository) UpdateItemQuantity(ctx context.Context, orderID, offerID uint, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&order.Item{}).
		Where("order_id = ? AND offer_id = ?", orderID, offerID).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

// DeleteItem removes one line.
func (r *GormOrderRepository) DeleteItem(ctx context.Context, orderID, offerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND offer_id = ?", orderID, offerID).
		Delete(&order.Item{})
	return res.RowsAffected, res.Error
}

// DeleteAllItems clears every line of the order.
func (r *GormOrderRepository) DeleteAllItems(ctx context.Context, orderID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&order.Item{})
	return res.RowsAffected, res.Error
}
