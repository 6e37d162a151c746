package order

import "context"

// Repository provides access to orders and their lines
type Repository interface {
	// GetOrCreateBasket returns the user's basket order, creating it
	// when absent. Implementations must be race-safe under concurrent
	// first-add requests: rely on the basket uniqueness constraint,
	// not a check-then-create.
	GetOrCreateBasket(ctx context.Context, userID uint) (*Order, error)
	// FindBasket returns the user's basket with lines fully expanded,
	// or ErrNotFound when no basket exists.
	FindBasket(ctx context.Context, userID uint) (*Order, error)
	// FindBasketByID returns the order only when it belongs to the
	// user and is still in the basket state.
	FindBasketByID(ctx context.Context, userID, orderID uint) (*Order, error)
	// FindPlacedForUser returns the user's non-basket orders with
	// lines expanded.
	FindPlacedForUser(ctx context.Context, userID uint) ([]Order, error)
	// FindForSupplier returns non-basket orders containing at least
	// one line whose offer belongs to the supplier's shop.
	FindForSupplier(ctx context.Context, supplierUserID uint) ([]Order, error)
	// FindForSupplierByID resolves one such order, or ErrNotFound.
	FindForSupplierByID(ctx context.Context, supplierUserID, orderID uint) (*Order, error)

	// Place atomically attaches the contact and moves the order from
	// basket to new; returns ErrNotFound when the guarded update
	// matches no row.
	Place(ctx context.Context, order *Order) error
	Save(ctx context.Context, order *Order) error

	// CreateItem inserts a line; a duplicate (order, offer) pair
	// surfaces as ErrIntegrity.
	CreateItem(ctx context.Context, item *Item) error
	// UpdateItemQuantity overwrites the quantity of an existing line;
	// returns the number of lines touched (0 when the pair is absent).
	UpdateItemQuantity(ctx context.Context, orderID, offerID uint, quantity int) (int64, error)
	// DeleteItem removes one line; returns the number removed.
	DeleteItem(ctx context.Context, orderID, offerID uint) (int64, error)
	// DeleteAllItems clears every line of the order.
	DeleteAllItems(ctx context.Context, orderID uint) (int64, error)
}
