package order

import (
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// State is the lifecycle state of an order. An order in StateBasket is
// the buyer's active cart; placement moves it to StateNew and
// fulfillment walks it towards StateDelivered. StateCanceled is the
// tombstone — orders are never hard-deleted.
type State string

const (
	StateBasket    State = "basket"
	StateNew       State = "new"
	StateConfirmed State = "confirmed"
	StateAssembled State = "assembled"
	StateSent      State = "sent"
	StateDelivered State = "delivered"
	StateCanceled  State = "canceled"
)

// IsValid checks if the state is a member of the enum
func (s State) IsValid() bool {
	switch s {
	case StateBasket, StateNew, StateConfirmed, StateAssembled, StateSent, StateDelivered, StateCanceled:
		return true
	}
	return false
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// Label returns the human-readable name used in buyer notifications.
func (s State) Label() string {
	switch s {
	case StateBasket:
		return "Basket"
	case StateNew:
		return "New"
	case StateConfirmed:
		return "Confirmed"
	case StateAssembled:
		return "Assembled"
	case StateSent:
		return "Sent"
	case StateDelivered:
		return "Delivered"
	case StateCanceled:
		return "Canceled"
	}
	return string(s)
}

// Fulfillable reports whether a supplier may still move the order.
// Delivered and canceled orders are terminal; baskets are not theirs
// to touch.
func (s State) Fulfillable() bool {
	switch s {
	case StateNew, StateConfirmed, StateAssembled, StateSent:
		return true
	}
	return false
}

// CanTransitionTo checks the forward-only progression with canceled
// reachable from any non-terminal state. Fulfillment deliberately does
// not enforce this (see SetState); it is kept for callers that want
// strict ordering.
func (s State) CanTransitionTo(target State) bool {
	if target == StateCanceled {
		return s != StateDelivered && s != StateCanceled
	}
	switch s {
	case StateBasket:
		return target == StateNew
	case StateNew:
		return target == StateConfirmed
	case StateConfirmed:
		return target == StateAssembled
	case StateAssembled:
		return target == StateSent
	case StateSent:
		return target == StateDelivered
	}
	return false
}

// Item is one line of an order: a single offer with a positive
// quantity. Lines are unique per (order, offer); updates overwrite the
// quantity instead of duplicating the line.
type Item struct {
	shared.BaseEntity
	OrderID  uint           `gorm:"not null;uniqueIndex:idx_item_order_offer,priority:1" json:"-"`
	OfferID  uint           `gorm:"not null;uniqueIndex:idx_item_order_offer,priority:2" json:"product_info"`
	Quantity int            `gorm:"not null" json:"quantity"`
	Offer    *catalog.Offer `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates an order line.
func NewItem(orderID, offerID uint, quantity int) (*Item, error) {
	if offerID == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Offer id is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Quantity must be a positive integer")
	}
	return &Item{OrderID: orderID, OfferID: offerID, Quantity: quantity}, nil
}

// Order is a buyer's order. BasketOwner mirrors UserID while the order
// is in the basket state and is NULL otherwise; its unique index is
// what guarantees at most one basket per user under concurrent
// creation.
type Order struct {
	shared.BaseEntity
	UserID      uint              `gorm:"not null;index" json:"-"`
	State       State             `gorm:"type:varchar(15);not null;default:'basket';index" json:"state"`
	BasketOwner *uint             `gorm:"uniqueIndex" json:"-"`
	ContactID   *uint             `json:"-"`
	Contact     *identity.Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	Items       []Item            `gorm:"foreignKey:OrderID" json:"ordered_items"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewBasket creates the buyer's basket order.
func NewBasket(userID uint) (*Order, error) {
	if userID == 0 {
		return nil, shared.ErrUnauthorized
	}
	owner := userID
	return &Order{
		UserID:      userID,
		State:       StateBasket,
		BasketOwner: &owner,
	}, nil
}

// Place attaches a contact and moves the basket to the new state. The
// contact requirement holds for every state past basket.
func (o *Order) Place(contact *identity.Contact) error {
	if o.State != StateBasket {
		return shared.ErrNotFound
	}
	if contact == nil || contact.UserID != o.UserID {
		return shared.ErrNotFound
	}
	o.ContactID = &contact.ID
	o.Contact = contact
	o.State = StateNew
	o.BasketOwner = nil
	return nil
}

// SetState applies a supplier-side status change. Any valid enum
// member is accepted as the target; the original API never enforced
// forward-only progression here and callers rely on that.
func (o *Order) SetState(target State) error {
	if !target.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown order status")
	}
	if !o.State.Fulfillable() {
		return shared.ErrNotFound
	}
	o.State = target
	return nil
}

// Total is the order value: sum over lines of quantity times offer
// price. Computed on read, never persisted.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Offer == nil {
			continue
		}
		total = total.Add(item.Offer.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
