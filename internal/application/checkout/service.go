// Package checkout turns baskets into placed orders and lists a
// buyer's order history.
package checkout

import (
	"context"
	"fmt"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/notification"
	"github.com/procure/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PlaceInput names the basket and the delivery contact to attach.
type PlaceInput struct {
	OrderID   uint `json:"id" binding:"required"`
	ContactID uint `json:"contact" binding:"required"`
}

// OrderSummary is an order annotated with its computed total.
type OrderSummary struct {
	*order.Order
	Total decimal.Decimal `json:"total_sum"`
}

// Service places orders and reads order history.
type Service struct {
	orderRepo   order.Repository
	contactRepo identity.ContactRepository
	userRepo    identity.UserRepository
	notifier    notification.Gateway
	logger      *zap.Logger
}

// NewService creates a new checkout Service
func NewService(
	orderRepo order.Repository,
	contactRepo identity.ContactRepository,
	userRepo identity.UserRepository,
	notifier notification.Gateway,
	logger *zap.Logger,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// PlaceOrder moves the buyer's basket to the new state with the given
// contact attached. A foreign or missing order, an already placed
// order and a foreign contact all collapse into NotFound: the caller
// learns nothing about other users' data.
func (s *Service) PlaceOrder(ctx context.Context, userID uint, input PlaceInput) error {
	basket, err := s.orderRepo.FindBasketByID(ctx, userID, input.OrderID)
	if err != nil {
		return err
	}
	contact, err := s.contactRepo.FindByIDForUser(ctx, userID, input.ContactID)
	if err != nil {
		return err
	}
	if err := basket.Place(contact); err != nil {
		return err
	}
	if err := s.orderRepo.Place(ctx, basket); err != nil {
		return err
	}

	s.logger.Info("order placed",
		zap.Uint("user_id", userID),
		zap.Uint("order_id", basket.ID),
	)
	s.notifyBuyer(ctx, userID, "Order status update",
		fmt.Sprintf("Your order %d has been placed.", basket.ID))
	return nil
}

// ListOrders returns the buyer's placed orders with computed totals.
func (s *Service) ListOrders(ctx context.Context, userID uint) ([]OrderSummary, error) {
	orders, err := s.orderRepo.FindPlacedForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summaries := make([]OrderSummary, len(orders))
	for i := range orders {
		summaries[i] = OrderSummary{Order: &orders[i], Total: orders[i].Total()}
	}
	return summaries, nil
}

// notifyBuyer is fire-and-forget: a failed lookup or send is logged
// and never fails the operation that triggered it.
func (s *Service) notifyBuyer(ctx context.Context, userID uint, subject, body string) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("buyer lookup for notification failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	if err := s.notifier.Notify(ctx, user.Email, subject, body); err != nil {
		s.logger.Warn("buyer notification failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}
