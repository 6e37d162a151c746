package partner

import (
	"context"
	"fmt"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/notification"
	"github.com/procure/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StatusInput names the order and the target status.
type StatusInput struct {
	OrderID uint   `json:"id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// OrderSummary is an order annotated with its computed total.
type OrderSummary struct {
	*order.Order
	Total decimal.Decimal `json:"total_sum"`
}

// FulfillmentService handles supplier-side order progression.
type FulfillmentService struct {
	orderRepo order.Repository
	userRepo  identity.UserRepository
	notifier  notification.Gateway
	logger    *zap.Logger
}

// NewFulfillmentService creates a new FulfillmentService
func NewFulfillmentService(
	orderRepo order.Repository,
	userRepo identity.UserRepository,
	notifier notification.Gateway,
	logger *zap.Logger,
) *FulfillmentService {
	return &FulfillmentService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// SetStatus moves an order the supplier participates in to the given
// status and notifies the buyer. An order the supplier has no lines
// in, a missing order and an order past fulfillment all surface as
// the same NotFound.
func (s *FulfillmentService) SetStatus(ctx context.Context, supplierUserID uint, input StatusInput) error {
	o, err := s.orderRepo.FindForSupplierByID(ctx, supplierUserID, input.OrderID)
	if err != nil {
		return err
	}
	target := order.State(input.Status)
	if err := o.SetState(target); err != nil {
		return err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return err
	}

	s.logger.Info("order status changed",
		zap.Uint("supplier_id", supplierUserID),
		zap.Uint("order_id", o.ID),
		zap.String("status", target.String()),
	)
	s.notifyBuyer(ctx, o)
	return nil
}

// ListOrders returns placed orders containing the supplier's offers,
// with computed totals.
func (s *FulfillmentService) ListOrders(ctx context.Context, supplierUserID uint) ([]OrderSummary, error) {
	orders, err := s.orderRepo.FindForSupplier(ctx, supplierUserID)
	if err != nil {
		return nil, err
	}
	summaries := make([]OrderSummary, len(orders))
	for i := range orders {
		summaries[i] = OrderSummary{Order: &orders[i], Total: orders[i].Total()}
	}
	return summaries, nil
}

// notifyBuyer is fire-and-forget, matching order placement.
func (s *FulfillmentService) notifyBuyer(ctx context.Context, o *order.Order) {
	user, err := s.userRepo.FindByID(ctx, o.UserID)
	if err != nil {
		s.logger.Warn("buyer lookup for notification failed",
			zap.Uint("user_id", o.UserID), zap.Error(err))
		return
	}
	body := fmt.Sprintf("Your order from %s is now %s.",
		o.CreatedAt.Format("2006-01-02 15:04"), o.State.Label())
	if err := s.notifier.Notify(ctx, user.Email, "Order status update", body); err != nil {
		s.logger.Warn("buyer notification failed",
			zap.Uint("user_id", o.UserID), zap.Error(err))
	}
}
