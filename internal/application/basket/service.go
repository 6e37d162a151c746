// Package basket implements the buyer's cart: adding, updating and
// clearing lines on the single basket order every buyer owns.
package basket

import (
	"context"
	"errors"
	"fmt"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/order"
	"github.com/procure/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemInput is one requested basket line. The offer id travels as
// product_info on the wire.
type ItemInput struct {
	OfferID uint `json:"product_info" binding:"required"`
	// Zero is meaningful on update (delete the line), so no binding
	// requirement here.
	Quantity int `json:"quantity"`
}

// LineError reports why one line of a batch was rejected.
type LineError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// AddResult summarizes a best-effort add batch.
type AddResult struct {
	Created    int         `json:"created"`
	LineErrors []LineError `json:"errors,omitempty"`
}

// UpdateResult summarizes a best-effort update batch.
type UpdateResult struct {
	Affected   int64       `json:"affected"`
	LineErrors []LineError `json:"errors,omitempty"`
}

// Service manages basket contents.
type Service struct {
	orderRepo order.Repository
	offerRepo catalog.OfferRepository
	logger    *zap.Logger
}

// NewService creates a new basket Service
func NewService(orderRepo order.Repository, offerRepo catalog.OfferRepository, logger *zap.Logger) *Service {
	return &Service{orderRepo: orderRepo, offerRepo: offerRepo, logger: logger}
}

// View returns the basket with lines expanded. A buyer who never
// added anything gets an empty basket rather than an error.
func (s *Service) View(ctx context.Context, userID uint) (*order.Order, error) {
	basket, err := s.orderRepo.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &order.Order{UserID: userID, State: order.StateBasket, Items: []order.Item{}}, nil
		}
		return nil, err
	}
	if basket.Items == nil {
		basket.Items = []order.Item{}
	}
	return basket, nil
}

// AddItems inserts lines one at a time. Lines fail independently: a
// bad offer id or a duplicate line does not stop the rest of the
// batch.
func (s *Service) AddItems(ctx context.Context, userID uint, inputs []ItemInput) (*AddResult, error) {
	if len(inputs) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items are required")
	}

	basket, err := s.orderRepo.GetOrCreateBasket(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &AddResult{}
	for i, input := range inputs {
		if err := s.addLine(ctx, basket.ID, input); err != nil {
			result.LineErrors = append(result.LineErrors, LineError{Index: i, Message: err.Error()})
			continue
		}
		result.Created++
	}

	s.logger.Info("basket items added",
		zap.Uint("user_id", userID),
		zap.Int("created", result.Created),
		zap.Int("failed", len(result.LineErrors)),
	)
	return result, nil
}

func (s *Service) addLine(ctx context.Context, basketID uint, input ItemInput) error {
	item, err := order.NewItem(basketID, input.OfferID, input.Quantity)
	if err != nil {
		return err
	}
	if _, err := s.offerRepo.FindByID(ctx, input.OfferID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Offer %d does not exist", input.OfferID))
		}
		return err
	}
	if err := s.orderRepo.CreateItem(ctx, item); err != nil {
		if errors.Is(err, shared.ErrIntegrity) {
			return shared.NewDomainError("INTEGRITY_ERROR", fmt.Sprintf("Offer %d is already in the basket", input.OfferID))
		}
		return err
	}
	return nil
}

// UpdateItems overwrites quantities. A zero quantity deletes the
// line; pairs not present in the basket are silently skipped.
func (s *Service) UpdateItems(ctx context.Context, userID uint, inputs []ItemInput) (*UpdateResult, error) {
	if len(inputs) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items are required")
	}

	basket, err := s.orderRepo.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &UpdateResult{}, nil
		}
		return nil, err
	}

	result := &UpdateResult{}
	for i, input := range inputs {
		if input.Quantity < 0 {
			result.LineErrors = append(result.LineErrors, LineError{Index: i, Message: "Quantity cannot be negative"})
			continue
		}
		var affected int64
		if input.Quantity == 0 {
			affected, err = s.orderRepo.DeleteItem(ctx, basket.ID, input.OfferID)
		} else {
			affected, err = s.orderRepo.UpdateItemQuantity(ctx, basket.ID, input.OfferID, input.Quantity)
		}
		if err != nil {
			result.LineErrors = append(result.LineErrors, LineError{Index: i, Message: err.Error()})
			continue
		}
		result.Affected += affected
	}
	return result, nil
}

// RemoveAll clears the basket lines, keeping the order itself.
func (s *Service) RemoveAll(ctx context.Context, userID uint) (int64, error) {
	basket, err := s.orderRepo.FindBasket(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return s.orderRepo.DeleteAllItems(ctx, basket.ID)
}
