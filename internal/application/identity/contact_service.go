package identity

import (
	"context"
	"strconv"
	"strings"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ContactService manages buyer delivery contacts.
type ContactService struct {
	contactRepo identity.ContactRepository
	logger      *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo identity.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{contactRepo: contactRepo, logger: logger}
}

// List returns the user's contacts.
func (s *ContactService) List(ctx context.Context, userID uint) ([]identity.Contact, error) {
	return s.contactRepo.FindAllForUser(ctx, userID)
}

// Create adds a delivery contact.
func (s *ContactService) Create(ctx context.Context, userID uint, input ContactInput) (*identity.Contact, error) {
	contact, err := identity.NewContact(
		userID,
		input.City, input.Street,
		input.House, input.Structure, input.Building, input.Apartment,
		input.Phone,
	)
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update replaces the fields of an existing contact owned by the user.
func (s *ContactService) Update(ctx context.Context, userID, contactID uint, input ContactInput) (*identity.Contact, error) {
	contact, err := s.contactRepo.FindByIDForUser(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	contact.City = input.City
	contact.Street = input.Street
	contact.House = input.House
	contact.Structure = input.Structure
	contact.Building = input.Building
	contact.Apartment = input.Apartment
	contact.Phone = input.Phone
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes the contacts named by a comma-separated id list,
// skipping ids that are not the user's. Returns the number removed.
func (s *ContactService) Delete(ctx context.Context, userID uint, itemsCSV string) (int64, error) {
	ids, err := ParseIDList(itemsCSV)
	if err != nil {
		return 0, err
	}
	deleted, err := s.contactRepo.DeleteForUser(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("contacts deleted", zap.Uint("user_id", userID), zap.Int64("count", deleted))
	return deleted, nil
}

// ParseIDList parses a comma-separated list of positive integer ids.
func ParseIDList(csv string) ([]uint, error) {
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Items must be a comma-separated list of ids")
		}
		ids = append(ids, uint(id))
	}
	if len(ids) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Items must be a comma-separated list of ids")
	}
	return ids, nil
}
