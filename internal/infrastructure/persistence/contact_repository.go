package persistence

import (
	"context"
	"errors"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContactRepository implements identity.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// FindByIDForUser finds a contact owned by the user
func (r *GormContactRepository) FindByIDForUser(ctx context.Context, userID, id uint) (*identity.Contact, error) {
	var contact identity.Contact
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindAllForUser lists the user's contacts
func (r *GormContactRepository) FindAllForUser(ctx context.Context, userID uint) ([]identity.Contact, error) {
	var contacts []identity.Contact
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Save persists a contact
func (r *GormContactRepository) Save(ctx context.Context, contact *identity.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// DeleteForUser removes the user's contacts with the given ids,
// ignoring ids that are absent or foreign.
func (r *GormContactRepository) DeleteForUser(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&identity.Contact{})
	return res.RowsAffected, res.Error
}
