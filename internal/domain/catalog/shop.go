package catalog

import "github.com/procure/backend/internal/domain/shared"

// Shop is a supplier's storefront. Each supplier account owns at most
// one shop; the shop owns its offers outright.
type Shop struct {
	shared.BaseEntity
	UserID    uint   `gorm:"not null;uniqueIndex" json:"-"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Accepting bool   `gorm:"not null;default:true" json:"state"`
}

// TableName returns the table name for GORM
func (Shop) TableName() string {
	return "shops"
}

// NewShop creates a shop owned by a supplier user.
func NewShop(userID uint, name string) (*Shop, error) {
	if userID == 0 {
		return nil, shared.ErrUnauthorized
	}
	if name == "" {
		name = "Unnamed shop"
	}
	return &Shop{UserID: userID, Name: name, Accepting: true}, nil
}

// Rename updates the display name, keeping the old one on empty input.
func (s *Shop) Rename(name string) {
	if name != "" {
		s.Name = name
	}
}

// SetAccepting toggles whether the shop takes new orders.
func (s *Shop) SetAccepting(accepting bool) {
	s.Accepting = accepting
}
