package identity

import "github.com/procure/backend/internal/domain/shared"

// Contact is a buyer's delivery address with a phone number.
// Orders leaving the basket state must reference one.
type Contact struct {
	shared.BaseEntity
	UserID    uint   `gorm:"not null;index" json:"-"`
	City      string `gorm:"type:varchar(50);not null" json:"city"`
	Street    string `gorm:"type:varchar(100);not null" json:"street"`
	House     string `gorm:"type:varchar(15)" json:"house"`
	Structure string `gorm:"type:varchar(15)" json:"structure"`
	Building  string `gorm:"type:varchar(15)" json:"building"`
	Apartment string `gorm:"type:varchar(15)" json:"apartment"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a delivery contact for a user.
func NewContact(userID uint, city, street, house, structure, building, apartment, phone string) (*Contact, error) {
	if userID == 0 {
		return nil, shared.ErrUnauthorized
	}
	if city == "" || street == "" || phone == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "City, street and phone are required")
	}
	return &Contact{
		UserID:    userID,
		City:      city,
		Street:    street,
		House:     house,
		Structure: structure,
		Building:  building,
		Apartment: apartment,
		Phone:     phone,
	}, nil
}
