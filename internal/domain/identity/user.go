package identity

import (
	"strings"

	"github.com/procure/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserType distinguishes buyers from supplier (shop) accounts
type UserType string

const (
	UserTypeBuyer UserType = "buyer"
	UserTypeShop  UserType = "shop"
)

// IsValid checks if the type is a known UserType
func (t UserType) IsValid() bool {
	return t == UserTypeBuyer || t == UserTypeShop
}

// User represents a registered account. A buyer owns contacts and
// orders; a shop account owns at most one Shop.
type User struct {
	shared.BaseEntity
	Email        string   `gorm:"type:varchar(254);not null;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"type:varchar(128);not null" json:"-"`
	FirstName    string   `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string   `gorm:"type:varchar(100);not null" json:"last_name"`
	Company      string   `gorm:"type:varchar(120)" json:"company"`
	Position     string   `gorm:"type:varchar(60)" json:"position"`
	Type         UserType `gorm:"type:varchar(10);not null;default:'buyer'" json:"type"`
	Active       bool     `gorm:"not null;default:true" json:"active"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a bcrypt-hashed password.
func NewUser(email, password, firstName, lastName, company, position string, userType UserType) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "A valid email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "First and last name are required")
	}
	if !userType.IsValid() {
		userType = UserTypeBuyer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Company:      company,
		Position:     position,
		Type:         userType,
		Active:       true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the stored password hash.
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// IsShop reports whether the user is a supplier account.
func (u *User) IsShop() bool {
	return u.Type == UserTypeShop
}
