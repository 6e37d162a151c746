package identity

import (
	"time"

	"github.com/procure/backend/internal/domain/identity"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Type      string `json:"type"`
}

// LoginInput carries credentials for token issuance.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	Token     string    `json:"Token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateDetailsInput carries a partial account update. Nil fields are
// left untouched.
type UpdateDetailsInput struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Position  *string `json:"position"`
}

// ContactInput carries a delivery contact create or update.
type ContactInput struct {
	City      string `json:"city" binding:"required"`
	Street    string `json:"street" binding:"required"`
	House     string `json:"house"`
	Structure string `json:"structure"`
	Building  string `json:"building"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone" binding:"required"`
}

// UserView is the account detail payload.
type UserView struct {
	ID        uint               `json:"id"`
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Company   string             `json:"company"`
	Position  string             `json:"position"`
	Type      identity.UserType  `json:"type"`
	Contacts  []identity.Contact `json:"contacts"`
}
