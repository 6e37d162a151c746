package identity

import "context"

// UserRepository provides access to user accounts
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// ContactRepository provides access to buyer delivery contacts
type ContactRepository interface {
	FindByIDForUser(ctx context.Context, userID, id uint) (*Contact, error)
	FindAllForUser(ctx context.Context, userID uint) ([]Contact, error)
	Save(ctx context.Context, contact *Contact) error
	DeleteForUser(ctx context.Context, userID uint, ids []uint) (int64, error)
}
