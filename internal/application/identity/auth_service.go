package identity

import (
	"context"
	"errors"
	"time"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration, login and account details.
type AuthService struct {
	userRepo    identity.UserRepository
	contactRepo identity.ContactRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	contactRepo identity.ContactRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		logger:      logger,
	}
}

// Register creates an account. Duplicate emails surface as a
// validation error on the email field rather than an integrity error.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserView, error) {
	user, err := identity.NewUser(
		input.Email,
		input.Password,
		input.FirstName,
		input.LastName,
		input.Company,
		input.Position,
		identity.UserType(input.Type),
	)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, shared.ErrIntegrity) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "A user with this email already exists")
		}
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("type", string(user.Type)),
	)
	return s.view(user, nil), nil
}

// Login verifies credentials and issues an access token. Wrong email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid email or password")
		}
		return nil, err
	}
	if !user.Active || !user.CheckPassword(input.Password) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid email or password")
	}

	token, expiresAt, err := s.jwtService.Generate(user)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.Uint("user_id", user.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Add(ctx, jti, ttl)
}

// Details returns the account profile with its delivery contacts.
func (s *AuthService) Details(ctx context.Context, userID uint) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(user, contacts), nil
}

// UpdateDetails applies a partial profile update.
func (s *AuthService) UpdateDetails(ctx context.Context, userID uint, input UpdateDetailsInput) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		if err := user.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Company != nil {
		user.Company = *input.Company
	}
	if input.Position != nil {
		user.Position = *input.Position
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, shared.ErrIntegrity) {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "A user with this email already exists")
		}
		return nil, err
	}
	return s.view(user, nil), nil
}

func (s *AuthService) view(user *identity.User, contacts []identity.Contact) *UserView {
	if contacts == nil {
		contacts = []identity.Contact{}
	}
	return &UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Position:  user.Position,
		Type:      user.Type,
		Contacts:  contacts,
	}
}
