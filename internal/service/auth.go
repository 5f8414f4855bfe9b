package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// UserRepository is the persistence surface the auth service needs
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
}

// AuthService handles registration, login, token refresh and profile updates
type AuthService struct {
	users        UserRepository
	jwtManager   *security.JWTManager
	profileGuard *security.UpdateValidator
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		users:        users,
		jwtManager:   jwtManager,
		profileGuard: security.NewUpdateValidator("name", "preferences"),
	}
}

// Register creates a new user account and issues its first token pair
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (*domain.User, *domain.TokenPair, error) {
	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, domain.ErrEmailTaken
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Preferences:  domain.DefaultPreferences(),
		Watchlist:    []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Login authenticates a user and returns a fresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.User, *domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if !security.CheckPassword(user.PasswordHash, input.Password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Both tokens
// are rotated on every call; the presented token is not recorded as spent.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	subject, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	return s.issueTokens(user)
}

// ResolvePrincipal looks up the user behind a verified token subject
func (s *AuthService) ResolvePrincipal(ctx context.Context, subject string) (*domain.User, error) {
	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile applies a partial update to the principal's profile.
// Only allow-listed fields may appear; one unknown key rejects everything.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, payload map[string]json.RawMessage) (*domain.User, error) {
	if err := s.profileGuard.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpdate, err)
	}

	for key, raw := range payload {
		switch key {
		case "name":
			if err := json.Unmarshal(raw, &user.Name); err != nil {
				return nil, fmt.Errorf("%w: invalid value for name", domain.ErrInvalidUpdate)
			}
		case "preferences":
			if err := json.Unmarshal(raw, &user.Preferences); err != nil {
				return nil, fmt.Errorf("%w: invalid value for preferences", domain.ErrInvalidUpdate)
			}
		}
	}

	if err := validate.Struct(user); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpdate, err)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issueTokens(user *domain.User) (*domain.TokenPair, error) {
	access, refresh, err := s.jwtManager.GenerateTokenPair(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Token: access, RefreshToken: refresh}, nil
}
