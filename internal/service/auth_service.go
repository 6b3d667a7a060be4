// Package service implements the mutation layer: every state change
// flows through one of these services, which validate first and only
// then touch the repositories.
package service

import (
	"context"
	"strings"

	"lanagram/internal/models"
	"lanagram/internal/observability"
	"lanagram/internal/repository"
	"lanagram/internal/store"
	"lanagram/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Sentinel login: typing this shorthand into the email field logs in as
// the fixture account without knowing its email.
const (
	sentinelShorthand = "lana"
	sentinelEmail     = "lana@special.user"
	fixtureName       = "Lana"
)

// AuthService provides registration, login, and session business logic.
type AuthService struct {
	userRepo repository.UserRepository
	sessions store.Store
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, sessions store.Store) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

// Register creates a new account. It never logs the account in: the
// user lands back on the login screen and signs in explicitly.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	ctx, span := observability.TraceServiceCall(ctx, "AuthService", "Register")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError("Please fill in all fields correctly.")
	}
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmailDomain(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.ConfirmPassword {
		return nil, models.NewValidationError("Passwords do not match.")
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("An account with this email already exists.")
	}
	if existing, err := s.userRepo.GetByName(ctx, in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("This name is already taken.")
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Followers: []string{},
		Following: []string{},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.LogAction(ctx, "register", map[string]any{"userId": user.ID})
	return user, nil
}

// Login authenticates by email and password and records the session.
// The sentinel shorthand resolves to the fixture account by name, so it
// keeps working even if that account's email is ever edited.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	ctx, span := observability.TraceServiceCall(ctx, "AuthService", "Login")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError("Please enter your email and password.")
	}

	var user *models.User
	var err error
	identifier := strings.ToLower(strings.TrimSpace(in.Email))
	if identifier == sentinelShorthand || identifier == sentinelEmail {
		user, err = s.userRepo.GetByName(ctx, fixtureName)
	} else {
		user, err = s.userRepo.GetByEmail(ctx, in.Email)
	}
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		return nil, models.NewValidationError("Invalid email or password.")
	}

	if err := s.sessions.SetSessionUserID(ctx, user.ID); err != nil {
		return nil, err
	}
	observability.LogAction(ctx, "login", map[string]any{"userId": user.ID})
	return user, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) error {
	ctx, span := observability.TraceServiceCall(ctx, "AuthService", "Logout")
	defer span.End()

	if err := s.sessions.SetSessionUserID(ctx, ""); err != nil {
		return err
	}
	observability.LogAction(ctx, "logout", nil)
	return nil
}

// CurrentUser resolves the persisted session to a user record. A nil
// user with nil error means no session. A session pointing at a missing
// record is cleared and reported as a data inconsistency: the caller
// must drop to the login screen.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	id, err := s.sessions.SessionUserID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.sessions.SetSessionUserID(ctx, "")
		return nil, models.NewDataInconsistencyError("Your session pointed at a deleted account. Please log in again.")
	}
	return user, nil
}
