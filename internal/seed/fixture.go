// Package seed provides fixture and demo data for development and
// testing.
package seed

import (
	"context"

	"lanagram/internal/models"
	"lanagram/internal/repository"
)

// Fixture account constants. The ID is stable so re-running the seeder
// never duplicates the account.
const (
	FixtureUserID   = "special_user_lana"
	FixtureName     = "Lana"
	FixtureEmail    = "lana@special.user"
	FixturePassword = "123456"
)

// EnsureFixture creates the fixture account if it does not exist yet.
// It is idempotent and safe to call on every startup.
func EnsureFixture(ctx context.Context, users repository.UserRepository) (*models.User, error) {
	existing, err := users.GetByID(ctx, FixtureUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	lana := &models.User{
		ID:            FixtureUserID,
		Name:          FixtureName,
		Email:         FixtureEmail,
		Password:      FixturePassword,
		IsVerified:    true,
		BaseFollowers: 10373020,
		BaseFollowing: 150,
		ProfilePic:    "https://images.unsplash.com/photo-1544005313-94ddf0286de2?q=80&w=1974&auto=format&fit=crop",
		Bio:           "Akun resmi.",
		Followers:     []string{},
		Following:     []string{},
	}
	if err := users.Create(ctx, lana); err != nil {
		return nil, err
	}
	return lana, nil
}
