package service

import (
	"context"
	"strings"

	"lanagram/internal/lock"
	"lanagram/internal/models"
	"lanagram/internal/observability"
	"lanagram/internal/repository"
	"lanagram/internal/upload"
	"lanagram/internal/validation"
)

// UserService provides follow and profile-editing business logic.
type UserService struct {
	userRepo repository.UserRepository
	locks    *lock.Keyed
}

// UpdateProfileInput carries the edit-profile form fields. A nil Avatar
// leaves the current picture untouched.
type UpdateProfileInput struct {
	UserID string `validate:"required"`
	Name   string `validate:"required"`
	Bio    string
	Avatar *upload.File
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, locks *lock.Keyed) *UserService {
	return &UserService{userRepo: userRepo, locks: locks}
}

// ToggleFollow makes userID follow targetID, or unfollow if already
// following. Both relation sets are updated together and persisted in a
// single snapshot write so they stay mutual inverses. Returns whether
// userID follows targetID afterwards.
func (s *UserService) ToggleFollow(ctx context.Context, userID, targetID string) (bool, error) {
	ctx, span := observability.TraceServiceCall(ctx, "UserService", "ToggleFollow")
	defer span.End()

	if userID == targetID {
		return false, models.NewValidationError("You cannot follow yourself.")
	}

	unlock := s.locks.Lock(userID, targetID)
	defer unlock()

	follower, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if follower == nil {
		return false, models.NewDataInconsistencyError("Your account record is missing. Please log in again.")
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, models.NewNotFoundError("User", targetID)
	}

	following := !follower.IsFollowing(targetID)
	if following {
		follower.Following = append(follower.Following, targetID)
		target.Followers = append(target.Followers, userID)
	} else {
		follower.Following = removeID(follower.Following, targetID)
		target.Followers = removeID(target.Followers, userID)
	}

	if err := s.userRepo.UpdateAll(ctx, follower, target); err != nil {
		return false, err
	}
	observability.LogAction(ctx, "toggle_follow", map[string]any{
		"userId":    userID,
		"targetId":  targetID,
		"following": following,
	})
	return following, nil
}

// UpdateProfile applies the edit-profile form: name (required, unique),
// bio, and an optional new avatar image.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	ctx, span := observability.TraceServiceCall(ctx, "UserService", "UpdateProfile")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError("Name must not be empty.")
	}
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	unlock := s.locks.Lock(in.UserID)
	defer unlock()

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewDataInconsistencyError("Your account record is missing. Please log in again.")
	}

	if !strings.EqualFold(in.Name, user.Name) {
		existing, err := s.userRepo.GetByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewValidationError("This name is already taken.")
		}
	}

	user.Name = in.Name
	user.Bio = in.Bio
	if in.Avatar != nil {
		avatarURL, err := upload.EncodeDataURI(in.Avatar)
		if err != nil {
			return nil, err
		}
		user.ProfilePic = avatarURL
	}

	if err := s.userRepo.UpdateAll(ctx, user); err != nil {
		return nil, err
	}
	observability.LogAction(ctx, "update_profile", map[string]any{"userId": user.ID})
	return user, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
