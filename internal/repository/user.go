// Package repository implements lookup and persistence helpers over the
// store's collection snapshots.
//
// Every call re-fetches and scans the full collection: there is no
// caching and no indexing. That is deliberate: the store is the sole
// owner of the data and collection sizes are small. Concurrent fetches
// of the same collection are collapsed through singleflight so that two
// overlapping actions observe one consistent snapshot read.
package repository

import (
	"context"
	"strings"

	"lanagram/internal/models"
	"lanagram/internal/store"

	"golang.org/x/sync/singleflight"
)

// UserRepository defines lookup and persistence operations for users.
// Lookup misses return (nil, nil); callers decide whether a miss is a
// render-time skip or a mutation-time abort.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// UpdateAll replaces the given records in the collection and
	// persists ONE full snapshot, so related changes (both sides of a
	// follow) commit atomically per store write.
	UpdateAll(ctx context.Context, users ...*models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	store store.Store
	group singleflight.Group
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	v, err, _ := r.group.Do(store.KeyUsers, func() (any, error) {
		return r.store.Users(ctx)
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]models.User)
	// Hand each caller its own slice header; collapsed callers must not
	// see each other's in-place edits.
	users := make([]models.User, len(shared))
	copy(users, shared)
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Name, name) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.SaveUsers(ctx, users)
}

func (r *userRepository) UpdateAll(ctx context.Context, updated ...*models.User) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	for _, u := range updated {
		replaced := false
		for i := range users {
			if users[i].ID == u.ID {
				users[i] = *u
				replaced = true
				break
			}
		}
		if !replaced {
			return models.NewNotFoundError("User", u.ID)
		}
	}
	return r.store.SaveUsers(ctx, users)
}
