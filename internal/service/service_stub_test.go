package service

import (
	"context"

	"lanagram/internal/models"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, string) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	getByNameFn  func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateAllFn  func(context.Context, ...*models.User) error
	listFn       func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByName(ctx context.Context, name string) (*models.User, error) {
	return s.getByNameFn(ctx, name)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) UpdateAll(ctx context.Context, users ...*models.User) error {
	return s.updateAllFn(ctx, users...)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByNameFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateAllFn:  func(context.Context, ...*models.User) error { return nil },
		listFn:       func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

type postRepoStub struct {
	getByIDFn func(context.Context, string) (*models.Post, error)
	createFn  func(context.Context, *models.Post) error
	updateFn  func(context.Context, *models.Post) error
	listFn    func(context.Context) ([]models.Post, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn: func(context.Context, string) (*models.Post, error) { return nil, nil },
		createFn:  func(context.Context, *models.Post) error { return nil },
		updateFn:  func(context.Context, *models.Post) error { return nil },
		listFn:    func(context.Context) ([]models.Post, error) { return nil, nil },
	}
}

type sessionStoreStub struct {
	sessionID string
	setCalls  int
}

func (s *sessionStoreStub) Users(context.Context) ([]models.User, error)      { return nil, nil }
func (s *sessionStoreStub) SaveUsers(context.Context, []models.User) error    { return nil }
func (s *sessionStoreStub) Posts(context.Context) ([]models.Post, error)      { return nil, nil }
func (s *sessionStoreStub) SavePosts(context.Context, []models.Post) error    { return nil }
func (s *sessionStoreStub) SessionUserID(context.Context) (string, error)     { return s.sessionID, nil }
func (s *sessionStoreStub) Close() error                                      { return nil }
func (s *sessionStoreStub) SetSessionUserID(_ context.Context, id string) error {
	s.sessionID = id
	s.setCalls++
	return nil
}
