package repository

import (
	"context"

	"lanagram/internal/models"
	"lanagram/internal/store"

	"golang.org/x/sync/singleflight"
)

// PostRepository defines lookup and persistence operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	List(ctx context.Context) ([]models.Post, error)
}

type postRepository struct {
	store store.Store
	group singleflight.Group
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(s store.Store) PostRepository {
	return &postRepository{store: s}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	v, err, _ := r.group.Do(store.KeyPosts, func() (any, error) {
		return r.store.Posts(ctx)
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]models.Post)
	posts := make([]models.Post, len(shared))
	copy(posts, shared)
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	posts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	posts, err := r.store.Posts(ctx)
	if err != nil {
		return err
	}
	posts = append(posts, *post)
	return r.store.SavePosts(ctx, posts)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	posts, err := r.store.Posts(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return r.store.SavePosts(ctx, posts)
		}
	}
	return models.NewNotFoundError("Post", post.ID)
}
