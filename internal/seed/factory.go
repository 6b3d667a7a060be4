package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"lanagram/internal/models"
	"lanagram/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Options configuration for the demo seeder.
type Options struct {
	NumUsers int
	NumPosts int
	// MaxDays spreads post timestamps over this many days back.
	MaxDays int
	// Seed fixes the random source; 0 means time-based.
	Seed int64
}

// Factory builds demo users and posts and persists them through the
// repositories, so demo data obeys the same write path as the app.
type Factory struct {
	users repository.UserRepository
	posts repository.PostRepository
	rng   *rand.Rand
	opts  Options
}

// NewFactory creates a new Factory bound to the given repositories.
func NewFactory(users repository.UserRepository, posts repository.PostRepository, opts Options) *Factory {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	//nolint:gosec // weak randomness is fine for demo data
	return &Factory{users: users, posts: posts, rng: rand.New(rand.NewSource(seed)), opts: opts}
}

// CreateUser constructs and persists a demo user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	name := fmt.Sprintf("%s %s", gofakeit.FirstName(), gofakeit.LastName())
	user := &models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      fmt.Sprintf("%s%d@gmail.com", strings.ToLower(gofakeit.Username()), gofakeit.Number(100, 999)),
		Password:   "password123",
		Bio:        gofakeit.Sentence(10),
		ProfilePic: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", uuid.NewString()),
		Followers:  []string{},
		Following:  []string{},
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a demo post for the given user,
// with a timestamp spread back over the configured range.
func (f *Factory) CreatePost(ctx context.Context, user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	created := time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Caption:   gofakeit.Sentence(8),
		ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Timestamp: created.UnixMilli(),
		Likes:     []string{},
		Comments:  []models.Comment{},
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Mesh seeds a small social graph: users, posts, a sprinkling of
// follows, likes, and comments. Follow edges are written pairwise so
// the relation sets stay mutual inverses.
func (f *Factory) Mesh(ctx context.Context) error {
	users := make([]*models.User, 0, f.opts.NumUsers)
	for i := 0; i < f.opts.NumUsers; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, f.opts.NumPosts)
	for i := 0; i < f.opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(ctx, author)
		if err != nil {
			return fmt.Errorf("seed post: %w", err)
		}
		posts = append(posts, post)
	}

	for _, follower := range users {
		for _, target := range users {
			if follower.ID == target.ID || f.rng.Float32() > 0.2 {
				continue
			}
			if follower.IsFollowing(target.ID) {
				continue
			}
			follower.Following = append(follower.Following, target.ID)
			target.Followers = append(target.Followers, follower.ID)
			if err := f.users.UpdateAll(ctx, follower, target); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	for _, post := range posts {
		changed := false
		for _, user := range users {
			if user.ID != post.UserID && f.rng.Float32() < 0.3 {
				post.Likes = append(post.Likes, user.ID)
				changed = true
			}
			if user.ID != post.UserID && f.rng.Float32() < 0.1 {
				post.Comments = append(post.Comments, models.Comment{
					UserID:    user.ID,
					Text:      gofakeit.Sentence(6),
					Timestamp: post.Timestamp + int64(f.rng.Intn(86_400_000)),
				})
				changed = true
			}
		}
		if changed {
			if err := f.posts.Update(ctx, post); err != nil {
				return fmt.Errorf("seed engagement: %w", err)
			}
		}
	}
	return nil
}
