package service

import (
	"context"
	"strings"
	"time"

	"lanagram/internal/lock"
	"lanagram/internal/models"
	"lanagram/internal/observability"
	"lanagram/internal/repository"
	"lanagram/internal/upload"

	"github.com/google/uuid"
)

// PostService provides post creation, likes, and comments.
type PostService struct {
	postRepo repository.PostRepository
	locks    *lock.Keyed
}

// CreatePostInput carries the upload form fields.
type CreatePostInput struct {
	UserID  string `validate:"required"`
	Caption string
	File    *upload.File
}

// AddCommentInput carries the comment form fields.
type AddCommentInput struct {
	UserID string `validate:"required"`
	PostID string `validate:"required"`
	Text   string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, locks *lock.Keyed) *PostService {
	return &PostService{postRepo: postRepo, locks: locks}
}

// CreatePost encodes the selected image and persists a new post. An
// image is required; the caption may be empty. Encoding failures abort
// the action with no state change.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "CreatePost")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError("Missing user for post creation.")
	}
	if in.File == nil {
		return nil, models.NewValidationError("Please choose an image file.")
	}
	imageURL, err := upload.EncodeDataURI(in.File)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		ImageURL:  imageURL,
		Caption:   in.Caption,
		Timestamp: time.Now().UnixMilli(),
		Likes:     []string{},
		Comments:  []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.LogAction(ctx, "create_post", map[string]any{
		"userId": in.UserID,
		"postId": post.ID,
	})
	return post, nil
}

// ToggleLike adds the user to the post's like set, or removes them if
// already present. The read-modify-write is serialized per post so two
// rapid taps settle on a definite final state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "ToggleLike")
	defer span.End()

	unlock := s.locks.Lock(postID)
	defer unlock()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}

	if post.LikedBy(userID) {
		likes := post.Likes[:0:0]
		for _, id := range post.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, userID)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	observability.LogAction(ctx, "toggle_like", map[string]any{
		"userId": userID,
		"postId": postID,
		"liked":  post.LikedBy(userID),
	})
	return post, nil
}

// AddComment appends a comment to the post. Whitespace-only text is
// rejected before anything is read.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*models.Post, error) {
	ctx, span := observability.TraceServiceCall(ctx, "PostService", "AddComment")
	defer span.End()

	if err := validate.Struct(in); err != nil {
		return nil, models.NewValidationError("Missing post or user for comment.")
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment must not be empty.")
	}

	unlock := s.locks.Lock(in.PostID)
	defer unlock()

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	post.Comments = append(post.Comments, models.Comment{
		UserID:    in.UserID,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	})
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	observability.LogAction(ctx, "add_comment", map[string]any{
		"userId": in.UserID,
		"postId": in.PostID,
	})
	return post, nil
}
