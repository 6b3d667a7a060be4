package render

import (
	"context"
	"sort"

	"lanagram/internal/models"
)

// CommentView is one rendered comment.
type CommentView struct {
	AuthorID       string
	AuthorName     string
	AuthorVerified bool
	AuthorAvatar   string
	Text           string
	Timestamp      int64
}

// CommentThreadView is the comment modal for one post.
type CommentThreadView struct {
	PostID   string
	Comments []CommentView
}

// CommentThread renders a post's comments, oldest first. Comments whose
// author record is missing are skipped.
func (p *Projector) CommentThread(ctx context.Context, postID string) (*CommentThreadView, error) {
	post, err := p.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	users, err := p.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(users))
	for i := range users {
		byID[users[i].ID] = i
	}

	comments := make([]models.Comment, len(post.Comments))
	copy(comments, post.Comments)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp < comments[j].Timestamp
	})

	view := &CommentThreadView{PostID: post.ID, Comments: make([]CommentView, 0, len(comments))}
	for _, c := range comments {
		idx, ok := byID[c.UserID]
		if !ok {
			continue
		}
		author := &users[idx]
		view.Comments = append(view.Comments, CommentView{
			AuthorID:       author.ID,
			AuthorName:     author.Name,
			AuthorVerified: author.IsVerified,
			AuthorAvatar:   author.ProfilePic,
			Text:           c.Text,
			Timestamp:      c.Timestamp,
		})
	}
	return view, nil
}
