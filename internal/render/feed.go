package render

import (
	"context"
	"sort"

	"lanagram/internal/state"
)

// FeedPost is one rendered feed entry.
type FeedPost struct {
	PostID         string
	AuthorID       string
	AuthorName     string
	AuthorAvatar   string
	AuthorVerified bool
	ImageURL       string
	Caption        string
	LikeCount      int
	Liked          bool
	CommentCount   int
	Timestamp      int64
}

// FeedView is the main feed pane.
type FeedView struct {
	Posts        []FeedPost
	EmptyMessage string
}

// Feed renders every post, newest first. Posts whose author record is
// missing are silently skipped; the post itself stays in storage and
// remains reachable through the owning profile grid.
func (p *Projector) Feed(ctx context.Context, st *state.ViewState) (*FeedView, error) {
	posts, err := p.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := p.users.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(users))
	for i := range users {
		byID[users[i].ID] = i
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp > posts[j].Timestamp
	})

	view := &FeedView{Posts: make([]FeedPost, 0, len(posts))}
	sessionID := st.SessionUserID()
	for i := range posts {
		idx, ok := byID[posts[i].UserID]
		if !ok {
			continue
		}
		author := &users[idx]
		view.Posts = append(view.Posts, FeedPost{
			PostID:         posts[i].ID,
			AuthorID:       author.ID,
			AuthorName:     author.Name,
			AuthorAvatar:   author.ProfilePic,
			AuthorVerified: author.IsVerified,
			ImageURL:       posts[i].ImageURL,
			Caption:        posts[i].Caption,
			LikeCount:      len(posts[i].Likes),
			Liked:          posts[i].LikedBy(sessionID),
			CommentCount:   len(posts[i].Comments),
			Timestamp:      posts[i].Timestamp,
		})
	}

	if len(view.Posts) == 0 {
		view.EmptyMessage = "No posts yet. Follow other users or create your first post!"
	}
	return view, nil
}
