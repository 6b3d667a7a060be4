package render

import (
	"context"
	"sort"

	"lanagram/internal/models"
	"lanagram/internal/state"
)

// ProfileAction is the single action button on a profile.
type ProfileAction string

const (
	ProfileActionEdit     ProfileAction = "edit-profile"
	ProfileActionFollow   ProfileAction = "follow"
	ProfileActionUnfollow ProfileAction = "unfollow"
)

// ProfilePost is one tile in the profile post grid.
type ProfilePost struct {
	PostID    string
	ImageURL  string
	Timestamp int64
}

// ProfileView is the profile pane.
//
// FollowerCount and FollowingCount are display totals: the cosmetic
// base count plus the real relation set size. The follow-list modal
// shows only real members.
type ProfileView struct {
	UserID         string
	Name           string
	Verified       bool
	AvatarURL      string
	Bio            string
	PostCount      int
	FollowerCount  int
	FollowingCount int
	IsSelf         bool
	Action         ProfileAction
	Posts          []ProfilePost
}

// Profile renders the profile pane for the user the state points at.
func (p *Projector) Profile(ctx context.Context, st *state.ViewState) (*ProfileView, error) {
	userID := st.ProfileID()
	user, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", userID)
	}

	posts, err := p.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		UserID:         user.ID,
		Name:           user.Name,
		Verified:       user.IsVerified,
		AvatarURL:      user.ProfilePic,
		Bio:            user.Bio,
		FollowerCount:  user.FollowerCount(),
		FollowingCount: user.FollowingCount(),
		IsSelf:         user.ID == st.SessionUserID(),
	}

	if view.IsSelf {
		view.Action = ProfileActionEdit
	} else if st.SessionUser != nil && st.SessionUser.IsFollowing(user.ID) {
		view.Action = ProfileActionUnfollow
	} else {
		view.Action = ProfileActionFollow
	}

	for i := range posts {
		if posts[i].UserID != user.ID {
			continue
		}
		view.Posts = append(view.Posts, ProfilePost{
			PostID:    posts[i].ID,
			ImageURL:  posts[i].ImageURL,
			Timestamp: posts[i].Timestamp,
		})
	}
	view.PostCount = len(view.Posts)
	sort.SliceStable(view.Posts, func(i, j int) bool {
		return view.Posts[i].Timestamp > view.Posts[j].Timestamp
	})

	return view, nil
}

// EditProfileView is the edit-profile form, pre-filled from the session
// user's current record.
type EditProfileView struct {
	UserID    string
	Name      string
	Bio       string
	AvatarURL string
}

// EditProfile renders the edit-profile pane for the session user.
func (p *Projector) EditProfile(_ context.Context, st *state.ViewState) (*EditProfileView, error) {
	if st.SessionUser == nil {
		return nil, models.NewDataInconsistencyError("no active session for edit-profile")
	}
	return &EditProfileView{
		UserID:    st.SessionUser.ID,
		Name:      st.SessionUser.Name,
		Bio:       st.SessionUser.Bio,
		AvatarURL: st.SessionUser.ProfilePic,
	}, nil
}
