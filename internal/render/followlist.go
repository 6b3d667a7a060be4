package render

import (
	"context"

	"lanagram/internal/models"
	"lanagram/internal/state"
)

// FollowEntry is one row of the follow-list modal.
type FollowEntry struct {
	UserID    string
	Name      string
	Verified  bool
	AvatarURL string
	Following bool
	IsSelf    bool
}

// FollowListView is the followers/following modal for one user.
type FollowListView struct {
	Kind         state.FollowListKind
	Title        string
	Entries      []FollowEntry
	EmptyMessage string
}

// FollowList renders the real members of a user's follower or following
// set. Cosmetic base counts are never expanded into entries here: a
// profile can display millions of followers while this list stays
// empty. Member ids with no matching record are skipped.
func (p *Projector) FollowList(ctx context.Context, st *state.ViewState, q state.FollowListQuery) (*FollowListView, error) {
	user, err := p.users.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", q.UserID)
	}

	view := &FollowListView{Kind: q.Kind}
	var ids []string
	if q.Kind == state.FollowListFollowers {
		view.Title = "Followers"
		ids = user.Followers
	} else {
		view.Title = "Following"
		ids = user.Following
	}

	users, err := p.users.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(users))
	for i := range users {
		byID[users[i].ID] = i
	}

	sessionID := st.SessionUserID()
	for _, id := range ids {
		idx, ok := byID[id]
		if !ok {
			continue
		}
		member := &users[idx]
		following := st.SessionUser != nil && st.SessionUser.IsFollowing(id)
		view.Entries = append(view.Entries, FollowEntry{
			UserID:    member.ID,
			Name:      member.Name,
			Verified:  member.IsVerified,
			AvatarURL: member.ProfilePic,
			Following: following,
			IsSelf:    id == sessionID,
		})
	}

	if len(view.Entries) == 0 && !(q.Kind == state.FollowListFollowers && user.BaseFollowers > 0) {
		view.EmptyMessage = "No users to show."
	}
	return view, nil
}
