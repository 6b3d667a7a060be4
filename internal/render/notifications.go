package render

import (
	"context"

	"lanagram/internal/state"
)

// NotificationKind distinguishes like and comment notifications.
type NotificationKind string

const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
)

// commentExcerptLen caps the comment preview shown in a notification.
const commentExcerptLen = 20

// Notification is one synthesized notification entry.
type Notification struct {
	Kind         NotificationKind
	ActorID      string
	ActorName    string
	ActorAvatar  string
	PostID       string
	PostImageURL string
	Excerpt      string
}

// NotificationsView is the notifications pane.
type NotificationsView struct {
	Items        []Notification
	EmptyMessage string
}

// Notifications synthesizes entries on the fly from the session user's
// own posts' likes and comments; there is no persisted notification
// log. The user's own likes and comments on their own posts are
// suppressed, as are actors whose records have gone missing.
func (p *Projector) Notifications(ctx context.Context, st *state.ViewState) (*NotificationsView, error) {
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

	view := &NotificationsView{}
	sessionID := st.SessionUserID()
	for i := range posts {
		if posts[i].UserID != sessionID {
			continue
		}
		for _, likerID := range posts[i].Likes {
			if likerID == sessionID {
				continue
			}
			idx, ok := byID[likerID]
			if !ok {
				continue
			}
			view.Items = append(view.Items, Notification{
				Kind:         NotificationLike,
				ActorID:      users[idx].ID,
				ActorName:    users[idx].Name,
				ActorAvatar:  users[idx].ProfilePic,
				PostID:       posts[i].ID,
				PostImageURL: posts[i].ImageURL,
			})
		}
		for _, c := range posts[i].Comments {
			if c.UserID == sessionID {
				continue
			}
			idx, ok := byID[c.UserID]
			if !ok {
				continue
			}
			view.Items = append(view.Items, Notification{
				Kind:         NotificationComment,
				ActorID:      users[idx].ID,
				ActorName:    users[idx].Name,
				ActorAvatar:  users[idx].ProfilePic,
				PostID:       posts[i].ID,
				PostImageURL: posts[i].ImageURL,
				Excerpt:      excerpt(c.Text),
			})
		}
	}

	if len(view.Items) == 0 {
		view.EmptyMessage = "No new notifications."
	}
	return view, nil
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > commentExcerptLen {
		runes = runes[:commentExcerptLen]
	}
	return string(runes) + "..."
}
