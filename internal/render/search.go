package render

import (
	"context"
	"fmt"
	"strings"

	"lanagram/internal/state"
)

// SearchResult is one matched user card.
type SearchResult struct {
	UserID        string
	Name          string
	Verified      bool
	AvatarURL     string
	FollowerCount int
}

// SearchView is the search pane for one query.
type SearchView struct {
	Query        string
	Results      []SearchResult
	EmptyMessage string
}

// Search renders case-insensitive substring matches on user names.
// An empty query yields zero results, not the full user list, and the
// session user never appears in their own results.
func (p *Projector) Search(ctx context.Context, st *state.ViewState, query string) (*SearchView, error) {
	view := &SearchView{Query: query}

	if query != "" {
		users, err := p.users.List(ctx)
		if err != nil {
			return nil, err
		}
		needle := strings.ToLower(query)
		sessionID := st.SessionUserID()
		for i := range users {
			if users[i].ID == sessionID {
				continue
			}
			if !strings.Contains(strings.ToLower(users[i].Name), needle) {
				continue
			}
			view.Results = append(view.Results, SearchResult{
				UserID:        users[i].ID,
				Name:          users[i].Name,
				Verified:      users[i].IsVerified,
				AvatarURL:     users[i].ProfilePic,
				FollowerCount: users[i].FollowerCount(),
			})
		}
	}

	if len(view.Results) == 0 {
		view.EmptyMessage = fmt.Sprintf("No results for %q", query)
	}
	return view, nil
}
