package render

import (
	"lanagram/internal/state"
)

// NavItem is one navigation entry.
type NavItem struct {
	ID     string
	Icon   string
	Label  string
	Active bool
	// Upload opens the upload modal instead of switching panes.
	Upload bool
	// TargetUserID is set for the profile item: it navigates to the
	// session user's own profile.
	TargetUserID string
}

// NavigationView is the desktop/mobile navigation rail.
type NavigationView struct {
	Items []NavItem
}

// Navigation renders the five fixed navigation entries with the active
// pane highlighted.
func (p *Projector) Navigation(st *state.ViewState) *NavigationView {
	items := []NavItem{
		{ID: string(state.PaneFeed), Icon: "house", Label: "Home"},
		{ID: string(state.PaneSearch), Icon: "magnifying-glass", Label: "Search"},
		{ID: "upload", Icon: "plus-square", Label: "Create", Upload: true},
		{ID: string(state.PaneNotifications), Icon: "heart", Label: "Notifications"},
		{ID: string(state.PaneProfile), Icon: "user-circle", Label: "Profile", TargetUserID: st.SessionUserID()},
	}
	for i := range items {
		items[i].Active = items[i].ID == string(st.Pane)
	}
	return &NavigationView{Items: items}
}
