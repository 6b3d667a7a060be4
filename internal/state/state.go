// Package state holds the client's view-state: a single mutable record
// describing what the UI currently shows.
//
// The value is owned by the app controller and passed explicitly; there
// are no package-level globals. Only the mutation layer transitions it,
// the render layer never writes it. There is no history or undo.
package state

import "lanagram/internal/models"

// View is the top-level screen.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewApp      View = "app"
)

// Pane is one of the mutually exclusive main content views.
type Pane string

const (
	PaneFeed          Pane = "feed"
	PaneSearch        Pane = "search"
	PaneProfile       Pane = "profile"
	PaneEditProfile   Pane = "edit-profile"
	PaneNotifications Pane = "notifications"
)

// Modal identifies the active overlay, if any.
type Modal string

const (
	ModalNone       Modal = ""
	ModalUpload     Modal = "upload"
	ModalComment    Modal = "comment"
	ModalFollowList Modal = "follow-list"
)

// FollowListKind selects which relation set the follow-list modal shows.
type FollowListKind string

const (
	FollowListFollowers FollowListKind = "followers"
	FollowListFollowing FollowListKind = "following"
)

// FollowListQuery addresses a relation set of one user.
type FollowListQuery struct {
	Kind   FollowListKind
	UserID string
}

// ViewState is the client's complete view-state.
//
// SessionUser is a denormalized snapshot of the logged-in user; the
// controller refreshes it after every mutation that could affect it.
// Everything else is an ID pointer into the repository, never a copy.
type ViewState struct {
	SessionUser      *models.User
	View             View
	Pane             Pane
	ViewingProfileID string
	ActiveModal      Modal
	CommentingPostID string
	FollowList       FollowListQuery
}

// New returns the initial view-state: anonymous, on the login screen.
func New() *ViewState {
	return &ViewState{View: ViewLogin, Pane: PaneFeed}
}

// SessionUserID returns the logged-in user's ID, or "" when anonymous.
func (s *ViewState) SessionUserID() string {
	if s.SessionUser == nil {
		return ""
	}
	return s.SessionUser.ID
}

// ProfileID returns the profile being viewed, defaulting to the session
// user's own profile.
func (s *ViewState) ProfileID() string {
	if s.ViewingProfileID != "" {
		return s.ViewingProfileID
	}
	return s.SessionUserID()
}

// CloseModal clears the active modal and its transient pointers.
func (s *ViewState) CloseModal() {
	s.ActiveModal = ModalNone
	s.CommentingPostID = ""
	s.FollowList = FollowListQuery{}
}

// ResetSession returns the state to the anonymous login screen.
func (s *ViewState) ResetSession() {
	s.SessionUser = nil
	s.View = ViewLogin
	s.Pane = PaneFeed
	s.ViewingProfileID = ""
	s.CloseModal()
}
