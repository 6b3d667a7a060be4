package app

import (
	"lanagram/internal/render"
	"lanagram/internal/state"
	"lanagram/internal/upload"
)

// ViewModel is everything the renderer needs for one frame. Only the
// fields relevant to the current view are populated.
type ViewModel struct {
	View  state.View
	Pane  state.Pane
	Modal state.Modal

	// Error is the message of the action that just failed, if any. It
	// is shown once and cleared on the next successful action.
	Error string

	Navigation    *render.NavigationView
	Feed          *render.FeedView
	Profile       *render.ProfileView
	EditProfile   *render.EditProfileView
	Search        *render.SearchView
	Notifications *render.NotificationsView
	CommentThread *render.CommentThreadView
	FollowList    *render.FollowListView
}

// Handlers is the set of callbacks wired into one frame. A fresh set is
// built for every render so each closure is bound to the state that
// produced the frame, never to a stale one.
type Handlers struct {
	Login    func(email, password string)
	Register func(name, email, password, confirm string)
	Logout   func()

	ShowLogin    func()
	ShowRegister func()

	SwitchPane  func(p state.Pane)
	OpenProfile func(userID string)
	SetQuery    func(query string)

	OpenUpload      func()
	SubmitPost      func(caption string, file *upload.File)
	ToggleLike      func(postID string)
	OpenComments    func(postID string)
	SubmitComment   func(text string)
	ToggleFollow    func(targetID string)
	ShowFollowList  func(kind state.FollowListKind, userID string)
	OpenEditProfile func()
	SaveProfile     func(name, bio string, avatar *upload.File)
	CloseModal      func()
}

// Frame is one complete render: the view-model plus the handlers bound
// to it.
type Frame struct {
	Model    *ViewModel
	Handlers *Handlers
}

// Renderer consumes frames. The terminal UI, a snapshot test, or a
// no-op sink all satisfy it.
type Renderer interface {
	Render(frame *Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(frame *Frame)

func (f RendererFunc) Render(frame *Frame) { f(frame) }
