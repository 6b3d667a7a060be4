package app

import (
	"context"

	"lanagram/internal/service"
	"lanagram/internal/state"
	"lanagram/internal/upload"
)

// handlers builds a fresh callback set bound to the current state. The
// renderer must only invoke callbacks from its latest frame.
func (c *Controller) handlers(ctx context.Context) *Handlers {
	return &Handlers{
		Login:    func(email, password string) { c.Login(ctx, email, password) },
		Register: func(name, email, password, confirm string) { c.Register(ctx, name, email, password, confirm) },
		Logout:   func() { c.Logout(ctx) },

		ShowLogin:    func() { c.ShowLogin(ctx) },
		ShowRegister: func() { c.ShowRegister(ctx) },

		SwitchPane:  func(p state.Pane) { c.SwitchPane(ctx, p) },
		OpenProfile: func(userID string) { c.OpenProfile(ctx, userID) },
		SetQuery:    func(query string) { c.SetQuery(ctx, query) },

		OpenUpload:      func() { c.OpenUpload(ctx) },
		SubmitPost:      func(caption string, file *upload.File) { c.SubmitPost(ctx, caption, file) },
		ToggleLike:      func(postID string) { c.ToggleLike(ctx, postID) },
		OpenComments:    func(postID string) { c.OpenComments(ctx, postID) },
		SubmitComment:   func(text string) { c.SubmitComment(ctx, text) },
		ToggleFollow:    func(targetID string) { c.ToggleFollow(ctx, targetID) },
		ShowFollowList:  func(kind state.FollowListKind, userID string) { c.ShowFollowList(ctx, kind, userID) },
		OpenEditProfile: func() { c.OpenEditProfile(ctx) },
		SaveProfile:     func(name, bio string, avatar *upload.File) { c.SaveProfile(ctx, name, bio, avatar) },
		CloseModal:      func() { c.CloseModal(ctx) },
	}
}

// Login authenticates and, on success, enters the app on the feed.
func (c *Controller) Login(ctx context.Context, email, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.auth.Login(ctx, service.LoginInput{Email: email, Password: password})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.st.SessionUser = user
	c.st.View = state.ViewApp
	c.st.Pane = state.PaneFeed
	c.st.ViewingProfileID = ""
	c.st.CloseModal()
	c.render(ctx)
}

// Register creates the account and returns to the login screen; the new
// user signs in explicitly.
func (c *Controller) Register(ctx context.Context, name, email, password, confirm string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.auth.Register(ctx, service.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.st.View = state.ViewLogin
	c.render(ctx)
}

// Logout clears the session and returns to the login screen.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.auth.Logout(ctx); err != nil {
		c.fail(ctx, err)
		return
	}
	c.st.ResetSession()
	c.searchQuery = ""
	c.render(ctx)
}

// ShowLogin switches the auth screen to the login form.
func (c *Controller) ShowLogin(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.View = state.ViewLogin
	c.render(ctx)
}

// ShowRegister switches the auth screen to the registration form.
func (c *Controller) ShowRegister(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.View = state.ViewRegister
	c.render(ctx)
}

// SwitchPane changes the active pane. Navigating to the profile pane
// this way always shows the session user's own profile.
func (c *Controller) SwitchPane(ctx context.Context, p state.Pane) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.Pane = p
	if p == state.PaneProfile {
		c.st.ViewingProfileID = ""
	}
	c.st.CloseModal()
	c.render(ctx)
}

// OpenProfile navigates to the given user's profile pane.
func (c *Controller) OpenProfile(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.Pane = state.PaneProfile
	if userID == c.st.SessionUserID() {
		c.st.ViewingProfileID = ""
	} else {
		c.st.ViewingProfileID = userID
	}
	c.st.CloseModal()
	c.render(ctx)
}

// SetQuery updates the search query and re-renders the search pane.
func (c *Controller) SetQuery(ctx context.Context, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchQuery = query
	c.st.Pane = state.PaneSearch
	c.render(ctx)
}

// OpenUpload opens the new-post modal.
func (c *Controller) OpenUpload(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.ActiveModal = state.ModalUpload
	c.render(ctx)
}

// SubmitPost creates a post from the upload modal and lands on the feed.
func (c *Controller) SubmitPost(ctx context.Context, caption string, file *upload.File) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.posts.CreatePost(ctx, service.CreatePostInput{
		UserID:  c.st.SessionUserID(),
		Caption: caption,
		File:    file,
	})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.st.CloseModal()
	c.st.Pane = state.PaneFeed
	c.render(ctx)
}

// ToggleLike flips the session user's like on a post.
func (c *Controller) ToggleLike(ctx context.Context, postID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.posts.ToggleLike(ctx, c.st.SessionUserID(), postID); err != nil {
		c.fail(ctx, err)
		return
	}
	c.render(ctx)
}

// OpenComments opens the comment modal for a post.
func (c *Controller) OpenComments(ctx context.Context, postID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.ActiveModal = state.ModalComment
	c.st.CommentingPostID = postID
	c.render(ctx)
}

// SubmitComment adds a comment to the post the modal points at.
func (c *Controller) SubmitComment(ctx context.Context, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.posts.AddComment(ctx, service.AddCommentInput{
		UserID: c.st.SessionUserID(),
		PostID: c.st.CommentingPostID,
		Text:   text,
	})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.render(ctx)
}

// ToggleFollow flips the follow relation towards targetID and refreshes
// the session snapshot so counts and buttons update immediately.
func (c *Controller) ToggleFollow(ctx context.Context, targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.users.ToggleFollow(ctx, c.st.SessionUserID(), targetID); err != nil {
		c.fail(ctx, err)
		return
	}
	if err := c.refreshSession(ctx); err != nil {
		c.fail(ctx, err)
		return
	}
	c.render(ctx)
}

// ShowFollowList opens the followers/following modal for a user.
func (c *Controller) ShowFollowList(ctx context.Context, kind state.FollowListKind, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.ActiveModal = state.ModalFollowList
	c.st.FollowList = state.FollowListQuery{Kind: kind, UserID: userID}
	c.render(ctx)
}

// OpenEditProfile switches to the edit-profile pane.
func (c *Controller) OpenEditProfile(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.Pane = state.PaneEditProfile
	c.st.ViewingProfileID = ""
	c.st.CloseModal()
	c.render(ctx)
}

// SaveProfile applies the edit-profile form and returns to the session
// user's own profile.
func (c *Controller) SaveProfile(ctx context.Context, name, bio string, avatar *upload.File) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.users.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID: c.st.SessionUserID(),
		Name:   name,
		Bio:    bio,
		Avatar: avatar,
	})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if err := c.refreshSession(ctx); err != nil {
		c.fail(ctx, err)
		return
	}
	c.st.Pane = state.PaneProfile
	c.st.ViewingProfileID = ""
	c.render(ctx)
}

// CloseModal dismisses the active overlay.
func (c *Controller) CloseModal(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.CloseModal()
	c.render(ctx)
}

// State returns a copy of the current view-state, for tests and
// debugging tools.
func (c *Controller) State() state.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.st
}
