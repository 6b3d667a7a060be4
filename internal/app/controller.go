// Package app is the controller: it owns the view-state, routes user
// actions through the services, and re-renders a complete frame after
// every state change.
package app

import (
	"context"
	"errors"
	"sync"

	"lanagram/internal/models"
	"lanagram/internal/observability"
	"lanagram/internal/render"
	"lanagram/internal/service"
	"lanagram/internal/state"

	"go.opentelemetry.io/otel/attribute"
)

// Controller drives the application. All action methods serialize on
// one mutex: each action runs read-state, mutate, re-render as a unit.
type Controller struct {
	mu sync.Mutex

	st        *state.ViewState
	auth      *service.AuthService
	posts     *service.PostService
	users     *service.UserService
	projector *render.Projector
	renderer  Renderer

	searchQuery string
	lastError   string
}

// NewController wires the services and renderer into a controller with
// a fresh anonymous view-state.
func NewController(auth *service.AuthService, posts *service.PostService, users *service.UserService, projector *render.Projector, renderer Renderer) *Controller {
	return &Controller{
		st:        state.New(),
		auth:      auth,
		posts:     posts,
		users:     users,
		projector: projector,
		renderer:  renderer,
	}
}

// Start restores any persisted session and renders the first frame.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		// A broken session is cleared inside CurrentUser; land on login.
		c.st.ResetSession()
		c.render(ctx)
		return
	}
	if user != nil {
		c.st.SessionUser = user
		c.st.View = state.ViewApp
		c.st.Pane = state.PaneFeed
	}
	c.render(ctx)
}

// fail records the error for the next frame. A data inconsistency also
// drops the session: the state points at records that no longer exist.
func (c *Controller) fail(ctx context.Context, err error) {
	observability.LogActionError(ctx, "controller", err)
	c.lastError = errMessage(err)
	if models.CodeOf(err) == models.CodeDataInconsistency {
		_ = c.auth.Logout(ctx)
		c.st.ResetSession()
	}
	c.render(ctx)
}

// refreshSession reloads the session user's record after a mutation, so
// the denormalized snapshot in the view-state never goes stale.
func (c *Controller) refreshSession(ctx context.Context) error {
	if c.st.SessionUser == nil {
		return nil
	}
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewDataInconsistencyError("Your session expired. Please log in again.")
	}
	c.st.SessionUser = user
	return nil
}

// render builds the frame for the current state and hands it to the
// renderer. Render errors surface the same way action errors do, except
// a failed render never re-renders recursively: the frame carries the
// message instead.
func (c *Controller) render(ctx context.Context) {
	span, ctx := observability.NewSpan(ctx, "app.render")
	defer span.End()
	span.AddAttributes(
		attribute.String("view", string(c.st.View)),
		attribute.String("pane", string(c.st.Pane)),
	)

	model := &ViewModel{
		View:  c.st.View,
		Pane:  c.st.Pane,
		Modal: c.st.ActiveModal,
		Error: c.lastError,
	}
	c.lastError = ""

	if c.st.View == state.ViewApp {
		if err := c.populate(ctx, model); err != nil {
			span.SetError(err)
			model.Error = errMessage(err)
			if models.CodeOf(err) == models.CodeDataInconsistency {
				_ = c.auth.Logout(ctx)
				c.st.ResetSession()
				model.View = c.st.View
				model.Pane = c.st.Pane
				model.Modal = c.st.ActiveModal
			}
		}
	}

	c.renderer.Render(&Frame{Model: model, Handlers: c.handlers(ctx)})
}

func (c *Controller) populate(ctx context.Context, model *ViewModel) error {
	model.Navigation = c.projector.Navigation(c.st)

	var err error
	switch c.st.Pane {
	case state.PaneFeed:
		model.Feed, err = c.projector.Feed(ctx, c.st)
	case state.PaneSearch:
		model.Search, err = c.projector.Search(ctx, c.st, c.searchQuery)
	case state.PaneProfile:
		model.Profile, err = c.projector.Profile(ctx, c.st)
	case state.PaneEditProfile:
		model.EditProfile, err = c.projector.EditProfile(ctx, c.st)
	case state.PaneNotifications:
		model.Notifications, err = c.projector.Notifications(ctx, c.st)
	}
	if err != nil {
		return err
	}

	switch c.st.ActiveModal {
	case state.ModalComment:
		model.CommentThread, err = c.projector.CommentThread(ctx, c.st.CommentingPostID)
	case state.ModalFollowList:
		model.FollowList, err = c.projector.FollowList(ctx, c.st, c.st.FollowList)
	}
	return err
}

func errMessage(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}
