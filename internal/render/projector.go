// Package render projects (view-state, repository contents) into plain
// view-model records.
//
// Projections are deterministic and side-effect free: they re-read the
// repositories, never mutate state, and emit data structures rather
// than markup, so the presentation layer is swappable and the
// projections are testable without a display.
package render

import (
	"lanagram/internal/repository"
)

// Projector builds view models from the current repository contents.
type Projector struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewProjector returns a Projector over the given repositories.
func NewProjector(users repository.UserRepository, posts repository.PostRepository) *Projector {
	return &Projector{users: users, posts: posts}
}
