// Package store provides persistence backends for the application's two
// top-level collections and the session pointer.
//
// Two implementations exist: a local single-file SQLite key-value store
// and a hosted document backend over Redis.
// The mutation layer only sees the Store interface, so the two are
// interchangeable without touching render or state logic.
package store

import (
	"context"

	"lanagram/internal/models"
)

// Persisted collection keys. Insertion order within a collection is
// registration/creation order and must be preserved by every backend.
const (
	KeyUsers   = "users"
	KeyPosts   = "posts"
	KeySession = "loggedInUserId"
)

// Store is the typed snapshot contract the repositories are written
// against. Reads of a missing collection return an empty slice, never
// an error. Every save rewrites the full collection snapshot; there is
// no transactional guarantee across two Save calls, so related changes
// (both sides of a follow) must go into a single write.
type Store interface {
	Users(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	Posts(ctx context.Context) ([]models.Post, error)
	SavePosts(ctx context.Context, posts []models.Post) error

	// SessionUserID returns the logged-in user's ID, or "" when no
	// session is active. SetSessionUserID("") clears the session.
	SessionUserID(ctx context.Context) (string, error)
	SetSessionUserID(ctx context.Context, id string) error

	Close() error
}

// BlobProgress reports upload progress for a single blob transfer.
type BlobProgress struct {
	Written int64
	Total   int64
}

// Backend is the abstract hosted-backend contract. It models a remote
// auth provider plus a document database plus blob storage as one
// collaborator, with single-shot calls: no retries, no subscriptions.
type Backend interface {
	// RegisterAccount creates a credential record and returns the new
	// account ID. The identifier is stored lowercased.
	RegisterAccount(ctx context.Context, email, password string) (string, error)

	// Authenticate resolves an identifier/password pair to an account
	// ID, or returns a validation error on bad credentials.
	Authenticate(ctx context.Context, identifier, password string) (string, error)

	// FetchDocument returns the raw document, or (nil, nil) when absent.
	FetchDocument(ctx context.Context, collection, id string) ([]byte, error)

	// ListDocuments returns every document in the collection in
	// insertion order. A one-shot fetch; the backend offers no live
	// subscription here even where the transport could.
	ListDocuments(ctx context.Context, collection string) ([][]byte, error)

	// UpdateDocument writes the full document under the given ID,
	// creating it if absent.
	UpdateDocument(ctx context.Context, collection, id string, doc []byte) error

	// UploadBlob stores the bytes under path and returns a retrievable
	// URL. onProgress, when non-nil, is invoked at least once with the
	// final written/total counts.
	UploadBlob(ctx context.Context, path string, data []byte, onProgress func(BlobProgress)) (string, error)
}
