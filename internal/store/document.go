package store

import (
	"context"
	"encoding/json"
	"io"

	"lanagram/internal/models"
)

const (
	sessionCollection = "session"
	sessionDocID      = "current"
)

// DocumentStore adapts any hosted Backend to the Store contract, so the
// mutation layer can swap between the local key-value store and a
// hosted document database without changes.
//
// Unlike the local store, a collection save here is one document write
// per record. A crash mid-save can leave a partially updated
// collection; the next load simply reads whatever landed.
type DocumentStore struct {
	backend Backend
}

var _ Store = (*DocumentStore)(nil)

// NewDocumentStore returns a Store backed by the given Backend.
func NewDocumentStore(backend Backend) *DocumentStore {
	return &DocumentStore{backend: backend}
}

func (d *DocumentStore) Users(ctx context.Context) ([]models.User, error) {
	docs, err := d.backend.ListDocuments(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var u models.User
		if err := json.Unmarshal(doc, &u); err != nil {
			return nil, models.NewInternalError(err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (d *DocumentStore) SaveUsers(ctx context.Context, users []models.User) error {
	for i := range users {
		doc, err := json.Marshal(&users[i])
		if err != nil {
			return models.NewInternalError(err)
		}
		if err := d.backend.UpdateDocument(ctx, KeyUsers, users[i].ID, doc); err != nil {
			return err
		}
	}
	return nil
}

func (d *DocumentStore) Posts(ctx context.Context) ([]models.Post, error) {
	docs, err := d.backend.ListDocuments(ctx, KeyPosts)
	if err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(docs))
	for _, doc := range docs {
		var p models.Post
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, models.NewInternalError(err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (d *DocumentStore) SavePosts(ctx context.Context, posts []models.Post) error {
	for i := range posts {
		doc, err := json.Marshal(&posts[i])
		if err != nil {
			return models.NewInternalError(err)
		}
		if err := d.backend.UpdateDocument(ctx, KeyPosts, posts[i].ID, doc); err != nil {
			return err
		}
	}
	return nil
}

func (d *DocumentStore) SessionUserID(ctx context.Context) (string, error) {
	doc, err := d.backend.FetchDocument(ctx, sessionCollection, sessionDocID)
	if err != nil {
		return "", err
	}
	return string(doc), nil
}

func (d *DocumentStore) SetSessionUserID(ctx context.Context, id string) error {
	return d.backend.UpdateDocument(ctx, sessionCollection, sessionDocID, []byte(id))
}

// Backend exposes the underlying hosted backend, for callers that need
// the auth or blob operations directly.
func (d *DocumentStore) Backend() Backend {
	return d.backend
}

func (d *DocumentStore) Close() error {
	if closer, ok := d.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
