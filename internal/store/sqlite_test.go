package store

import (
	"context"
	"testing"

	"lanagram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteMissingCollectionsAreEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	id, err := s.SessionUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestSQLiteUsersRoundtripPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := []models.User{
		{ID: "u1", Name: "Alice", Email: "alice@gmail.com", Followers: []string{}, Following: []string{}},
		{ID: "u2", Name: "Bob", Email: "bob@gmail.com", Followers: []string{"u1"}, Following: []string{}},
	}
	require.NoError(t, s.SaveUsers(ctx, in))

	out, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "u1", out[0].ID)
	assert.Equal(t, "u2", out[1].ID)
	assert.Equal(t, []string{"u1"}, out[1].Followers)
}

func TestSQLiteSaveOverwritesSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SavePosts(ctx, []models.Post{{ID: "p1", UserID: "u1"}}))
	require.NoError(t, s.SavePosts(ctx, []models.Post{{ID: "p2", UserID: "u1"}}))

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].ID)
}

func TestSQLiteSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetSessionUserID(ctx, "u1"))
	id, err := s.SessionUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	require.NoError(t, s.SetSessionUserID(ctx, ""))
	id, err = s.SessionUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}
