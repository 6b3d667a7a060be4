package service

import (
	"context"
	"testing"

	"lanagram/internal/lock"
	"lanagram/internal/models"
)

// followFixture keeps two users in a map and wires the stub to behave
// like the real repository: lookups return copies, UpdateAll replaces.
func followFixture(t *testing.T) (*userRepoStub, map[string]*models.User, *int) {
	t.Helper()
	records := map[string]*models.User{
		"a": {ID: "a", Name: "Alice", Followers: []string{}, Following: []string{}},
		"b": {ID: "b", Name: "Bob", Followers: []string{}, Following: []string{}},
	}
	writes := 0

	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id string) (*models.User, error) {
		u, ok := records[id]
		if !ok {
			return nil, nil
		}
		copied := *u
		copied.Followers = append([]string(nil), u.Followers...)
		copied.Following = append([]string(nil), u.Following...)
		return &copied, nil
	}
	repo.updateAllFn = func(_ context.Context, users ...*models.User) error {
		writes++
		for _, u := range users {
			if _, ok := records[u.ID]; !ok {
				return models.NewNotFoundError("User", u.ID)
			}
			copied := *u
			records[u.ID] = &copied
		}
		return nil
	}
	return repo, records, &writes
}

func TestToggleFollowUpdatesBothSidesInOneWrite(t *testing.T) {
	repo, records, writes := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())
	ctx := context.Background()

	following, err := svc.ToggleFollow(ctx, "a", "b")
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !following {
		t.Fatal("expected following=true after first toggle")
	}
	if *writes != 1 {
		t.Fatalf("both sides must commit in one write, got %d", *writes)
	}
	if !records["a"].IsFollowing("b") {
		t.Fatal("a must follow b")
	}
	if len(records["b"].Followers) != 1 || records["b"].Followers[0] != "a" {
		t.Fatalf("b.followers must contain a, got %v", records["b"].Followers)
	}
}

func TestToggleFollowTwiceRestoresBothSides(t *testing.T) {
	repo, records, _ := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())
	ctx := context.Background()

	if _, err := svc.ToggleFollow(ctx, "a", "b"); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	following, err := svc.ToggleFollow(ctx, "a", "b")
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if following {
		t.Fatal("expected following=false after second toggle")
	}
	if len(records["a"].Following) != 0 || len(records["b"].Followers) != 0 {
		t.Fatalf("relation sets must be restored, got %v / %v",
			records["a"].Following, records["b"].Followers)
	}
}

func TestToggleFollowSelf(t *testing.T) {
	svc := NewUserService(noopUserRepo(), lock.NewKeyed())
	_, err := svc.ToggleFollow(context.Background(), "a", "a")
	expectCode(t, err, models.CodeValidation)
}

func TestToggleFollowMissingTarget(t *testing.T) {
	repo, _, _ := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())
	_, err := svc.ToggleFollow(context.Background(), "a", "ghost")
	expectCode(t, err, models.CodeNotFound)
}

func TestToggleFollowMissingSessionUser(t *testing.T) {
	repo, _, _ := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())
	_, err := svc.ToggleFollow(context.Background(), "ghost", "a")
	expectCode(t, err, models.CodeDataInconsistency)
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	repo, records, _ := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())

	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: "a",
		Name:   "Alice Cooper",
		Bio:    "new bio",
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if user.Name != "Alice Cooper" || user.Bio != "new bio" {
		t.Fatalf("unexpected result %+v", user)
	}
	if records["a"].Name != "Alice Cooper" {
		t.Fatal("expected persisted name change")
	}
}

func TestUpdateProfileRejectsTakenName(t *testing.T) {
	repo, _, _ := followFixture(t)
	repo.getByNameFn = func(_ context.Context, name string) (*models.User, error) {
		if name == "Bob" {
			return &models.User{ID: "b", Name: "Bob"}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo, lock.NewKeyed())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: "a", Name: "Bob"})
	expectCode(t, err, models.CodeValidation)
}

func TestUpdateProfileKeepsOwnName(t *testing.T) {
	repo, _, _ := followFixture(t)
	repo.getByNameFn = func(_ context.Context, name string) (*models.User, error) {
		if name == "Alice" {
			return &models.User{ID: "a", Name: "Alice"}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo, lock.NewKeyed())

	// Re-saving the profile with an unchanged name is not a conflict.
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: "a", Name: "Alice", Bio: "hello"})
	if err != nil {
		t.Fatalf("update with own name failed: %v", err)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	repo, _, _ := followFixture(t)
	svc := NewUserService(repo, lock.NewKeyed())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: "a", Name: ""})
	expectCode(t, err, models.CodeValidation)
}
