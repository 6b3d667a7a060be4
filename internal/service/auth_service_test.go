package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lanagram/internal/models"
)

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Alice",
		Email:           "alice@gmail.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegisterCreatesAccountWithoutLoggingIn(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		created = u
		return nil
	}
	sessions := &sessionStoreStub{}
	svc := NewAuthService(repo, sessions)

	user, err := svc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created == nil || created.ID != user.ID {
		t.Fatal("expected user to be persisted")
	}
	if created.Password != "secret1" {
		t.Fatalf("password must be stored as entered, got %q", created.Password)
	}
	if created.Followers == nil || created.Following == nil {
		t.Fatal("relation sets must be initialized empty, not nil")
	}
	if sessions.setCalls != 0 {
		t.Fatal("registration must never log the user in")
	}
}

func TestRegisterAcceptsMinimalCredentials(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		created = u
		return nil
	}
	svc := NewAuthService(repo, &sessionStoreStub{})

	// Only non-empty fields, a matching confirmation, and the domain
	// suffix are required. Short passwords, punctuated or long names,
	// and unusual local parts are all fine.
	in := RegisterInput{
		Name:            "ana! " + strings.Repeat("a", 40),
		Email:           "ana+weird!!@gmail.com",
		Password:        "123",
		ConfirmPassword: "123",
	}
	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created == nil || created.ID != user.ID {
		t.Fatal("expected user to be persisted")
	}
	if created.Password != "123" {
		t.Fatalf("password must be stored as entered, got %q", created.Password)
	}
}

func TestRegisterRejectsBadEmailDomain(t *testing.T) {
	svc := NewAuthService(noopUserRepo(), &sessionStoreStub{})

	in := validRegisterInput()
	in.Email = "alice@yahoo.com"
	_, err := svc.Register(context.Background(), in)
	expectCode(t, err, models.CodeValidation)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc := NewAuthService(noopUserRepo(), &sessionStoreStub{})

	in := validRegisterInput()
	in.ConfirmPassword = "different"
	_, err := svc.Register(context.Background(), in)
	expectCode(t, err, models.CodeValidation)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: "existing"}, nil
	}
	svc := NewAuthService(repo, &sessionStoreStub{})

	_, err := svc.Register(context.Background(), validRegisterInput())
	expectCode(t, err, models.CodeValidation)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	repo := noopUserRepo()
	repo.getByNameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: "existing"}, nil
	}
	svc := NewAuthService(repo, &sessionStoreStub{})

	_, err := svc.Register(context.Background(), validRegisterInput())
	expectCode(t, err, models.CodeValidation)
}

func TestLoginByEmailSetsSession(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if strings.EqualFold(email, "alice@gmail.com") {
			return &models.User{ID: "u1", Password: "secret1"}, nil
		}
		return nil, nil
	}
	sessions := &sessionStoreStub{}
	svc := NewAuthService(repo, sessions)

	user, err := svc.Login(context.Background(), LoginInput{Email: "alice@gmail.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "u1" || sessions.sessionID != "u1" {
		t.Fatalf("expected session for u1, got %q", sessions.sessionID)
	}
}

func TestLoginSentinelResolvesByName(t *testing.T) {
	repo := noopUserRepo()
	repo.getByNameFn = func(_ context.Context, name string) (*models.User, error) {
		if name == "Lana" {
			return &models.User{ID: "special_user_lana", Password: "123456"}, nil
		}
		return nil, nil
	}
	sessions := &sessionStoreStub{}
	svc := NewAuthService(repo, sessions)

	for _, identifier := range []string{"lana", "LANA", "lana@special.user", " Lana@Special.User "} {
		user, err := svc.Login(context.Background(), LoginInput{Email: identifier, Password: "123456"})
		if err != nil {
			t.Fatalf("sentinel %q failed: %v", identifier, err)
		}
		if user.ID != "special_user_lana" {
			t.Fatalf("sentinel %q resolved to %q", identifier, user.ID)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: "u1", Password: "secret1"}, nil
	}
	sessions := &sessionStoreStub{}
	svc := NewAuthService(repo, sessions)

	_, err := svc.Login(context.Background(), LoginInput{Email: "alice@gmail.com", Password: "wrong"})
	expectCode(t, err, models.CodeValidation)
	if sessions.setCalls != 0 {
		t.Fatal("failed login must not touch the session")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(noopUserRepo(), &sessionStoreStub{})
	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@gmail.com", Password: "x"})
	expectCode(t, err, models.CodeValidation)
}

func TestCurrentUserClearsBrokenSession(t *testing.T) {
	sessions := &sessionStoreStub{sessionID: "ghost"}
	svc := NewAuthService(noopUserRepo(), sessions)

	_, err := svc.CurrentUser(context.Background())
	expectCode(t, err, models.CodeDataInconsistency)
	if sessions.sessionID != "" {
		t.Fatal("broken session must be cleared")
	}
}

func TestCurrentUserNoSession(t *testing.T) {
	svc := NewAuthService(noopUserRepo(), &sessionStoreStub{})
	user, err := svc.CurrentUser(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", user, err)
	}
}
