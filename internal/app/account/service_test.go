package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamehub/internal/app/account"
	"gamehub/internal/auth"
	"gamehub/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*account.Service, func()) {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	tokens := auth.NewManager("test-secret", time.Hour)
	return account.NewService(st, tokens, bcrypt.MinCost), cleanup
}

func signUp(t *testing.T, svc *account.Service, username string) *account.AuthResponse {
	t.Helper()
	resp, err := svc.SignUp(context.Background(), account.SignUpRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		Password:  "secret123",
		Username:  username,
	})
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	return resp
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, cleanup := newService(t)
	defer cleanup()
	ctx := context.Background()

	created := signUp(t, svc, "alice")
	if created.Token == "" || created.User.Username != "alice" {
		t.Fatalf("signup resp = %+v", created)
	}

	resp, err := svc.SignIn(ctx, account.SignInRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if resp.User.ID != created.User.ID {
		t.Fatalf("signin user = %+v", resp.User)
	}

	if _, err := svc.SignIn(ctx, account.SignInRequest{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := svc.SignIn(ctx, account.SignInRequest{Email: "nobody@example.com", Password: "secret123"}); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v", err)
	}
}

func TestSignUpRejectsDuplicates(t *testing.T) {
	svc, cleanup := newService(t)
	defer cleanup()
	ctx := context.Background()

	signUp(t, svc, "alice")

	_, err := svc.SignUp(ctx, account.SignUpRequest{
		Email: "alice@example.com", Password: "x", Username: "other",
	})
	if !errors.Is(err, account.ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v", err)
	}
	_, err = svc.SignUp(ctx, account.SignUpRequest{
		Email: "fresh@example.com", Password: "x", Username: "alice",
	})
	if !errors.Is(err, account.ErrUsernameTaken) {
		t.Fatalf("duplicate username err = %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc, cleanup := newService(t)
	defer cleanup()
	ctx := context.Background()

	created := signUp(t, svc, "bob")
	err := svc.UpdatePassword(ctx, created.User.ID, account.UpdatePasswordRequest{
		OldPassword: "wrong", NewPassword: "newpass",
	})
	if !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("wrong old password err = %v", err)
	}
	err = svc.UpdatePassword(ctx, created.User.ID, account.UpdatePasswordRequest{
		OldPassword: "secret123", NewPassword: "newpass",
	})
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := svc.SignIn(ctx, account.SignInRequest{Email: "bob@example.com", Password: "newpass"}); err != nil {
		t.Fatalf("signin with new password: %v", err)
	}
}

func TestDeleteAccountFreesCredentials(t *testing.T) {
	svc, cleanup := newService(t)
	defer cleanup()
	ctx := context.Background()

	created := signUp(t, svc, "carol")
	if err := svc.DeleteAccount(ctx, created.User.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Profile(ctx, created.User.ID); !errors.Is(err, account.ErrUserNotFound) {
		t.Fatalf("profile after delete err = %v", err)
	}
	if _, err := svc.SignIn(ctx, account.SignInRequest{Email: "carol@example.com", Password: "secret123"}); !errors.Is(err, account.ErrInvalidCredentials) {
		t.Fatalf("signin after delete err = %v", err)
	}
	// Same username and email can register again.
	signUp(t, svc, "carol")
}
