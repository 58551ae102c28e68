package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gamehub/internal/store"
	"gamehub/internal/testutil"
)

func createUser(t *testing.T, st *store.Store, username string) int64 {
	t.Helper()
	id, err := st.CreateUser(context.Background(), store.NewUser{
		FirstName:      "Test",
		LastName:       "User",
		Email:          fmt.Sprintf("%s@example.com", username),
		PasswordHash:   "hash",
		Username:       username,
		AuthProvider:   "local",
		ProviderUserID: fmt.Sprintf("%s@example.com", username),
	})
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return id
}

func TestCreateAndGetUser(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id := createUser(t, st, "alice")
	u, err := st.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Username != "alice" || u.Email != "alice@example.com" {
		t.Fatalf("user = %+v", u)
	}
	if u.IsDeleted || u.GamesPlayed != 0 {
		t.Fatalf("unexpected defaults: %+v", u)
	}

	if _, err := st.GetUserByID(ctx, id+999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("missing user err = %v", err)
	}
}

func TestGetUserForSignin(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	createUser(t, st, "bob")
	u, err := st.GetUserForSignin(ctx, "bob@example.com", "local", "bob@example.com")
	if err != nil {
		t.Fatalf("signin lookup: %v", err)
	}
	if u.Username != "bob" {
		t.Fatalf("username = %q", u.Username)
	}

	if _, err := st.GetUserForSignin(ctx, "bob@example.com", "github", "bob@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("wrong provider err = %v", err)
	}
}

func TestUsernameAndEmailTaken(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	createUser(t, st, "carol")
	if taken, err := st.UsernameTaken(ctx, "carol"); err != nil || !taken {
		t.Fatalf("username taken = %v, %v", taken, err)
	}
	if taken, err := st.UsernameTaken(ctx, "nobody"); err != nil || taken {
		t.Fatalf("free username taken = %v, %v", taken, err)
	}
	if taken, err := st.EmailTaken(ctx, "carol@example.com"); err != nil || !taken {
		t.Fatalf("email taken = %v, %v", taken, err)
	}
}

func TestSoftDeleteUser(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id := createUser(t, st, "dave")
	if err := st.SoftDeleteUser(ctx, id, "deleted_1"); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	u, err := st.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if !u.IsDeleted {
		t.Fatal("user not flagged deleted")
	}
	// Username freed for reuse.
	if taken, err := st.UsernameTaken(ctx, "dave"); err != nil || taken {
		t.Fatalf("username still taken after delete: %v, %v", taken, err)
	}
	// Deleted users stop matching signin.
	if _, err := st.GetUserForSignin(ctx, "dave@example.com", "local", "dave@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted signin err = %v", err)
	}
}

func TestIncrementGamesPlayed(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id := createUser(t, st, "erin")
	if err := st.IncrementGamesPlayed(ctx, id); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := st.IncrementGamesPlayed(ctx, id); err != nil {
		t.Fatalf("increment: %v", err)
	}
	u, err := st.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.GamesPlayed != 2 {
		t.Fatalf("games played = %d", u.GamesPlayed)
	}
}
