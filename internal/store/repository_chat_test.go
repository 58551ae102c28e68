package store_test

import (
	"context"
	"testing"

	"gamehub/internal/testutil"
)

func TestGlobalChatBacklog(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	alice := createUser(t, st, "alice")
	if err := st.AddGlobalMessage(ctx, alice, "first"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := st.AddGlobalMessage(ctx, alice, "second"); err != nil {
		t.Fatalf("add: %v", err)
	}

	msgs, err := st.ListGlobalMessages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %+v", msgs)
	}
	if msgs[0].Content != "first" || msgs[0].Username != "alice" {
		t.Fatalf("first message = %+v", msgs[0])
	}
}

func TestGlobalChatKeepsDeletedSenders(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	alice := createUser(t, st, "alice")
	if err := st.AddGlobalMessage(ctx, alice, "bye"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := st.SoftDeleteUser(ctx, alice, "deleted_alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	msgs, err := st.ListGlobalMessages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "bye" {
		t.Fatalf("messages = %+v", msgs)
	}
}
