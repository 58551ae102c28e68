package realtime

import "testing"

func testClient() *Client {
	return &Client{id: "test", send: make(chan []byte, 16)}
}

func TestRegisterReplacesPriorConnection(t *testing.T) {
	r := NewRegistry()
	c1 := testClient()
	c2 := testClient()

	r.Register(10, "alice", c1)
	r.Register(10, "alice", c2)

	if r.Len() != 1 {
		t.Fatalf("expected one entry, got %d", r.Len())
	}
	reg, ok := r.LookupUser(10)
	if !ok || reg.Client != c2 {
		t.Fatal("expected lookup to return the newest connection")
	}
}

func TestRemoveClientOnlyMatchesOwnHandle(t *testing.T) {
	r := NewRegistry()
	c1 := testClient()
	c2 := testClient()

	r.Register(10, "alice", c1)
	r.Register(10, "alice", c2)

	// The stale connection disconnects after being replaced.
	r.RemoveClient(c1)

	reg, ok := r.LookupUser(10)
	if !ok || reg.Client != c2 {
		t.Fatal("stale disconnect must not remove the newer registration")
	}

	r.RemoveClient(c2)
	if _, ok := r.LookupUser(10); ok {
		t.Fatal("expected registration removed")
	}
}

func TestLookupUsername(t *testing.T) {
	r := NewRegistry()
	r.Register(10, "alice", testClient())
	r.Register(20, "bob", testClient())

	reg, ok := r.LookupUsername("bob")
	if !ok || reg.UserID != 20 {
		t.Fatalf("expected bob (20), got %+v ok=%v", reg, ok)
	}
	if _, ok := r.LookupUsername("carol"); ok {
		t.Fatal("expected offline username to be absent")
	}
}

func TestRemoveClientNoopForUnknownHandle(t *testing.T) {
	r := NewRegistry()
	r.Register(10, "alice", testClient())
	r.RemoveClient(testClient())
	if r.Len() != 1 {
		t.Fatal("unknown handle removal must be a no-op")
	}
}
