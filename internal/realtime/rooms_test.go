package realtime

import (
	"testing"
	"time"

	"gamehub/internal/game/tictactoe"
)

func TestCreateRoomShape(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)

	if len(room.Code) != codeLength {
		t.Fatalf("code %q: expected %d chars", room.Code, codeLength)
	}
	for _, ch := range room.Code {
		if !((ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("code %q: unexpected character %q", room.Code, ch)
		}
	}
	if room.PlayerOne != 10 || room.PlayerTwo != 0 {
		t.Fatalf("slots = (%d, %d), want (10, 0)", room.PlayerOne, room.PlayerTwo)
	}
	if room.Turn != 0 {
		t.Fatalf("turn = %d, want 0", room.Turn)
	}
	for i, m := range room.Board {
		if m != tictactoe.Empty {
			t.Fatalf("cell %d not empty", i)
		}
	}
}

func TestCreateRoomCodesUnique(t *testing.T) {
	s := NewRoomStore()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		room := s.Create(int64(i))
		if seen[room.Code] {
			t.Fatalf("duplicate active code %q", room.Code)
		}
		seen[room.Code] = true
	}
}

func TestJoinFillsOpenSlot(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)

	joined, verdict := s.Join(room.Code, 20)
	if verdict != Joined {
		t.Fatalf("verdict = %v, want Joined", verdict)
	}
	if joined.PlayerTwo != 20 {
		t.Fatalf("playerTwo = %d, want 20", joined.PlayerTwo)
	}
}

func TestJoinNeverReassignsOccupant(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)

	if _, verdict := s.Join(room.Code, 10); verdict != JoinRejectedAlreadyIn {
		t.Fatalf("creator rejoin verdict = %v, want JoinRejectedAlreadyIn", verdict)
	}
	if room.PlayerTwo != 0 {
		t.Fatal("creator must not be placed in the second slot")
	}

	s.Join(room.Code, 20)
	if _, verdict := s.Join(room.Code, 20); verdict != JoinRejectedAlreadyIn {
		t.Fatal("joiner rejoin must be rejected")
	}
	if room.PlayerOne != 10 || room.PlayerTwo != 20 {
		t.Fatalf("slots changed: (%d, %d)", room.PlayerOne, room.PlayerTwo)
	}
}

func TestJoinUnknownCode(t *testing.T) {
	s := NewRoomStore()
	if _, verdict := s.Join("ZZZZZZ", 10); verdict != JoinRejectedNotFound {
		t.Fatalf("verdict = %v, want JoinRejectedNotFound", verdict)
	}
}

func TestJoinFullRoom(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)
	s.Join(room.Code, 20)
	if _, verdict := s.Join(room.Code, 30); verdict != JoinRejectedFull {
		t.Fatalf("verdict = %v, want JoinRejectedFull", verdict)
	}
}

func TestFindByUserEitherSlot(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)
	s.Join(room.Code, 20)

	for _, id := range []int64{10, 20} {
		found, ok := s.FindByUser(id)
		if !ok || found.Code != room.Code {
			t.Fatalf("user %d: expected room %q", id, room.Code)
		}
	}
	if _, ok := s.FindByUser(30); ok {
		t.Fatal("user 30 is in no room")
	}
}

func TestApplyTurnOrderAndCounter(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)
	s.Join(room.Code, 20)

	moves := []struct {
		user int64
		cell int
	}{
		{10, 4}, {20, 0}, {10, 1}, {20, 8},
	}
	for n, mv := range moves {
		if v := room.Apply(mv.user, mv.cell); v != MoveAccepted {
			t.Fatalf("move %d: verdict %v", n, v)
		}
		if room.Turn != n+1 {
			t.Fatalf("after move %d: turn = %d, want %d", n, room.Turn, n+1)
		}
		want := tictactoe.MarkX
		if n%2 == 1 {
			want = tictactoe.MarkO
		}
		if room.Board[mv.cell] != want {
			t.Fatalf("move %d: mark = %v, want %v", n, room.Board[mv.cell], want)
		}
	}
}

func TestApplyRejections(t *testing.T) {
	s := NewRoomStore()
	room := s.Create(10)

	if v := room.Apply(10, 0); v != MoveRejectedNotStarted {
		t.Fatalf("move before join: verdict %v", v)
	}

	s.Join(room.Code, 20)

	cases := []struct {
		name string
		user int64
		cell int
		want MoveVerdict
	}{
		{"stranger", 30, 0, MoveRejectedNotInRoom},
		{"wrong turn", 20, 0, MoveRejectedWrongTurn},
		{"cell out of range", 10, 9, MoveRejectedBadCell},
		{"negative cell", 10, -1, MoveRejectedBadCell},
	}
	for _, tc := range cases {
		if v := room.Apply(tc.user, tc.cell); v != tc.want {
			t.Fatalf("%s: verdict %v, want %v", tc.name, v, tc.want)
		}
	}

	if v := room.Apply(10, 4); v != MoveAccepted {
		t.Fatalf("legal move rejected: %v", v)
	}
	if v := room.Apply(20, 4); v != MoveRejectedOccupiedCell {
		t.Fatalf("occupied cell: verdict %v, want MoveRejectedOccupiedCell", v)
	}
	if room.Turn != 1 {
		t.Fatalf("rejected moves must not advance the turn, got %d", room.Turn)
	}
}

func TestSweepIdle(t *testing.T) {
	s := NewRoomStore()
	stale := s.Create(10)
	stale.LastActive = time.Now().Add(-time.Hour)
	fresh := s.Create(20)

	expired := s.SweepIdle(time.Now().Add(-30 * time.Minute))
	if len(expired) != 1 || expired[0].Code != stale.Code {
		t.Fatalf("expected only the stale room swept, got %v", expired)
	}
	if _, ok := s.Get(fresh.Code); !ok {
		t.Fatal("fresh room must survive the sweep")
	}
	if _, ok := s.Get(stale.Code); ok {
		t.Fatal("stale room must be gone")
	}
}
