package realtime

import (
	"math/rand"
	"time"

	"gamehub/internal/game/tictactoe"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// Room is one active two-player match. PlayerTwo == 0 means the slot is
// still open.
type Room struct {
	Code       string
	PlayerOne  int64
	PlayerTwo  int64
	Board      tictactoe.Board
	Turn       int
	LastActive time.Time
}

// Started reports whether both slots are filled.
func (r *Room) Started() bool {
	return r.PlayerTwo != 0
}

// Has reports whether userID occupies either slot.
func (r *Room) Has(userID int64) bool {
	return r.PlayerOne == userID || r.PlayerTwo == userID
}

// MoveVerdict is the server-side authorization result for a move.
type MoveVerdict int

const (
	MoveAccepted MoveVerdict = iota
	MoveRejectedNotInRoom
	MoveRejectedNotStarted
	MoveRejectedWrongTurn
	MoveRejectedBadCell
	MoveRejectedOccupiedCell
)

// Reason returns the wire code sent back on rejection.
func (v MoveVerdict) Reason() string {
	switch v {
	case MoveRejectedNotInRoom:
		return "not_in_room"
	case MoveRejectedNotStarted:
		return "waiting_for_opponent"
	case MoveRejectedWrongTurn:
		return "not_your_turn"
	case MoveRejectedBadCell:
		return "bad_cell"
	case MoveRejectedOccupiedCell:
		return "cell_taken"
	default:
		return ""
	}
}

// Apply validates and performs one move. The mover for turn N is fixed
// by N's parity: even turns belong to player one, odd to player two.
func (r *Room) Apply(userID int64, cell int) MoveVerdict {
	if !r.Has(userID) {
		return MoveRejectedNotInRoom
	}
	if !r.Started() {
		return MoveRejectedNotStarted
	}
	expected := r.PlayerOne
	if r.Turn%2 == 1 {
		expected = r.PlayerTwo
	}
	if userID != expected {
		return MoveRejectedWrongTurn
	}
	if cell < 0 || cell >= tictactoe.Cells {
		return MoveRejectedBadCell
	}
	if r.Board[cell] != tictactoe.Empty {
		return MoveRejectedOccupiedCell
	}
	r.Board[cell] = tictactoe.MarkForTurn(r.Turn)
	r.Turn++
	r.LastActive = time.Now()
	return MoveAccepted
}

// JoinVerdict is the result of a join attempt.
type JoinVerdict int

const (
	Joined JoinVerdict = iota
	JoinRejectedNotFound
	JoinRejectedAlreadyIn
	JoinRejectedFull
)

// RoomStore owns every active match room, keyed by code. Like the
// registry it is only touched from the hub goroutine.
type RoomStore struct {
	rooms map[string]*Room
	rnd   *rand.Rand
	now   func() time.Time
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: map[string]*Room{},
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
}

// Create inserts a new room with the creator in slot one and returns it.
// Codes are regenerated until unused among active rooms.
func (s *RoomStore) Create(creatorID int64) *Room {
	var code string
	for {
		code = s.newCode()
		if _, taken := s.rooms[code]; !taken {
			break
		}
	}
	room := &Room{Code: code, PlayerOne: creatorID, LastActive: s.now()}
	s.rooms[code] = room
	return room
}

func (s *RoomStore) newCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[s.rnd.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func (s *RoomStore) Get(code string) (*Room, bool) {
	room, ok := s.rooms[code]
	return room, ok
}

// FindByUser returns the room where userID occupies either slot. Used
// by the reconnect flow.
func (s *RoomStore) FindByUser(userID int64) (*Room, bool) {
	for _, room := range s.rooms {
		if room.Has(userID) {
			return room, true
		}
	}
	return nil, false
}

// Join fills an open slot. A user already occupying a slot is never
// placed in the other one.
func (s *RoomStore) Join(code string, userID int64) (*Room, JoinVerdict) {
	room, ok := s.rooms[code]
	if !ok {
		return nil, JoinRejectedNotFound
	}
	if room.Has(userID) {
		return room, JoinRejectedAlreadyIn
	}
	switch {
	case room.PlayerOne == 0:
		room.PlayerOne = userID
	case room.PlayerTwo == 0:
		room.PlayerTwo = userID
	default:
		return room, JoinRejectedFull
	}
	room.LastActive = s.now()
	return room, Joined
}

func (s *RoomStore) Remove(code string) {
	delete(s.rooms, code)
}

func (s *RoomStore) Len() int {
	return len(s.rooms)
}

// SweepIdle removes and returns rooms untouched since cutoff.
func (s *RoomStore) SweepIdle(cutoff time.Time) []*Room {
	var expired []*Room
	for code, room := range s.rooms {
		if room.LastActive.Before(cutoff) {
			expired = append(expired, room)
			delete(s.rooms, code)
		}
	}
	return expired
}
