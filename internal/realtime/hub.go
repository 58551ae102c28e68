package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"gamehub/internal/game/tictactoe"
)

type eventKind int

const (
	evFrame eventKind = iota
	evDisconnect
)

type event struct {
	kind   eventKind
	client *Client
	data   []byte
}

// ScoreKeeper persists match outcomes. Implemented by the store; the
// hub never talks to the database directly.
type ScoreKeeper interface {
	RecordMatchResult(ctx context.Context, winnerID, loserID int64) error
	RecordMatchDraw(ctx context.Context, playerOne, playerTwo int64) error
}

// Hub is the session coordinator: a single goroutine that owns the
// registry and room store and processes every inbound event to
// completion before the next one. That ordering is what makes the
// lock-free registry/room maps safe.
type Hub struct {
	registry *Registry
	rooms    *RoomStore
	scores   ScoreKeeper
	idleTTL  time.Duration
	events   chan event
	done     chan struct{}
	upgrader websocket.Upgrader
}

func NewHub(scores ScoreKeeper, idleTTL time.Duration) *Hub {
	return &Hub{
		registry: NewRegistry(),
		rooms:    NewRoomStore(),
		scores:   scores,
		idleTTL:  idleTTL,
		events:   make(chan event, 64),
		done:     make(chan struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Run processes events until Stop is called. The idle sweep shares the
// loop so room removal never interleaves with event handling.
func (h *Hub) Run() {
	var sweep <-chan time.Time
	if h.idleTTL > 0 {
		ticker := time.NewTicker(h.idleTTL / 2)
		defer ticker.Stop()
		sweep = ticker.C
	}
	for {
		select {
		case ev := <-h.events:
			h.dispatch(ev)
		case <-sweep:
			h.sweepIdleRooms()
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) dispatch(ev event) {
	if ev.kind == evDisconnect {
		h.registry.RemoveClient(ev.client)
		safeClose(ev.client.send)
		return
	}

	var base struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(ev.data, &base); err != nil {
		log.Debug().Str("conn_id", ev.client.id).Err(err).Msg("unparseable frame")
		return
	}

	switch base.Type {
	case EvRegister:
		var msg RegisterMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleRegister(ev.client, msg)
		}
	case EvCreateRoom:
		var msg CreateRoomMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleCreateRoom(ev.client, msg)
		}
	case EvJoinRoom:
		var msg JoinRoomMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleJoinRoom(ev.client, msg)
		}
	case EvMove:
		var msg MoveMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleMove(ev.client, msg)
		}
	case EvReconnect:
		var msg ReconnectMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleReconnect(msg)
		}
	case EvGlobalMessage:
		var msg GlobalChatMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleGlobalMessage(msg)
		}
	case EvSendPM:
		var msg PrivateMessageNotice
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handlePrivateMessage(msg)
		}
	case EvSendRequest:
		var msg FriendRequestMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleFriendRequest(msg)
		}
	case EvAcceptRequest:
		var msg FriendAcceptMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleFriendAccept(msg)
		}
	case EvRemoveFriend:
		var msg FriendRemoveMessage
		if json.Unmarshal(ev.data, &msg) == nil {
			h.handleFriendRemove(msg)
		}
	default:
		log.Debug().Str("type", base.Type).Msg("unknown event type")
	}
}

func (h *Hub) handleRegister(c *Client, msg RegisterMessage) {
	h.registry.Register(msg.UserID, msg.Username, c)
	log.Info().Int64("user_id", msg.UserID).Str("username", msg.Username).Msg("user registered")
}

func (h *Hub) handleCreateRoom(c *Client, msg CreateRoomMessage) {
	room := h.rooms.Create(msg.UserID)
	log.Info().Str("code", room.Code).Int64("user_id", msg.UserID).Msg("room created")
	h.sendTo(c, RoomCreated{Type: EvRoomCreated, Code: room.Code})
}

func (h *Hub) handleJoinRoom(c *Client, msg JoinRoomMessage) {
	room, verdict := h.rooms.Join(msg.Code, msg.UserID)
	switch verdict {
	case JoinRejectedNotFound:
		h.sendTo(c, InvalidCode{Type: EvInvalidCode, Code: msg.Code})
	case JoinRejectedAlreadyIn:
		// idempotent rejoin, no state change and no notification
	case JoinRejectedFull:
		h.sendTo(c, Rejection{Type: EvJoinRejected, Reason: "room_full"})
	case Joined:
		log.Info().Str("code", room.Code).Int64("user_id", msg.UserID).Msg("room joined")
		h.broadcastSnapshot(room)
	}
}

func (h *Hub) handleMove(c *Client, msg MoveMessage) {
	room, ok := h.rooms.Get(msg.Code)
	if !ok {
		h.sendTo(c, InvalidCode{Type: EvInvalidCode, Code: msg.Code})
		return
	}
	verdict := room.Apply(msg.UserID, msg.Cell)
	if verdict != MoveAccepted {
		h.sendTo(c, Rejection{Type: EvMoveRejected, Reason: verdict.Reason()})
		return
	}
	h.resolveAfterMove(room, msg.UserID)
}

// resolveAfterMove checks the board after an accepted move and either
// finishes the match or broadcasts the new snapshot.
func (h *Hub) resolveAfterMove(room *Room, moverID int64) {
	if tictactoe.HasWinner(room.Board) {
		opponent := room.PlayerOne
		if moverID == room.PlayerOne {
			opponent = room.PlayerTwo
		}
		h.notifyUser(moverID, GameOver{Type: EvGameWon, Code: room.Code})
		h.notifyUser(opponent, GameOver{Type: EvGameLost, Code: room.Code})
		h.rooms.Remove(room.Code)
		log.Info().Str("code", room.Code).Int64("winner", moverID).Msg("match won")
		h.recordResult(moverID, opponent, false)
		return
	}
	if tictactoe.Full(room.Board) {
		h.notifyUser(room.PlayerOne, GameOver{Type: EvGameDraw, Code: room.Code})
		h.notifyUser(room.PlayerTwo, GameOver{Type: EvGameDraw, Code: room.Code})
		h.rooms.Remove(room.Code)
		log.Info().Str("code", room.Code).Msg("match drawn")
		h.recordResult(room.PlayerOne, room.PlayerTwo, true)
		return
	}
	h.broadcastSnapshot(room)
}

// recordResult persists the outcome off the hub goroutine, so no
// registry or room state is held across the database round trip.
func (h *Hub) recordResult(winnerID, loserID int64, draw bool) {
	if h.scores == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var err error
		if draw {
			err = h.scores.RecordMatchDraw(ctx, winnerID, loserID)
		} else {
			err = h.scores.RecordMatchResult(ctx, winnerID, loserID)
		}
		if err != nil {
			log.Error().Err(err).Int64("winner", winnerID).Int64("loser", loserID).Msg("record match outcome failed")
		}
	}()
}

func (h *Hub) handleReconnect(msg ReconnectMessage) {
	room, ok := h.rooms.FindByUser(msg.UserID)
	if !ok {
		return
	}
	h.broadcastSnapshot(room)
}

func (h *Hub) handleGlobalMessage(msg GlobalChatMessage) {
	msg.Type = EvGlobalMessage
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.registry.Each(func(reg *Registration) {
		safeSend(reg.Client.send, payload)
	})
}

func (h *Hub) handlePrivateMessage(msg PrivateMessageNotice) {
	h.notifyUser(msg.ToID, ReceivePM{Type: EvReceivePM, FromID: msg.FromID, FromUsername: msg.FromUsername})
}

func (h *Hub) handleFriendRequest(msg FriendRequestMessage) {
	target, ok := h.registry.LookupUsername(msg.ToUsername)
	if !ok {
		return
	}
	h.sendTo(target.Client, ReceiveFriendRequest{
		Type:         EvReceiveRequest,
		FromID:       msg.FromID,
		FromUsername: msg.FromUsername,
	})
}

func (h *Hub) handleFriendAccept(msg FriendAcceptMessage) {
	fromUsername := ""
	if reg, ok := h.registry.LookupUser(msg.FromID); ok {
		fromUsername = reg.Username
	}
	h.notifyUser(msg.ToID, AcceptedFriendRequest{
		Type:         EvAcceptedRequest,
		FromID:       msg.FromID,
		FromUsername: fromUsername,
	})
}

func (h *Hub) handleFriendRemove(msg FriendRemoveMessage) {
	h.notifyUser(msg.FriendID, RemovedFriend{Type: EvRemovedFriend, UserID: msg.UserID})
}

func (h *Hub) sweepIdleRooms() {
	cutoff := time.Now().Add(-h.idleTTL)
	for _, room := range h.rooms.SweepIdle(cutoff) {
		log.Info().Str("code", room.Code).Msg("idle room expired")
		h.notifyUser(room.PlayerOne, GameOver{Type: EvRoomExpired, Code: room.Code})
		if room.PlayerTwo != 0 {
			h.notifyUser(room.PlayerTwo, GameOver{Type: EvRoomExpired, Code: room.Code})
		}
	}
}

// broadcastSnapshot sends the room state to both occupants that are
// currently online.
func (h *Hub) broadcastSnapshot(room *Room) {
	snap := RoomSnapshot{
		Type:      EvRoomState,
		Code:      room.Code,
		Board:     room.Board.Strings(),
		Turn:      room.Turn,
		PlayerOne: room.PlayerOne,
		PlayerTwo: room.PlayerTwo,
	}
	h.notifyUser(room.PlayerOne, snap)
	if room.PlayerTwo != 0 {
		h.notifyUser(room.PlayerTwo, snap)
	}
}

// notifyUser emits to the user's current connection. Offline users are
// simply skipped.
func (h *Hub) notifyUser(userID int64, v any) {
	reg, ok := h.registry.LookupUser(userID)
	if !ok {
		return
	}
	h.sendTo(reg.Client, v)
}

func (h *Hub) sendTo(c *Client, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	safeSend(c.send, payload)
}
