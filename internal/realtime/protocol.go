package realtime

// Inbound event names. These match what the web client emits.
const (
	EvRegister      = "register-user"
	EvCreateRoom    = "create-room-tictactoe"
	EvJoinRoom      = "join-room-tictactoe"
	EvMove          = "move-tictactoe"
	EvReconnect     = "reconnect-tictactoe"
	EvGlobalMessage = "globalMessage"
	EvSendPM        = "send-pm"
	EvSendRequest   = "send-friend-request"
	EvAcceptRequest = "accept-friend-request"
	EvRemoveFriend  = "remove-friend"
)

// Outbound event names.
const (
	EvRoomCreated     = "room-created-tictactoe"
	EvRoomState       = "room-state"
	EvGameWon         = "game-won"
	EvGameLost        = "game-lost"
	EvGameDraw        = "game-draw"
	EvRoomExpired     = "room-expired"
	EvInvalidCode     = "invalid-code"
	EvJoinRejected    = "join-rejected"
	EvMoveRejected    = "move-rejected"
	EvReceivePM       = "receive-pm"
	EvReceiveRequest  = "receive-friend-request"
	EvAcceptedRequest = "accepted-friend-request"
	EvRemovedFriend   = "removed-friend"
)

type RegisterMessage struct {
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type CreateRoomMessage struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
}

type JoinRoomMessage struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	UserID int64  `json:"userId"`
}

type MoveMessage struct {
	Type   string `json:"type"`
	Code   string `json:"code"`
	UserID int64  `json:"userId"`
	Cell   int    `json:"cell"`
}

type ReconnectMessage struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
}

type GlobalChatMessage struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

type PrivateMessageNotice struct {
	Type         string `json:"type"`
	ToID         int64  `json:"toId"`
	FromID       int64  `json:"fromId"`
	FromUsername string `json:"fromUsername"`
}

type FriendRequestMessage struct {
	Type         string `json:"type"`
	ToUsername   string `json:"toUsername"`
	FromUsername string `json:"fromUsername"`
	FromID       int64  `json:"fromId"`
}

type FriendAcceptMessage struct {
	Type   string `json:"type"`
	ToID   int64  `json:"toId"`
	FromID int64  `json:"fromId"`
}

type FriendRemoveMessage struct {
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	FriendID int64  `json:"friendId"`
}

type RoomCreated struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// RoomSnapshot is the full observable room state sent on every change.
type RoomSnapshot struct {
	Type      string   `json:"type"`
	Code      string   `json:"code"`
	Board     []string `json:"board"`
	Turn      int      `json:"turn"`
	PlayerOne int64    `json:"playerOne"`
	PlayerTwo int64    `json:"playerTwo,omitempty"`
}

type GameOver struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type InvalidCode struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

type Rejection struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type ReceivePM struct {
	Type         string `json:"type"`
	FromID       int64  `json:"fromId"`
	FromUsername string `json:"fromUsername"`
}

type ReceiveFriendRequest struct {
	Type         string `json:"type"`
	FromID       int64  `json:"fromId"`
	FromUsername string `json:"fromUsername"`
}

type AcceptedFriendRequest struct {
	Type         string `json:"type"`
	FromID       int64  `json:"fromId"`
	FromUsername string `json:"fromUsername"`
}

type RemovedFriend struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
}
