package store

import "time"

type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Username       string
	Avatar         int
	AuthProvider   string
	ProviderUserID string
	GamesPlayed    int
	Bio            string
	IsDeleted      bool
	CreatedAt      time.Time
}

// NewUser carries the signup fields.
type NewUser struct {
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Username       string
	AuthProvider   string
	ProviderUserID string
}

type FriendInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type FriendRequest struct {
	SenderID int64  `json:"senderId"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
}

type PrivateMessage struct {
	ID         string    `json:"-"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"-"`
}

type GlobalMessage struct {
	SenderID int64  `json:"senderId"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Content  string `json:"content"`
}

type Game struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type LeaderboardRow struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Score    int    `json:"score"`
}
