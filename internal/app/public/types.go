package public

type GameItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type GamesResponse struct {
	Items []GameItem `json:"items"`
}

type LeaderboardItem struct {
	Rank     int    `json:"rank"`
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Score    int    `json:"score"`
}

type LeaderboardResponse struct {
	Items []LeaderboardItem `json:"items"`
}

type SubmitScoreRequest struct {
	GameID int64 `json:"gameId"`
	Score  int   `json:"score"`
}

type ChatMessageItem struct {
	SenderID int64  `json:"senderId"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Content  string `json:"content"`
}

type ChatResponse struct {
	Items []ChatMessageItem `json:"items"`
}

type PostChatRequest struct {
	Content string `json:"content"`
}
