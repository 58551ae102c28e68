package social

type FriendItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type FriendsResponse struct {
	Items []FriendItem `json:"items"`
}

type RequestItem struct {
	SenderID int64  `json:"senderId"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
}

type RequestsResponse struct {
	Items []RequestItem `json:"items"`
}

type SendRequestRequest struct {
	Username string `json:"username"`
}

type AnswerRequestRequest struct {
	SenderID int64 `json:"senderId"`
}

type MessageItem struct {
	SenderID   int64  `json:"senderId"`
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}

type MessagesResponse struct {
	Items []MessageItem `json:"items"`
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}
