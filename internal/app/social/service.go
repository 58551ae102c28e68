package social

import (
	"context"
	"errors"
	"strings"

	"gamehub/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Friends(ctx context.Context, userID int64) (*FriendsResponse, error) {
	items, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]FriendItem, 0, len(items))
	for _, it := range items {
		out = append(out, FriendItem{ID: it.ID, Username: it.Username})
	}
	return &FriendsResponse{Items: out}, nil
}

// SendRequest files a friend request addressed by username. Duplicate
// requests in either direction collapse to ErrRequestExists.
func (s *Service) SendRequest(ctx context.Context, senderID int64, req SendRequestRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrInvalidRequest
	}
	receiverID, err := s.store.GetUserIDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if receiverID == senderID {
		return ErrSelfRequest
	}
	if friends, err := s.store.AreFriends(ctx, senderID, receiverID); err != nil {
		return err
	} else if friends {
		return ErrAlreadyFriends
	}
	if exists, err := s.store.FriendRequestExists(ctx, senderID, receiverID); err != nil {
		return err
	} else if exists {
		return ErrRequestExists
	}
	return s.store.CreateFriendRequest(ctx, senderID, receiverID)
}

func (s *Service) Requests(ctx context.Context, userID int64) (*RequestsResponse, error) {
	items, err := s.store.ListFriendRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]RequestItem, 0, len(items))
	for _, it := range items {
		out = append(out, RequestItem{SenderID: it.SenderID, Username: it.Username, Avatar: it.Avatar})
	}
	return &RequestsResponse{Items: out}, nil
}

// AcceptRequest consumes the pending request and records the
// friendship.
func (s *Service) AcceptRequest(ctx context.Context, userID int64, req AnswerRequestRequest) error {
	exists, err := s.store.FriendRequestExists(ctx, req.SenderID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRequestNotFound
	}
	if err := s.store.DeleteFriendRequest(ctx, req.SenderID, userID); err != nil {
		return err
	}
	err = s.store.AddFriend(ctx, req.SenderID, userID)
	if errors.Is(err, store.ErrDuplicate) {
		return ErrAlreadyFriends
	}
	return err
}

func (s *Service) DeclineRequest(ctx context.Context, userID int64, req AnswerRequestRequest) error {
	exists, err := s.store.FriendRequestExists(ctx, req.SenderID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRequestNotFound
	}
	return s.store.DeleteFriendRequest(ctx, req.SenderID, userID)
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	err := s.store.RemoveFriend(ctx, userID, friendID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFriends
	}
	return err
}

func (s *Service) Messages(ctx context.Context, userID, friendID int64) (*MessagesResponse, error) {
	if friends, err := s.store.AreFriends(ctx, userID, friendID); err != nil {
		return nil, err
	} else if !friends {
		return nil, ErrNotFriends
	}
	items, err := s.store.ListPrivateMessages(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	out := make([]MessageItem, 0, len(items))
	for _, it := range items {
		out = append(out, MessageItem{SenderID: it.SenderID, ReceiverID: it.ReceiverID, Content: it.Content})
	}
	return &MessagesResponse{Items: out}, nil
}

func (s *Service) SendMessage(ctx context.Context, senderID int64, req SendMessageRequest) error {
	if req.Content == "" || req.ReceiverID == 0 {
		return ErrInvalidRequest
	}
	if friends, err := s.store.AreFriends(ctx, senderID, req.ReceiverID); err != nil {
		return err
	} else if !friends {
		return ErrNotFriends
	}
	return s.store.AddPrivateMessage(ctx, senderID, req.ReceiverID, req.Content)
}
