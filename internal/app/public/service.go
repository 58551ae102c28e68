package public

import (
	"context"
	"errors"

	"gamehub/internal/store"
)

const leaderboardMaxRows = 100

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Games(ctx context.Context) (*GamesResponse, error) {
	items, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GameItem, 0, len(items))
	for _, it := range items {
		out = append(out, GameItem{ID: it.ID, Name: it.Name, Icon: it.Icon})
	}
	return &GamesResponse{Items: out}, nil
}

func (s *Service) Game(ctx context.Context, id int64) (*GameItem, error) {
	g, err := s.store.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &GameItem{ID: g.ID, Name: g.Name, Icon: g.Icon}, nil
}

// UserScore reports a user's score for a game, zero when the user has
// never scored.
func (s *Service) UserScore(ctx context.Context, userID, gameID int64) (int, error) {
	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, err
	}
	score, err := s.store.GetScore(ctx, userID, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	return score, err
}

func (s *Service) Leaderboard(ctx context.Context, gameID int64) (*LeaderboardResponse, error) {
	if gameID == 0 {
		return nil, ErrInvalidRequest
	}
	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	rows, err := s.store.ListLeaderboard(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(rows) > leaderboardMaxRows {
		rows = rows[:leaderboardMaxRows]
	}
	out := make([]LeaderboardItem, 0, len(rows))
	for idx, r := range rows {
		out = append(out, LeaderboardItem{
			Rank:     idx + 1,
			UserID:   r.UserID,
			Username: r.Username,
			Avatar:   r.Avatar,
			Score:    r.Score,
		})
	}
	return &LeaderboardResponse{Items: out}, nil
}

// SubmitScore upserts the caller's score for a game. The realtime
// coordinator scores matches on its own; this is for games reporting
// totals directly.
func (s *Service) SubmitScore(ctx context.Context, userID int64, req SubmitScoreRequest) error {
	if req.GameID == 0 || req.Score < 0 {
		return ErrInvalidRequest
	}
	if _, err := s.store.GetGame(ctx, req.GameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	return s.store.UpsertScore(ctx, userID, req.GameID, req.Score)
}

func (s *Service) GlobalChat(ctx context.Context) (*ChatResponse, error) {
	items, err := s.store.ListGlobalMessages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ChatMessageItem, 0, len(items))
	for _, it := range items {
		out = append(out, ChatMessageItem{
			SenderID: it.SenderID,
			Username: it.Username,
			Avatar:   it.Avatar,
			Content:  it.Content,
		})
	}
	return &ChatResponse{Items: out}, nil
}

func (s *Service) PostGlobalChat(ctx context.Context, userID int64, req PostChatRequest) error {
	if req.Content == "" {
		return ErrInvalidRequest
	}
	return s.store.AddGlobalMessage(ctx, userID, req.Content)
}
