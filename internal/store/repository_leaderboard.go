package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) UpsertScore(ctx context.Context, userID, gameID int64, score int) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO leaderboard (user_id, game_id, score) VALUES ($1,$2,$3)
		ON CONFLICT (user_id, game_id) DO UPDATE SET score = EXCLUDED.score
	`, userID, gameID, score)
	return err
}

func (s *Store) GetScore(ctx context.Context, userID, gameID int64) (int, error) {
	var score int
	err := s.Pool.QueryRow(ctx, `
		SELECT l.score
		FROM leaderboard l
		JOIN users u ON l.user_id = u.id
		WHERE l.user_id = $1 AND l.game_id = $2 AND u.is_deleted = FALSE
	`, userID, gameID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return score, err
}

func (s *Store) ListLeaderboard(ctx context.Context, gameID int64) ([]LeaderboardRow, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT u.id, u.username, u.avatar, l.score
		FROM leaderboard l
		JOIN users u ON l.user_id = u.id
		WHERE l.game_id = $1 AND u.is_deleted = FALSE
		ORDER BY l.score DESC
	`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LeaderboardRow{}
	for rows.Next() {
		var row LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Username, &row.Avatar, &row.Score); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// RecordMatchResult credits the winner one leaderboard point and bumps
// both players' games-played counters. Implements realtime.ScoreKeeper.
func (s *Store) RecordMatchResult(ctx context.Context, winnerID, loserID int64) error {
	game, err := s.GetGameByName(ctx, TicTacToeGameName)
	if err != nil {
		return err
	}
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO leaderboard (user_id, game_id, score) VALUES ($1,$2,1)
		ON CONFLICT (user_id, game_id) DO UPDATE SET score = leaderboard.score + 1
	`, winnerID, game.ID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE users SET games_played = games_played + 1 WHERE id = ANY($1::bigint[])
	`, []int64{winnerID, loserID})
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// RecordMatchDraw bumps games-played for both sides; nobody scores.
func (s *Store) RecordMatchDraw(ctx context.Context, playerOne, playerTwo int64) error {
	_, err := s.Pool.Exec(ctx, `
		UPDATE users SET games_played = games_played + 1 WHERE id = ANY($1::bigint[])
	`, []int64{playerOne, playerTwo})
	return err
}
