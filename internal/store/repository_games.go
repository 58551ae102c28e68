package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// TicTacToeGameName is the catalog entry the realtime coordinator
// scores against.
const TicTacToeGameName = "Tic Tac Toe"

func (s *Store) ListGames(ctx context.Context) ([]Game, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name, icon FROM games ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Game{}
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Icon); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) GetGame(ctx context.Context, id int64) (*Game, error) {
	var g Game
	err := s.Pool.QueryRow(ctx, `SELECT id, name, icon FROM games WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &g.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *Store) GetGameByName(ctx context.Context, name string) (*Game, error) {
	var g Game
	err := s.Pool.QueryRow(ctx, `SELECT id, name, icon FROM games WHERE name = $1`, name).
		Scan(&g.ID, &g.Name, &g.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *Store) EnsureDefaultGames(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO games (name, icon) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`, TicTacToeGameName, "❌⭕")
	return err
}
