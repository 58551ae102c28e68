package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, first_name, last_name, email, password_hash, username, avatar,
	auth_provider, provider_user_id, games_played, bio, is_deleted, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Username,
		&u.Avatar, &u.AuthProvider, &u.ProviderUserID, &u.GamesPlayed, &u.Bio, &u.IsDeleted, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, nu NewUser) (int64, error) {
	var id int64
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, username, auth_provider, provider_user_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, nu.FirstName, nu.LastName, nu.Email, nu.PasswordHash, nu.Username, nu.AuthProvider, nu.ProviderUserID).Scan(&id)
	return id, err
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*User, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetUserForSignin resolves the asserted provider identity, ignoring
// soft-deleted accounts.
func (s *Store) GetUserForSignin(ctx context.Context, email, provider, providerUserID string) (*User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE email = $1 AND auth_provider = $2 AND provider_user_id = $3 AND is_deleted = FALSE
	`, email, provider, providerUserID)
	return scanUser(row)
}

func (s *Store) GetUserIDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.Pool.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return id, err
}

func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}

func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int
	err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	return count > 0, err
}

func (s *Store) UpdateUsername(ctx context.Context, id int64, username string) error {
	_, err := s.Pool.Exec(ctx, `UPDATE users SET username = $1 WHERE id = $2`, username, id)
	return err
}

func (s *Store) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := s.Pool.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}

func (s *Store) UpdateBio(ctx context.Context, id int64, bio string) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE users SET bio = $1 WHERE id = $2 AND is_deleted = FALSE`, bio, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateAvatar(ctx context.Context, id int64, avatar int) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE users SET avatar = $1 WHERE id = $2 AND is_deleted = FALSE`, avatar, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteUser flags the account and overwrites its unique columns
// with placeholder so the email and username can be registered again.
func (s *Store) SoftDeleteUser(ctx context.Context, id int64, placeholder string) error {
	_, err := s.Pool.Exec(ctx, `
		UPDATE users
		SET is_deleted = TRUE, email = $1, username = $1, provider_user_id = $1
		WHERE id = $2
	`, placeholder, id)
	return err
}

func (s *Store) IncrementGamesPlayed(ctx context.Context, id int64) error {
	tag, err := s.Pool.Exec(ctx, `
		UPDATE users SET games_played = games_played + 1 WHERE id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
