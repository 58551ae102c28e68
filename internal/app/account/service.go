package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamehub/internal/auth"
	"gamehub/internal/store"
)

const localProvider = "local"

type Service struct {
	store      *store.Store
	tokens     *auth.Manager
	bcryptCost int
}

func NewService(st *store.Store, tokens *auth.Manager, bcryptCost int) *Service {
	return &Service{store: st, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, ErrInvalidRequest
	}
	if taken, err := s.store.EmailTaken(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := s.store.UsernameTaken(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	id, err := s.store.CreateUser(ctx, store.NewUser{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   hash,
		Username:       req.Username,
		AuthProvider:   localProvider,
		ProviderUserID: req.Email,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, id)
}

func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidRequest
	}
	u, err := s.store.GetUserForSignin(ctx, req.Email, localProvider, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: profileItem(u)}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*ProfileItem, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.IsDeleted {
		return nil, ErrUserNotFound
	}
	p := profileItem(u)
	return &p, nil
}

func (s *Service) PublicProfile(ctx context.Context, userID int64) (*PublicProfileItem, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.IsDeleted {
		return nil, ErrUserNotFound
	}
	return &PublicProfileItem{
		ID:          u.ID,
		Username:    u.Username,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		GamesPlayed: u.GamesPlayed,
	}, nil
}

func (s *Service) IncrementGamesPlayed(ctx context.Context, userID int64) error {
	err := s.store.IncrementGamesPlayed(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *Service) UpdateUsername(ctx context.Context, userID int64, req UpdateUsernameRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return ErrInvalidRequest
	}
	if taken, err := s.store.UsernameTaken(ctx, req.Username); err != nil {
		return err
	} else if taken {
		return ErrUsernameTaken
	}
	return s.store.UpdateUsername(ctx, userID, req.Username)
}

func (s *Service) UpdatePassword(ctx context.Context, userID int64, req UpdatePasswordRequest) error {
	if req.NewPassword == "" {
		return ErrInvalidRequest
	}
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, req.OldPassword) {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, userID, hash)
}

func (s *Service) UpdateBio(ctx context.Context, userID int64, req UpdateBioRequest) error {
	err := s.store.UpdateBio(ctx, userID, req.Bio)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *Service) UpdateAvatar(ctx context.Context, userID int64, req UpdateAvatarRequest) error {
	err := s.store.UpdateAvatar(ctx, userID, req.Avatar)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DeleteAccount soft-deletes the user so history keeps resolving while
// the email and username become free again.
func (s *Service) DeleteAccount(ctx context.Context, userID int64) error {
	placeholder := fmt.Sprintf("deleted_%d_%d", userID, time.Now().Unix())
	return s.store.SoftDeleteUser(ctx, userID, placeholder)
}

func (s *Service) issue(ctx context.Context, userID int64) (*AuthResponse, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: profileItem(u)}, nil
}

func profileItem(u *store.User) ProfileItem {
	return ProfileItem{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Username:    u.Username,
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		GamesPlayed: u.GamesPlayed,
	}
}
