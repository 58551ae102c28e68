package social

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrSelfRequest     = errors.New("self_request")
	ErrAlreadyFriends  = errors.New("already_friends")
	ErrRequestExists   = errors.New("request_exists")
	ErrRequestNotFound = errors.New("request_not_found")
	ErrNotFriends      = errors.New("not_friends")
)
