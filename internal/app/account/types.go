package account

type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  ProfileItem `json:"user"`
}

type ProfileItem struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Avatar      int    `json:"avatar"`
	Bio         string `json:"bio"`
	GamesPlayed int    `json:"gamesPlayed"`
}

// PublicProfileItem is what other users see.
type PublicProfileItem struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Avatar      int    `json:"avatar"`
	Bio         string `json:"bio"`
	GamesPlayed int    `json:"gamesPlayed"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

type UpdateAvatarRequest struct {
	Avatar int `json:"avatar"`
}
