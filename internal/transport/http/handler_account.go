package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	appaccount "gamehub/internal/app/account"

	"github.com/go-chi/chi/v5"
)

type AccountHandlers struct {
	accountSvc *appaccount.Service
}

func NewAccountHandlers(accountSvc *appaccount.Service) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc}
}

func (h *AccountHandlers) SignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appaccount.SignUpRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		resp, err := h.accountSvc.SignUp(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrEmailTaken):
				WriteHTTPError(w, http.StatusConflict, "email_taken")
			case errors.Is(err, appaccount.ErrUsernameTaken):
				WriteHTTPError(w, http.StatusConflict, "username_taken")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AccountHandlers) SignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appaccount.SignInRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		resp, err := h.accountSvc.SignIn(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrInvalidCredentials):
				WriteHTTPError(w, http.StatusUnauthorized, "invalid_credentials")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AccountHandlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.accountSvc.Profile(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, appaccount.ErrUserNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AccountHandlers) PublicProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.accountSvc.PublicProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, appaccount.ErrUserNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AccountHandlers) IncrementGamesPlayed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := h.accountSvc.IncrementGamesPlayed(r.Context(), claims.UserID); err != nil {
			if errors.Is(err, appaccount.ErrUserNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) UpdateUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appaccount.UpdateUsernameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.accountSvc.UpdateUsername(r.Context(), claims.UserID, req); err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrUsernameTaken):
				WriteHTTPError(w, http.StatusConflict, "username_taken")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) UpdatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appaccount.UpdatePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.accountSvc.UpdatePassword(r.Context(), claims.UserID, req); err != nil {
			switch {
			case errors.Is(err, appaccount.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appaccount.ErrInvalidCredentials):
				WriteHTTPError(w, http.StatusUnauthorized, "invalid_credentials")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) UpdateBio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appaccount.UpdateBioRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.accountSvc.UpdateBio(r.Context(), claims.UserID, req); err != nil {
			if errors.Is(err, appaccount.ErrUserNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) UpdateAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appaccount.UpdateAvatarRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.accountSvc.UpdateAvatar(r.Context(), claims.UserID, req); err != nil {
			if errors.Is(err, appaccount.ErrUserNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AccountHandlers) DeleteAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := h.accountSvc.DeleteAccount(r.Context(), claims.UserID); err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
