package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	appsocial "gamehub/internal/app/social"

	"github.com/go-chi/chi/v5"
)

type SocialHandlers struct {
	socialSvc *appsocial.Service
}

func NewSocialHandlers(socialSvc *appsocial.Service) *SocialHandlers {
	return &SocialHandlers{socialSvc: socialSvc}
}

func (h *SocialHandlers) Friends() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.socialSvc.Friends(r.Context(), claims.UserID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *SocialHandlers) RemoveFriend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		friendID, err := strconv.ParseInt(chi.URLParam(r, "friend_id"), 10, 64)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if err := h.socialSvc.RemoveFriend(r.Context(), claims.UserID, friendID); err != nil {
			if errors.Is(err, appsocial.ErrNotFriends) {
				WriteHTTPError(w, http.StatusNotFound, "not_friends")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *SocialHandlers) Requests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.socialSvc.Requests(r.Context(), claims.UserID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *SocialHandlers) SendRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appsocial.SendRequestRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.socialSvc.SendRequest(r.Context(), claims.UserID, req); err != nil {
			switch {
			case errors.Is(err, appsocial.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appsocial.ErrUserNotFound):
				WriteHTTPError(w, http.StatusNotFound, "user_not_found")
			case errors.Is(err, appsocial.ErrSelfRequest):
				WriteHTTPError(w, http.StatusBadRequest, "self_request")
			case errors.Is(err, appsocial.ErrAlreadyFriends):
				WriteHTTPError(w, http.StatusConflict, "already_friends")
			case errors.Is(err, appsocial.ErrRequestExists):
				WriteHTTPError(w, http.StatusConflict, "request_exists")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func (h *SocialHandlers) AcceptRequest() http.HandlerFunc {
	return h.answerRequest(h.socialSvc.AcceptRequest)
}

func (h *SocialHandlers) DeclineRequest() http.HandlerFunc {
	return h.answerRequest(h.socialSvc.DeclineRequest)
}

func (h *SocialHandlers) answerRequest(answer func(context.Context, int64, appsocial.AnswerRequestRequest) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appsocial.AnswerRequestRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := answer(r.Context(), claims.UserID, req); err != nil {
			switch {
			case errors.Is(err, appsocial.ErrRequestNotFound):
				WriteHTTPError(w, http.StatusNotFound, "request_not_found")
			case errors.Is(err, appsocial.ErrAlreadyFriends):
				WriteHTTPError(w, http.StatusConflict, "already_friends")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *SocialHandlers) Messages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		friendID, err := strconv.ParseInt(chi.URLParam(r, "friend_id"), 10, 64)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.socialSvc.Messages(r.Context(), claims.UserID, friendID)
		if err != nil {
			if errors.Is(err, appsocial.ErrNotFriends) {
				WriteHTTPError(w, http.StatusForbidden, "not_friends")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *SocialHandlers) SendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var req appsocial.SendMessageRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := h.socialSvc.SendMessage(r.Context(), claims.UserID, req); err != nil {
			switch {
			case errors.Is(err, appsocial.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, appsocial.ErrNotFriends):
				WriteHTTPError(w, http.StatusForbidden, "not_friends")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}
