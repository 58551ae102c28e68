package httptransport

import (
	"net/http"
	"testing"
	"time"

	"gamehub/internal/config"
	"gamehub/internal/realtime"
	"gamehub/internal/store"

	"github.com/go-chi/chi/v5"
)

func TestRouterRegistersExpectedRoutes(t *testing.T) {
	cfg := config.ServerConfig{JWTSecret: "test-secret", TokenTTLHours: 1, BcryptCost: 4}
	hub := realtime.NewHub(nil, time.Minute)
	r := NewRouter(&store.Store{}, cfg, hub)

	registered := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{
		"GET /healthz",
		"GET /ws",
		"POST /api/auth/signup",
		"POST /api/auth/signin",
		"GET /api/games",
		"GET /api/games/{game_id}",
		"GET /api/leaderboard/{game_id}",
		"GET /api/leaderboard/{game_id}/users/{user_id}",
		"GET /api/globalchat",
		"GET /api/users/{user_id}",
		"GET /api/me",
		"POST /api/me/games-played",
		"DELETE /api/me",
		"GET /api/friends",
		"DELETE /api/friends/{friend_id}",
		"GET /api/friends/{friend_id}/messages",
		"POST /api/messages",
		"GET /api/requests",
		"POST /api/requests",
		"POST /api/requests/accept",
		"POST /api/requests/decline",
		"POST /api/leaderboard",
		"POST /api/globalchat",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}
