package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	appaccount "gamehub/internal/app/account"
	apppublic "gamehub/internal/app/public"
	appsocial "gamehub/internal/app/social"
	"gamehub/internal/auth"
	"gamehub/internal/config"
	"gamehub/internal/realtime"
	"gamehub/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, hub *realtime.Hub) *chi.Mux {
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	accountSvc := appaccount.NewService(st, tokens, cfg.BcryptCost)
	socialSvc := appsocial.NewService(st)
	publicSvc := apppublic.NewService(st)

	accountHandlers := NewAccountHandlers(accountSvc)
	socialHandlers := NewSocialHandlers(socialSvc)
	publicHandlers := NewPublicHandlers(publicSvc, st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", publicHandlers.Health())
	r.Get("/ws", hub.HandleWS)

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/auth/signup", accountHandlers.SignUp())
		r.Post("/auth/signin", accountHandlers.SignIn())
		r.Get("/games", publicHandlers.Games())
		r.Get("/games/{game_id}", publicHandlers.Game())
		r.Get("/leaderboard/{game_id}", publicHandlers.Leaderboard())
		r.Get("/leaderboard/{game_id}/users/{user_id}", publicHandlers.UserScore())
		r.Get("/globalchat", publicHandlers.GlobalChat())
		r.Get("/users/{user_id}", accountHandlers.PublicProfile())

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Get("/me", accountHandlers.Me())
			r.Patch("/me/username", accountHandlers.UpdateUsername())
			r.Patch("/me/password", accountHandlers.UpdatePassword())
			r.Patch("/me/bio", accountHandlers.UpdateBio())
			r.Patch("/me/avatar", accountHandlers.UpdateAvatar())
			r.Post("/me/games-played", accountHandlers.IncrementGamesPlayed())
			r.Delete("/me", accountHandlers.DeleteAccount())

			r.Get("/friends", socialHandlers.Friends())
			r.Delete("/friends/{friend_id}", socialHandlers.RemoveFriend())
			r.Get("/friends/{friend_id}/messages", socialHandlers.Messages())
			r.Post("/messages", socialHandlers.SendMessage())

			r.Get("/requests", socialHandlers.Requests())
			r.Post("/requests", socialHandlers.SendRequest())
			r.Post("/requests/accept", socialHandlers.AcceptRequest())
			r.Post("/requests/decline", socialHandlers.DeclineRequest())

			r.Post("/leaderboard", publicHandlers.SubmitScore())
			r.Post("/globalchat", publicHandlers.PostGlobalChat())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
