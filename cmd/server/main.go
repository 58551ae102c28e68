package main

import (
	"context"
	"net/http"
	"time"

	"gamehub/internal/config"
	"gamehub/internal/logging"
	"gamehub/internal/realtime"
	"gamehub/internal/store"
	httptransport "gamehub/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.EnsureDefaultGames(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ensure default games failed")
	}

	hub := realtime.NewHub(st, time.Duration(cfg.RoomIdleMinutes)*time.Minute)
	go hub.Run()
	defer hub.Stop()

	r := httptransport.NewRouter(st, cfg, hub)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
