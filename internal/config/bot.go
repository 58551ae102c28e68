package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	WSURL    string `env:"WS_URL" envDefault:"ws://localhost:3000/ws"`
	UserID   int64  `env:"BOT_USER_ID" envDefault:"0"`
	Username string `env:"BOT_USERNAME" envDefault:"matchbot"`
	RoomCode string `env:"BOT_ROOM_CODE"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
