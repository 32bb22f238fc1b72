package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	// OwnerID may invoke kill and reload.
	OwnerID string `env:"OWNER_ID"`

	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"bruh "`
	StoragePath   string `env:"STORAGE_PATH" envDefault:"datastore.json"`
	SoundboardDir string `env:"SOUNDBOARD_DIR" envDefault:"soundboard"`

	// Optional SOCKS proxy for YouTube traffic, e.g. socks5://host:1080.
	YouTubeProxy string `env:"YOUTUBE_PROXY"`

	// Address for the status HTTP server; empty disables it.
	StatusAddr string `env:"STATUS_ADDR"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] Config error: %v", err)
	}
	return cfg
}
