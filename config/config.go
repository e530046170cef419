package config

import (
	"errors"
	"os"
)

// Config holds every runtime setting the service needs. Values come from
// the environment (a .env file is loaded in main if present).
type Config struct {
	MongoURI  string
	Database  string
	SecretKey []byte
	Addr      string
}

// Load reads the configuration from the environment. The JWT secret key has
// no default: tokens signed with a guessable key are worthless, so startup
// fails without one.
func Load() (Config, error) {
	cfg := Config{
		MongoURI:  getenv("MONGODB_URI", "mongodb://localhost:27017/"),
		Database:  getenv("MONGODB_DATABASE", "my_jet"),
		SecretKey: []byte(os.Getenv("JWT_SECRET_KEY")),
		Addr:      getenv("LISTEN_ADDR", ":8080"),
	}
	if len(cfg.SecretKey) == 0 {
		return Config{}, errors.New("JWT_SECRET_KEY is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
