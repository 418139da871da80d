package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	// StoreMemory keeps users in the in-process seeded store (default).
	StoreMemory = "memory"
	// StoreMongo backs the credential store with MongoDB.
	StoreMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionCookie is the cookie name carrying the opaque session token.
	SessionCookie string `env:"SESSION_COOKIE, default=glossary_session"`
	// SessionTTL expires sessions after the given duration; 0 disables expiry.
	SessionTTL time.Duration `env:"SESSION_TTL, default=0"`

	// UserStore selects the credential-store backend: memory or mongo.
	UserStore string `env:"USER_STORE, default=memory"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=glossary"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
