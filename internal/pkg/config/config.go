package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StorageMode selects the persistence backend: "memory" keeps every
	// record in process, "mongo" uses MongoDB plus GridFS for uploads.
	StorageMode string `env:"STORAGE_MODE, default=memory"`

	// UploadBaseURL prefixes the public URLs handed back after an upload.
	// Empty yields relative "/uploads/<key>" URLs.
	UploadBaseURL string `env:"UPLOAD_BASE_URL"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig seeds the single admin account at startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@demo.com"`
	Password string `env:"ADMIN_PASSWORD, default=password"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=anlocid"`
}

// RedisConfig configures the registration double-submit guard. An empty
// Addr disables the guard entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
