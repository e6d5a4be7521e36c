package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by STORE_BACKEND.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Store selects the persistence adapter backend: file, redis, mongo,
	// or memory.
	Store StoreConfig

	// CartTTL is how long an untouched cart is kept in memory.
	CartTTL time.Duration `env:"CART_TTL, default=2h"`

	Redis RedisConfig
	Mongo MongoConfig
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND, default=file"`
	File    string `env:"STORE_FILE,    default=data/urbanova.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=urbanova"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
