package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env              string        `yaml:"env" env:"ENV" env-default:"local"`
	OperationTimeout time.Duration `yaml:"operation_timeout" env:"OPERATION_TIMEOUT" env-default:"5s"`
	HTTPServer       HTTPServer    `yaml:"http_server"`
	DB               DB            `yaml:"db"`
	Cache            Cache         `yaml:"cache"`
	FileStorage      FileStorage   `yaml:"file_storage"`
	Auth             Auth          `yaml:"auth"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DB       string `yaml:"db" env:"DB_NAME" env-default:"distro"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSLMODE" env-default:"disable"`
}

// Cache is optional: an empty Addr disables caching.
type Cache struct {
	Addr     string        `yaml:"addr" env:"CACHE_ADDR"`
	Password string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	UsersTTL time.Duration `yaml:"users_ttl" env:"CACHE_USERS_TTL" env-default:"1m"`
}

type FileStorage struct {
	Path          string `yaml:"path" env:"UPLOAD_PATH" env-default:"./Archivos"`
	MaxMemoryMB   int64  `yaml:"max_memory_mb" env:"UPLOAD_MAX_MEMORY_MB" env-default:"10"`
	MaxUploadSize int64  `yaml:"max_upload_mb" env:"UPLOAD_MAX_MB" env-default:"100"`
}

type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"2h"`
	Hasher     string        `yaml:"hasher" env:"PASSWORD_HASHER" env-default:"md5"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// MustLoad reads an optional .env file, then the YAML file named by
// CONFIG_PATH (if set) and finally the environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %s", err)
	}

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.OperationTimeout <= 0 {
		return nil, errors.New("operation timeout must be positive")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &cfg, nil
}
