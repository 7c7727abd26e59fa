package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mikiasgoitom/likeboard/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// Store backends.
const (
	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"
	StoreBackendMongo = "mongo"
)

// Config holds application configuration values.
type Config struct {
	Port               string        `mapstructure:"PORT" validate:"required,numeric"`
	GinMode            string        `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	LogLevel           string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	StoreBackend       string        `mapstructure:"STORE_BACKEND" validate:"oneof=file redis mongo"`
	LikesFile          string        `mapstructure:"LIKES_FILE" validate:"required_if=StoreBackend file"`
	RedisURL           string        `mapstructure:"REDIS_URL" validate:"required_if=StoreBackend redis"`
	RedisKey           string        `mapstructure:"REDIS_KEY" validate:"required"`
	MongoURI           string        `mapstructure:"MONGODB_URI" validate:"required_if=StoreBackend mongo"`
	MongoDBName        string        `mapstructure:"MONGODB_DB_NAME" validate:"required"`
	MongoCollection    string        `mapstructure:"MONGODB_COLLECTION" validate:"required"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS" validate:"corsorigins"`
	StaticDir          string        `mapstructure:"STATIC_DIR"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig loads configuration from the environment, applying defaults
// for anything unset, and validates the result.
func NewConfig() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", StoreBackendFile)
	v.SetDefault("LIKES_FILE", "likes-data.json")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_KEY", "likes:total")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DB_NAME", "likeboard")
	v.SetDefault("MONGODB_COLLECTION", "likes")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := validator.NewValidator().ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetGinMode returns the gin mode (debug, release, test).
func (c *Config) GetGinMode() string {
	return c.GinMode
}

func (c *Config) GetLogLevel() string {
	return c.LogLevel
}

// GetStoreBackend returns which counter store to use.
func (c *Config) GetStoreBackend() string {
	return c.StoreBackend
}

// GetLikesFilePath returns the JSON state file, relative to the working directory unless absolute.
func (c *Config) GetLikesFilePath() string {
	return c.LikesFile
}

func (c *Config) GetRedisURL() string {
	return c.RedisURL
}

func (c *Config) GetRedisKey() string {
	return c.RedisKey
}

func (c *Config) GetMongoURI() string {
	return c.MongoURI
}

func (c *Config) GetMongoDBName() string {
	return c.MongoDBName
}

func (c *Config) GetMongoCollection() string {
	return c.MongoCollection
}

// GetCORSAllowedOrigins splits the comma-separated origin list.
func (c *Config) GetCORSAllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// GetStaticDir returns the directory served at "/", or "" to disable.
func (c *Config) GetStaticDir() string {
	return c.StaticDir
}

func (c *Config) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}
