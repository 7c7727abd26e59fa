package usecasecontract

import "time"

// IConfigProvider exposes application configuration.
type IConfigProvider interface {
	GetPort() string
	GetGinMode() string
	GetLogLevel() string
	GetStoreBackend() string
	GetLikesFilePath() string
	GetRedisURL() string
	GetRedisKey() string
	GetMongoURI() string
	GetMongoDBName() string
	GetMongoCollection() string
	GetCORSAllowedOrigins() []string
	GetStaticDir() string
	GetShutdownTimeout() time.Duration
}
