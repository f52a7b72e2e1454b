package config

import "time"

type Config struct {
	Port          string
	StorageDriver string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
}

func Load() *Config {
	return &Config{
		Port:          GetEnvAsString("PORT", "8080"),
		StorageDriver: GetEnvAsString("STORAGE_DRIVER", "mongodb"),
		MongoURI:      GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnvAsString("MONGO_DATABASE", "auth"),
		PostgresDSN:   GetEnvAsString("POSTGRES_DSN", ""),
		RedisAddr:     GetEnvAsString("REDIS_ADDR", ""),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),
		JWTSecret:     GetEnvAsString("JWT_SECRET", ""),
		TokenTTL:      GetEnvAsDuration("TOKEN_TTL", time.Hour),
		BcryptCost:    GetEnvAsInt("BCRYPT_COST", 10),
	}
}
