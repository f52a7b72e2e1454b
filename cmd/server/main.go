package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"auth-service/internal/application/services"
	"auth-service/internal/config"
	"auth-service/internal/delivery/handler"
	"auth-service/internal/domain/repositories"
	"auth-service/internal/infrastructure"
	"auth-service/internal/infrastructure/db/mongodb"
	"auth-service/internal/infrastructure/db/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	userRepo := newUserRepository(cfg)

	var tokenCache *infrastructure.TokenCache
	if cfg.RedisAddr != "" {
		tokenCache = infrastructure.NewTokenCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	hasher := infrastructure.NewPasswordHasher(cfg.BcryptCost)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, hasher, jwtService, tokenCache)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	handler.NewHandler(authService).RegisterRoutes(e)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}

// newUserRepository picks the credential store from configuration. Mongo is
// the default; a failed initial connect is logged and the server keeps
// serving, matching the original bootstrap.
func newUserRepository(cfg *config.Config) repositories.UserRepository {
	if cfg.StorageDriver == "postgres" {
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
		}
		log.Println("✅ Connected to PostgreSQL!")
		return postgres.NewUserRepository(db)
	}

	client, err := mongodb.Connect(cfg.MongoURI)
	if err != nil {
		if client == nil {
			log.Fatal("❌ Invalid MONGO_URI: ", err)
		}
		log.Println("❌ Error al conectar a la base de datos:", err)
	} else {
		log.Println("✅ Conectado a la base de datos 🚀")
	}

	repo := mongodb.NewUserRepository(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		log.Println("❌ Failed to ensure indexes:", err)
	}
	return repo
}
