// Command server runs the club content API: public blog and registration
// endpoints plus the JWT-guarded admin surface.
//
// @title                       Anlocid Club API
// @version                     1.0
// @description                 Content and membership API for the automotive club site.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/tuyulonline77-star/anlocid/internal/api"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
	"github.com/tuyulonline77-star/anlocid/internal/core/service"
	"github.com/tuyulonline77-star/anlocid/internal/infrastructure/db/memory"
	"github.com/tuyulonline77-star/anlocid/internal/infrastructure/db/mongo"
	"github.com/tuyulonline77-star/anlocid/internal/infrastructure/db/redis"
	"github.com/tuyulonline77-star/anlocid/internal/pkg/config"
	"github.com/tuyulonline77-star/anlocid/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		articleRepo  ports.ArticleRepository
		memberRepo   ports.MemberRepository
		settingsRepo ports.SettingsRepository
		userRepo     ports.UserRepository
		blobStore    ports.BlobStore
		mongoDB      *gomongo.Database
		redisClient  *goredis.Client
	)

	switch cfg.StorageMode {
	case "memory":
		store := memory.NewStore()
		if err := store.Seed(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("seed memory store")
		}
		articleRepo = store.Articles()
		memberRepo = store.Members()
		settingsRepo = store.Settings()
		userRepo = store.Users()
		blobStore = store.Blobs()
		log.Info().Msg("storage mode: memory")

	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongodb")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		mongoDB = db

		articles := mongo.NewArticleRepository(db)
		members := mongo.NewMemberRepository(db)
		users := mongo.NewUserRepository(db)
		for name, ensure := range map[string]func(context.Context) error{
			"articles": articles.EnsureIndexes,
			"members":  members.EnsureIndexes,
			"users":    users.EnsureIndexes,
		} {
			if err := ensure(ctx); err != nil {
				log.Fatal().Err(err).Str("collection", name).Msg("ensure indexes")
			}
		}
		if err := mongo.Seed(ctx, db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("seed mongodb")
		}

		bucket, err := mongo.NewBlobStore(db)
		if err != nil {
			log.Fatal().Err(err).Msg("init gridfs bucket")
		}

		articleRepo = articles
		memberRepo = members
		settingsRepo = mongo.NewSettingsRepository(db)
		userRepo = users
		blobStore = bucket
		log.Info().Str("database", cfg.Mongo.Database).Msg("storage mode: mongo")

	default:
		log.Fatal().Str("mode", cfg.StorageMode).Msg("unknown STORAGE_MODE, want memory or mongo")
	}

	var guard service.RegistrationGuard
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer client.Close()
		redisClient = client
		guard = redis.NewRegistrationGuard(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("registration guard enabled")
	}

	svc := api.Services{
		Articles: service.NewArticleService(articleRepo, log),
		Members:  service.NewMemberService(memberRepo, guard, log),
		Settings: service.NewSettingsService(settingsRepo, log),
		Auth:     service.NewAuthService(userRepo, service.NewSessionManager(), cfg.JWTSecret, 24*time.Hour),
		Uploads:  service.NewUploadService(blobStore, cfg.UploadBaseURL, log),
	}

	e := api.NewRouter(svc, cfg.JWTSecret, mongoDB, redisClient)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
