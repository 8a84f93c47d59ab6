package main

import (
	"context"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"jardins-api/internal/core/auth"
	"jardins-api/internal/core/cache"
	"jardins-api/internal/core/config"
	"jardins-api/internal/core/database"
	"jardins-api/internal/core/logger"
	"jardins-api/internal/core/server"
	"jardins-api/internal/domain"
	"jardins-api/internal/registry"
	"jardins-api/internal/repo"
	"jardins-api/internal/transport/http/router"
)

// Back-office binary: admin auth, the registre des jardiniers/parcelles and
// content moderation. Holds the in-memory registry snapshot.
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{}, &domain.Jardinier{}, &domain.Parcelle{},
			&domain.BlogPost{}, &domain.Event{}, &domain.Annonce{},
			&domain.Application{}, &domain.FormField{}, &domain.AssociationContent{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	store := registry.NewStore(repo.NewJardinierRepo(db), repo.NewParcelleRepo(db), log)
	// A cold registry is not fatal: the refresh endpoint can retry once the
	// database is reachable again.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := store.LoadAll(ctx); err != nil {
		log.Warn("registry initial load failed", zap.Error(err))
	}
	cancel()

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	r := router.NewAdminEngine(log, router.AdminDeps{
		Store:   store,
		Content: repo.NewContentRepo(db),
		Users:   repo.NewUserRepo(db),
		JWT:     jwter,
		Cache:   cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
	})

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("admin api starting", zap.String("addr", addr))
	server.Run(srv, log)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
