package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/config"
	dbpkg "github.com/handykonnect/handykonnect-api/internal/db"
	"github.com/handykonnect/handykonnect-api/internal/events"
	"github.com/handykonnect/handykonnect-api/internal/logger"
	"github.com/handykonnect/handykonnect-api/internal/middleware"
	"github.com/handykonnect/handykonnect-api/internal/realtime"
	"github.com/handykonnect/handykonnect-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unreachable, realtime notifications degraded", zap.Error(err))
	}

	hub := realtime.NewHub(log)
	go hub.Run()

	bridge := realtime.NewBridge(events.NewSubscriber(rdb, log), hub, log)
	go func() {
		if err := bridge.Run(context.Background()); err != nil {
			log.Error("realtime bridge stopped", zap.Error(err))
		}
	}()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, hub, log)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
