package app

import (
	"time"

	"go-agv/internal/agv"
	"go-agv/internal/agvlog"
	"go-agv/internal/company"
	"go-agv/internal/config"
	"go-agv/internal/middleware"
	"go-agv/internal/shared/connection"
	"go-agv/internal/user"
	"go-agv/internal/warehouse"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&company.Company{},
		&warehouse.Warehouse{},
		&user.User{},
		&agv.AGV{},
		&agvlog.AGVLog{},
	); err != nil {
		return err
	}
	zap.L().Info("✅ Database migrated")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	// 2. Global middleware: CORS dengan credentials untuk cookie session
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           1 * time.Hour,
	}))
	router.Use(middleware.ContextLogger(zap.L()))

	// 3. Register Modules & Routes
	registerModules(router, db, redisClient, cfg)

	return nil
}
