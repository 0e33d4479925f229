package app

import (
	"go-agv/internal/agv"
	"go-agv/internal/agvlog"
	"go-agv/internal/bootstrap"
	"go-agv/internal/company"
	"go-agv/internal/config"
	"go-agv/internal/middleware"
	"go-agv/internal/session"
	"go-agv/internal/user"
	"go-agv/internal/warehouse"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	warehouseRepo := warehouse.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	agvRepo := agv.NewRepository(gormDB)
	agvLogRepo := agvlog.NewRepository(gormDB)

	// --- Session & Audit ---
	sessionMgr := session.NewManager(rdb, cfg.SessionTTL)
	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	companyService := company.NewService(companyRepo, rdb)
	warehouseService := warehouse.NewService(warehouseRepo)
	userService := user.NewService(userRepo, companyRepo, warehouseRepo)
	agvService := agv.NewService(agvRepo, warehouseRepo)
	agvLogService := agvlog.NewService(agvLogRepo, agvRepo)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	userHandler := user.NewHandler(
		userService,
		warehouseService,
		sessionMgr,
		auditLogger,
		user.CookieConfig{
			Secure: cfg.IsProduction(),
			MaxAge: int(cfg.SessionTTL.Seconds()),
		},
	)
	agvHandler := agv.NewHandler(agvService)
	agvLogHandler := agvlog.NewHandler(agvLogService)

	// --- Routes Registration ---
	authMW := middleware.SessionAuth(sessionMgr)

	api := router.Group("/api")
	{
		company.RegisterRoutes(api, companyHandler)
		user.RegisterRoutes(api, userHandler, authMW)
		agv.RegisterRoutes(api, agvHandler, authMW, rdb)
		agvlog.RegisterRoutes(api, agvLogHandler, authMW)
	}
}
