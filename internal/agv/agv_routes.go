package agv

import (
	"go-agv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Seluruh route AGV diproteksi session gate; path mengikuti API lama.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rdb *redis.Client) {
	agvs := r.Group("/agvs")
	agvs.Use(authMW)
	{
		agvs.POST("/register",
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			handler.Register,
		)
		agvs.GET("/allAgvs", middleware.RateLimitByUser(2, 10), handler.GetAll)
		agvs.GET("/search/:id", middleware.RateLimitByUser(2, 10), handler.GetByID)
		agvs.PUT("/edit/:id", middleware.RateLimitByUser(1, 3), handler.Update)
		agvs.DELETE("/del/:id", middleware.RateLimitByUser(0.5, 1), handler.Delete)
	}
}
