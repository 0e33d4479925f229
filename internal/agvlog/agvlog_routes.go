package agvlog

import (
	"go-agv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	logs := r.Group("/agvs")
	logs.Use(authMW)
	{
		logs.GET("/logs/:id", middleware.RateLimitByUser(2, 10), handler.ListByAGV)
	}
}
