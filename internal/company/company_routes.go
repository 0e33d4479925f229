package company

import (
	"go-agv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Listing company bersifat publik: dipakai form signup sebelum ada session.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("", middleware.RateLimitByIP(2, 10), handler.GetAll)
	}
}
