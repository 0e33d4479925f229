package user

import (
	"go-agv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Route publik (signup flow) hanya dibatasi rate limit per IP;
// route profil diproteksi session gate.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/signup", middleware.RateLimitByIP(1, 3), handler.Signup)
		users.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		users.GET("/warehouses/:companyId", middleware.RateLimitByIP(2, 10), handler.GetWarehousesByCompany)
		users.GET("/check-email", middleware.RateLimitByIP(2, 10), handler.CheckEmail)

		// Logout dan current tidak lewat session gate: keduanya harus tetap
		// menjawab 200 untuk session yang sudah tidak ada (logout idempotent,
		// current menjawab "Not logged in").
		users.POST("/logout", middleware.RateLimitByIP(1, 5), handler.Logout)
		users.GET("/current", middleware.RateLimitByIP(2, 10), handler.Current)
		users.PUT("/update", authMW, middleware.RateLimitByUser(1, 3), handler.Update)
	}
}
