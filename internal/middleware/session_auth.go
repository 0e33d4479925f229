package middleware

import (
	"go-agv/internal/session"
	"go-agv/internal/shared/contextutil"
	"go-agv/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey adalah key gin context yang diisi oleh SessionAuth.
const UserIDKey = "user_id"

// SessionAuth adalah gerbang auth untuk route yang diproteksi.
// Route publik (login, signup, listing warehouse/company, check-email)
// didaftarkan tanpa middleware ini; preflight OPTIONS sudah selesai di CORS.
func SessionAuth(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required", nil)
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required", nil)
			c.Abort()
			return
		}

		// Sliding expiration; gagal refresh tidak menggugurkan request.
		if err := sessions.Refresh(c.Request.Context(), token); err != nil {
			zap.L().Warn("session refresh failed", zap.Error(err))
		}

		c.Set(UserIDKey, sess.UserID)
		c.Set("session_token", token)

		ctx := contextutil.WithUserID(c.Request.Context(), sess.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
