package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-agv/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency mencegah double-submit POST dengan header Idempotency-Key.
// Response sukses pertama di-cache dan di-replay untuk key yang sama;
// request ganda yang masih in-flight ditolak lewat lock SetNX.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetUint(UserIDKey)
		cacheKey := fmt.Sprintf("idemp:%s:%d:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Replay response yang sudah pernah sukses
		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached response.Envelope
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.AbortWithStatusJSON(http.StatusOK, cached)
				return
			}
		}

		// 2. Atomic lock. Expiry pendek agar lock hilang sendiri kalau crash.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "Request is still being processed", nil)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		// 3. Cache hanya response sukses; lock selalu dilepas
		if rec.Status() >= 200 && rec.Status() < 300 {
			rdb.Set(c.Request.Context(), cacheKey, rec.body.Bytes(), idempotencyTTL)
		}
		rdb.Del(c.Request.Context(), lockKey)
	}
}
