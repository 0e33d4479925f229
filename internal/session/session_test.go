package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-agv/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const ttl = 30 * time.Minute

func TestSessionManager_Create(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mgr := session.NewManager(rdb, ttl)

	// Token dan payload acak, cocokkan dengan regex
	mock.Regexp().ExpectSet(`session:.+`, `.*"user_id":10.*`, ttl).SetVal("OK")

	token, err := mgr.Create(context.Background(), 10)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionManager_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		now := time.Now().UTC()
		payload, _ := json.Marshal(session.Session{
			UserID:    10,
			IssuedAt:  now,
			ExpiresAt: now.Add(ttl),
		})
		mock.ExpectGet("session:token-abc").SetVal(string(payload))

		sess, err := mgr.Get(ctx, "token-abc")

		assert.NoError(t, err)
		assert.Equal(t, uint(10), sess.UserID)
	})

	t.Run("token tidak dikenal", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		mock.ExpectGet("session:token-basi").RedisNil()

		_, err := mgr.Get(ctx, "token-basi")

		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("token kosong - tanpa round trip ke redis", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		_, err := mgr.Get(ctx, "")

		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("payload rusak diperlakukan sebagai session hilang", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		mock.ExpectGet("session:token-abc").SetVal("{rusak")

		_, err := mgr.Get(ctx, "token-abc")

		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestSessionManager_Refresh(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mgr := session.NewManager(rdb, ttl)

	mock.ExpectExpire("session:token-abc", ttl).SetVal(true)

	err := mgr.Refresh(context.Background(), "token-abc")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionManager_Destroy(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		mock.ExpectDel("session:token-abc").SetVal(1)

		assert.NoError(t, mgr.Destroy(ctx, "token-abc"))
	})

	t.Run("idempotent - token sudah hilang tetap sukses", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mgr := session.NewManager(rdb, ttl)

		mock.ExpectDel("session:token-hilang").SetVal(0)

		assert.NoError(t, mgr.Destroy(ctx, "token-hilang"))
	})
}
