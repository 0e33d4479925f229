package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-agv/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName adalah nama cookie yang membawa session token ke client.
const CookieName = "session_token"

const keyPrefix = "session:"

var ErrSessionNotFound = apperror.New(
	apperror.CodeUnauthorized,
	"Login required",
	http.StatusUnauthorized,
)

// Session menyimpan binding user per token. Hanya user id yang disimpan
// (by reference); data user selalu di-fetch ulang dari store per request
// sehingga tidak ada snapshot basi setelah profile update.
type Session struct {
	UserID    uint      `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

//go:generate mockgen -source=session.go -destination=mock/session_manager_mock.go -package=mock
type Manager interface {
	Create(ctx context.Context, userID uint) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	// Refresh menggeser TTL session (sliding expiration).
	Refresh(ctx context.Context, token string) error
	// Destroy bersifat idempotent: token yang sudah tidak ada bukan error.
	Destroy(ctx context.Context, token string) error
}

type manager struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewManager(rdb *redis.Client, ttl time.Duration) Manager {
	return &manager{rdb: rdb, ttl: ttl}
}

func (m *manager) Create(ctx context.Context, userID uint) (string, error) {
	now := time.Now().UTC()
	sess := Session{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := m.rdb.Set(ctx, keyPrefix+token, string(payload), m.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (m *manager) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	val, err := m.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		// Payload rusak diperlakukan sama dengan session hilang.
		return nil, ErrSessionNotFound
	}

	return &sess, nil
}

func (m *manager) Refresh(ctx context.Context, token string) error {
	return m.rdb.Expire(ctx, keyPrefix+token, m.ttl).Err()
}

func (m *manager) Destroy(ctx context.Context, token string) error {
	return m.rdb.Del(ctx, keyPrefix+token).Err()
}
