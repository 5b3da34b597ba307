// Package captcha stores the arithmetic challenges external signups must answer.
package captcha

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gewis/gewisweb-api/internal/application/ports"
)

const keyPrefix = "captcha:"

var _ ports.CaptchaStore = (*RedisStore)(nil)

// RedisStore keeps the expected answer under a TTL. Verify deletes it, so each challenge is single use.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisStore{rdb: rdb, ttl: ttl, now: time.Now}
}

// Issue creates a challenge "a + b" with operands in [1, 10].
func (s *RedisStore) Issue(ctx context.Context) (*ports.Challenge, error) {
	a, err := operand()
	if err != nil {
		return nil, err
	}
	b, err := operand()
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	if err := s.rdb.Set(ctx, keyPrefix+id, strconv.Itoa(a+b), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store captcha: %w", err)
	}
	return &ports.Challenge{
		ID:        id,
		Question:  fmt.Sprintf("%d + %d", a, b),
		ExpiresAt: s.now().Add(s.ttl),
	}, nil
}

// Verify consumes the challenge. Unknown or expired ids are a wrong answer, not an error.
func (s *RedisStore) Verify(ctx context.Context, id, answer string) (bool, error) {
	if id == "" {
		return false, nil
	}
	want, err := s.rdb.GetDel(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify captcha: %w", err)
	}
	return strings.TrimSpace(answer) == want, nil
}

func operand() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10))
	if err != nil {
		return 0, fmt.Errorf("captcha operand: %w", err)
	}
	return int(n.Int64()) + 1, nil
}
