package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

var _ purchasing.OrderLocker = (*RedisLocker)(nil)

// lockTTL cota superior de una recepción; el lock expira solo si el proceso
// muere a mitad de operación.
const lockTTL = 30 * time.Second

// RedisLocker serializa operaciones por orden entre varias instancias de la
// API usando redislock sobre Redis.
type RedisLocker struct {
	locker *redislock.Client
}

// NewRedisLocker construye el locker sobre un cliente Redis.
func NewRedisLocker(rdb *redis.Client) *RedisLocker {
	return &RedisLocker{locker: redislock.New(rdb)}
}

// Acquire obtiene el lock de la orden con reintentos cortos; si otra instancia
// lo retiene más allá de la espera, devuelve domain.ErrConflict para que el
// caller reintente.
func (l *RedisLocker) Acquire(ctx context.Context, orderID string) (func(), error) {
	key := fmt.Sprintf("po:%s", orderID)
	lock, err := l.locker.Obtain(ctx, key, lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 50),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("obtain order lock: %w", err)
	}
	return func() {
		_ = lock.Release(context.Background())
	}, nil
}
