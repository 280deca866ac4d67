package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	storedBlocksKey = "blockvault:blocks:stored"

	DefaultCacheTTL = time.Hour
)

// CachedBlockRepository remembers stored block numbers in a Redis set so the
// crawler's existence checks skip the database. Cache failures are logged
// and the database stays the source of truth.
//
// The set expires ttl after it is created, so a database reset that bypasses
// DeleteAllBlocks is picked up by the next crawl after at most ttl.
type CachedBlockRepository struct {
	*BlockRepository
	logs  *zap.SugaredLogger
	cache SetCache
	ttl   time.Duration
}

func NewCachedBlockRepository(logger *zap.SugaredLogger, base *BlockRepository, cache SetCache, ttl time.Duration) *CachedBlockRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CachedBlockRepository{
		BlockRepository: base,
		logs:            logger,
		cache:           cache,
		ttl:             ttl,
	}
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return client, nil
}

func (r *CachedBlockRepository) BlockExists(ctx context.Context, number uint64) (bool, error) {
	seen, err := r.cache.SIsMember(ctx, storedBlocksKey, number).Result()
	if err != nil {
		r.logs.Warnw("block cache lookup failed",
			"block", number,
			"error", err)
	} else if seen {
		return true, nil
	}

	exists, err := r.BlockRepository.BlockExists(ctx, number)
	if err != nil {
		return false, err
	}

	if exists {
		r.remember(ctx, number)
	}

	return exists, nil
}

func (r *CachedBlockRepository) SaveBlock(ctx context.Context, block Block) error {
	if err := r.BlockRepository.SaveBlock(ctx, block); err != nil {
		return err
	}

	r.remember(ctx, block.Number)
	return nil
}

func (r *CachedBlockRepository) DeleteAllBlocks(ctx context.Context) (int64, error) {
	deleted, err := r.BlockRepository.DeleteAllBlocks(ctx)
	if err != nil {
		return 0, err
	}

	if err := r.cache.Del(ctx, storedBlocksKey).Err(); err != nil {
		r.logs.Warnw("block cache reset failed", "error", err)
	}

	return deleted, nil
}

func (r *CachedBlockRepository) remember(ctx context.Context, number uint64) {
	if err := r.cache.SAdd(ctx, storedBlocksKey, number).Err(); err != nil {
		r.logs.Warnw("block cache update failed",
			"block", number,
			"error", err)
		return
	}

	// NX keeps the expiry of an existing set, later adds must not extend it
	if err := r.cache.ExpireNX(ctx, storedBlocksKey, r.ttl).Err(); err != nil {
		r.logs.Warnw("block cache expiry failed",
			"ttl", r.ttl,
			"error", err)
	}
}
