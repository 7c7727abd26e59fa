package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

// DefaultLikeCounterKey is the Redis key holding the total.
const DefaultLikeCounterKey = "likes:total"

// LikeCounterStore keeps the like counter in a single Redis integer key.
// INCR is atomic on the server, so concurrent increments never collide.
type LikeCounterStore struct {
	rdb *redis.Client
	key string
}

var _ contract.ILikeCounterRepository = (*LikeCounterStore)(nil)

func NewLikeCounterStore(rdb *redis.Client, key string) *LikeCounterStore {
	if key == "" {
		key = DefaultLikeCounterKey
	}
	return &LikeCounterStore{rdb: rdb, key: key}
}

func (s *LikeCounterStore) EnsureInitialized(ctx context.Context) error {
	if err := s.rdb.SetNX(ctx, s.key, 0, 0).Err(); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", s.key, err)
	}
	return nil
}

func (s *LikeCounterStore) GetTotalLikes(ctx context.Context) (int64, error) {
	raw, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		// Key evicted or deleted since startup.
		if err := s.EnsureInitialized(ctx); err != nil {
			return 0, err
		}
		raw, err = s.rdb.Get(ctx, s.key).Result()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	total, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s holds %q", entity.ErrMalformedState, s.key, raw)
	}
	if total < 0 {
		return 0, fmt.Errorf("%w: negative total at %s", entity.ErrMalformedState, s.key)
	}
	return total, nil
}

// incrementScript refuses to touch a value that is not a non-negative
// integer, then INCRs. A missing key starts from zero.
var incrementScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if raw then
	local n = tonumber(raw)
	if n == nil or n < 0 or n ~= math.floor(n) then
		return redis.error_reply('MALFORMED ' .. raw)
	end
end
return redis.call('INCR', KEYS[1])
`)

func (s *LikeCounterStore) IncrementTotalLikes(ctx context.Context) (int64, error) {
	total, err := incrementScript.Run(ctx, s.rdb, []string{s.key}).Int64()
	if err != nil {
		if strings.HasPrefix(err.Error(), "MALFORMED") {
			return 0, fmt.Errorf("%w: %s: %v", entity.ErrMalformedState, s.key, err)
		}
		return 0, fmt.Errorf("failed to increment %s: %w", s.key, err)
	}
	return total, nil
}
