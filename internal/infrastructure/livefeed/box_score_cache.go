package livefeed

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/courtside/internal/usecase"
)

const (
	defaultBoxScoreTTL = 30 * time.Second
	generationTTL      = 24 * time.Hour
)

// Keys share a hash tag so the compare-and-set script stays on one cluster slot.
func boxScoreKey(gameID string) string {
	return fmt.Sprintf("game:{%s}:boxscore", gameID)
}

func generationKey(gameID string) string {
	return fmt.Sprintf("game:{%s}:boxscore:gen", gameID)
}

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// BoxScoreCache keeps computed box scores in Redis until the game's next stat write.
type BoxScoreCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewBoxScoreCache(client redis.UniversalClient, ttl time.Duration) *BoxScoreCache {
	if ttl <= 0 {
		ttl = defaultBoxScoreTTL
	}
	return &BoxScoreCache{client: client, ttl: ttl}
}

func (c *BoxScoreCache) Get(ctx context.Context, gameID string) (usecase.BoxScore, bool, error) {
	raw, err := c.client.Get(ctx, boxScoreKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return usecase.BoxScore{}, false, nil
	}
	if err != nil {
		return usecase.BoxScore{}, false, fmt.Errorf("get cached box score: %w", err)
	}

	var box usecase.BoxScore
	if err := sonic.Unmarshal(raw, &box); err != nil {
		return usecase.BoxScore{}, false, fmt.Errorf("decode cached box score: %w", err)
	}
	return box, true, nil
}

func (c *BoxScoreCache) Generation(ctx context.Context, gameID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(gameID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get box score generation: %w", err)
	}
	return gen, nil
}

// Set stores box unless the game was invalidated after generation was read.
func (c *BoxScoreCache) Set(ctx context.Context, box usecase.BoxScore, generation int64) (bool, error) {
	data, err := sonic.Marshal(box)
	if err != nil {
		return false, fmt.Errorf("marshal box score: %w", err)
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{boxScoreKey(box.GameID), generationKey(box.GameID)},
		generation, data, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("cache box score: %w", err)
	}
	return stored == 1, nil
}

func (c *BoxScoreCache) Invalidate(ctx context.Context, gameID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(gameID))
		pipe.Expire(ctx, generationKey(gameID), generationTTL)
		pipe.Del(ctx, boxScoreKey(gameID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate box score: %w", err)
	}
	return nil
}
