package livefeed

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/courtside/internal/domain/stat"
)

const defaultStreamMaxLen = 10000

// StreamKey is the Redis stream a game's recorded stats are appended to.
func StreamKey(gameID string) string {
	return "games.stats." + gameID
}

type statMessage struct {
	GameID     string    `json:"game_id"`
	PlayerID   string    `json:"player_id"`
	EventKind  string    `json:"event_kind"`
	Count      int       `json:"count,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Publisher appends every recorded stat event to the game's stream.
type Publisher struct {
	client redis.UniversalClient
	maxLen int64
	now    func() time.Time
}

func NewPublisher(client redis.UniversalClient, maxLen int64) *Publisher {
	if maxLen <= 0 {
		maxLen = defaultStreamMaxLen
	}
	return &Publisher{client: client, maxLen: maxLen, now: time.Now}
}

func (p *Publisher) Publish(ctx context.Context, event stat.Event) error {
	data, err := sonic.Marshal(statMessage{
		GameID:     event.GameID,
		PlayerID:   event.PlayerID,
		EventKind:  event.Label(),
		Count:      event.Count,
		RecordedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal stat event: %w", err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(event.GameID),
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"data":       string(data),
			"game_id":    event.GameID,
			"player_id":  event.PlayerID,
			"event_kind": event.Label(),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", StreamKey(event.GameID), err)
	}
	return nil
}
