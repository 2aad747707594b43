package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/stat"
)

type lineKey struct {
	gameID   string
	playerID string
}

type StatRepository struct {
	mu    sync.RWMutex
	lines map[lineKey]stat.Line
}

func NewStatRepository() *StatRepository {
	return &StatRepository{lines: make(map[lineKey]stat.Line)}
}

func (r *StatRepository) Increment(_ context.Context, delta stat.Line) error {
	key := lineKey{gameID: delta.GameID, playerID: delta.PlayerID}

	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[key]
	if !ok {
		line = stat.Line{GameID: delta.GameID, PlayerID: delta.PlayerID}
	}
	r.lines[key] = line.Add(delta)
	return nil
}

// ListByGame returns the game's lines ordered by player id.
func (r *StatRepository) ListByGame(_ context.Context, gameID string) ([]stat.Line, error) {
	r.mu.RLock()
	out := make([]stat.Line, 0)
	for key, line := range r.lines {
		if key.gameID == gameID {
			out = append(out, line)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b stat.Line) int {
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
	return out, nil
}

func (r *StatRepository) DeleteByGame(_ context.Context, gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.lines {
		if key.gameID == gameID {
			delete(r.lines, key)
		}
	}
	return nil
}
