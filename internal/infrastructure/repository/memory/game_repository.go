package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

type GameRepository struct {
	mu    sync.RWMutex
	games map[string]game.Game
	teams team.Repository
}

// NewGameRepository resolves team display names through teams on read.
func NewGameRepository(games []game.Game, teams team.Repository) *GameRepository {
	index := make(map[string]game.Game, len(games))
	for _, item := range games {
		index[item.ID] = item
	}

	return &GameRepository{games: index, teams: teams}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	r.mu.RLock()
	out := make([]game.Game, 0, len(r.games))
	for _, item := range r.games {
		out = append(out, item)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b game.Game) int {
		if c := a.ScheduledAt.Compare(b.ScheduledAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for i := range out {
		resolved, err := r.resolveNames(ctx, out[i])
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}

	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	r.mu.RLock()
	item, ok := r.games[gameID]
	r.mu.RUnlock()
	if !ok {
		return game.Game{}, false, nil
	}

	resolved, err := r.resolveNames(ctx, item)
	if err != nil {
		return game.Game{}, false, err
	}
	return resolved, true, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (game.Game, error) {
	if g.ID == "" {
		return game.Game{}, fmt.Errorf("game id is required")
	}

	r.mu.Lock()
	if _, exists := r.games[g.ID]; exists {
		r.mu.Unlock()
		return game.Game{}, fmt.Errorf("game %s already exists", g.ID)
	}
	g.ScheduledAt = g.ScheduledAt.UTC()
	r.games[g.ID] = g
	r.mu.Unlock()

	return r.resolveNames(ctx, g)
}

func (r *GameRepository) Delete(_ context.Context, gameID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, gameID)
	return nil
}

func (r *GameRepository) resolveNames(ctx context.Context, g game.Game) (game.Game, error) {
	if r.teams == nil {
		return g, nil
	}

	home, _, err := r.teams.GetByID(ctx, g.HomeTeamID)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve home team: %w", err)
	}
	away, _, err := r.teams.GetByID(ctx, g.AwayTeamID)
	if err != nil {
		return game.Game{}, fmt.Errorf("resolve away team: %w", err)
	}
	g.HomeTeamName = home.Name
	g.AwayTeamName = away.Name
	return g, nil
}
