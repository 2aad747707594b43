package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
	index         map[string]player.Player
}

// NewPlayerRepository keeps the given order as roster order.
func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersByTeam := make(map[string][]player.Player)
	index := make(map[string]player.Player, len(players))

	for _, p := range players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
		index[p.ID] = p
	}

	return &PlayerRepository{
		playersByTeam: playersByTeam,
		index:         index,
	}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}
