package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

type sequenceIDs struct {
	prefix string
	next   atomic.Int64
}

func (g *sequenceIDs) NewID() (string, error) {
	return fmt.Sprintf("%s%d", g.prefix, g.next.Add(1)), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []stat.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e stat.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type mapBoxScoreCache struct {
	mu          sync.Mutex
	items       map[string]BoxScore
	generations map[string]int64
	invalidated []string
}

func newMapBoxScoreCache() *mapBoxScoreCache {
	return &mapBoxScoreCache{items: map[string]BoxScore{}, generations: map[string]int64{}}
}

func (c *mapBoxScoreCache) Get(_ context.Context, gameID string) (BoxScore, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	box, ok := c.items[gameID]
	return box, ok, nil
}

func (c *mapBoxScoreCache) Generation(_ context.Context, gameID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[gameID], nil
}

func (c *mapBoxScoreCache) Set(_ context.Context, box BoxScore, generation int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[box.GameID] != generation {
		return false, nil
	}
	c.items[box.GameID] = box
	return true, nil
}

func (c *mapBoxScoreCache) Invalidate(_ context.Context, gameID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, gameID)
	c.generations[gameID]++
	c.invalidated = append(c.invalidated, gameID)
	return nil
}

// racingStatRepository runs afterList once, after the listing it returns was
// read, to land a write in the middle of a box-score computation.
type racingStatRepository struct {
	*memory.StatRepository
	once      sync.Once
	afterList func()
}

func (r *racingStatRepository) ListByGame(ctx context.Context, gameID string) ([]stat.Line, error) {
	lines, err := r.StatRepository.ListByGame(ctx, gameID)
	r.once.Do(r.afterList)
	return lines, err
}

var errSinkDown = errors.New("stat sink unavailable")

// flakyStatRepository fails increments for the listed players.
type flakyStatRepository struct {
	*memory.StatRepository
	failFor map[string]bool
}

func (r *flakyStatRepository) Increment(ctx context.Context, delta stat.Line) error {
	if r.failFor[delta.PlayerID] {
		return errSinkDown
	}
	return r.StatRepository.Increment(ctx, delta)
}

type fixture struct {
	teams   *memory.TeamRepository
	players *memory.PlayerRepository
	games   *memory.GameRepository
	stats   *memory.StatRepository
	logger  *logging.Logger
}

func newFixture() fixture {
	teams := memory.NewTeamRepository(memory.SeedTeams())
	return fixture{
		teams:   teams,
		players: memory.NewPlayerRepository(memory.SeedPlayers()),
		games:   memory.NewGameRepository(memory.SeedGames(), teams),
		stats:   memory.NewStatRepository(),
		logger:  logging.NewNop(),
	}
}
