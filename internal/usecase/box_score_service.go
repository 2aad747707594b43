package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const defaultBoxScoreWorkers = 4

type PlayerBoxScore struct {
	PlayerID     string       `json:"player_id"`
	Name         string       `json:"name"`
	JerseyNumber int          `json:"jersey_number"`
	Position     string       `json:"position,omitempty"`
	Stats        stat.Summary `json:"stats"`
}

type TeamBoxScore struct {
	TeamID   string           `json:"team_id"`
	TeamName string           `json:"team_name"`
	Players  []PlayerBoxScore `json:"players"`
	Totals   stat.Summary     `json:"totals"`
}

// BoxScore is the per-team projection of a game's stat lines, home first.
type BoxScore struct {
	GameID      string       `json:"game_id"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	Home        TeamBoxScore `json:"home"`
	Away        TeamBoxScore `json:"away"`
}

type GameScore struct {
	GameID       string    `json:"game_id"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	HomeTeamID   string    `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	HomePoints   int       `json:"home_points"`
	AwayTeamID   string    `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	AwayPoints   int       `json:"away_points"`
}

func (b BoxScore) Score() GameScore {
	return GameScore{
		GameID:       b.GameID,
		ScheduledAt:  b.ScheduledAt,
		HomeTeamID:   b.Home.TeamID,
		HomeTeamName: b.Home.TeamName,
		HomePoints:   b.Home.Totals.Points,
		AwayTeamID:   b.Away.TeamID,
		AwayTeamName: b.Away.TeamName,
		AwayPoints:   b.Away.Totals.Points,
	}
}

// BoxScoreCache stores computed box scores until the next write to the game.
// Every Invalidate bumps the game's generation; Set only stores a box score
// computed under the generation that is still current.
type BoxScoreCache interface {
	Get(ctx context.Context, gameID string) (BoxScore, bool, error)
	Generation(ctx context.Context, gameID string) (int64, error)
	Set(ctx context.Context, box BoxScore, generation int64) (bool, error)
	Invalidate(ctx context.Context, gameID string) error
}

type noopBoxScoreCache struct{}

func (noopBoxScoreCache) Get(context.Context, string) (BoxScore, bool, error) {
	return BoxScore{}, false, nil
}

func (noopBoxScoreCache) Generation(context.Context, string) (int64, error) {
	return 0, nil
}

func (noopBoxScoreCache) Set(context.Context, BoxScore, int64) (bool, error) {
	return false, nil
}

func (noopBoxScoreCache) Invalidate(context.Context, string) error {
	return nil
}

func NewNoopBoxScoreCache() BoxScoreCache {
	return noopBoxScoreCache{}
}

type BoxScoreService struct {
	gameRepo   game.Repository
	playerRepo player.Repository
	statRepo   stat.Repository
	cache      BoxScoreCache
	workers    int
	logger     *logging.Logger
}

func NewBoxScoreService(
	gameRepo game.Repository,
	playerRepo player.Repository,
	statRepo stat.Repository,
	workers int,
	logger *logging.Logger,
) *BoxScoreService {
	if workers <= 0 {
		workers = defaultBoxScoreWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BoxScoreService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		statRepo:   statRepo,
		cache:      NewNoopBoxScoreCache(),
		workers:    workers,
		logger:     logger,
	}
}

func (s *BoxScoreService) SetCache(cache BoxScoreCache) {
	if cache != nil {
		s.cache = cache
	}
}

func (s *BoxScoreService) BoxScore(ctx context.Context, gameID string) (BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxScoreService.BoxScore")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return BoxScore{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return BoxScore{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return BoxScore{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	return s.boxScoreFor(ctx, item)
}

func (s *BoxScoreService) boxScoreFor(ctx context.Context, item game.Game) (BoxScore, error) {
	if cached, ok, err := s.cache.Get(ctx, item.ID); err != nil {
		s.logger.WarnContext(ctx, "read cached box score failed", "game_id", item.ID, "error", err)
	} else if ok {
		return cached, nil
	}

	// Read before the stat lines so a write landing mid-computation
	// makes the Set below a no-op.
	generation, genErr := s.cache.Generation(ctx, item.ID)
	if genErr != nil {
		s.logger.WarnContext(ctx, "read box score generation failed", "game_id", item.ID, "error", genErr)
	}

	lines, err := s.statRepo.ListByGame(ctx, item.ID)
	if err != nil {
		return BoxScore{}, fmt.Errorf("list stat lines: %w", err)
	}
	linesByPlayer := make(map[string]stat.Line, len(lines))
	for _, l := range lines {
		linesByPlayer[l.PlayerID] = linesByPlayer[l.PlayerID].Add(l)
	}

	home, err := s.teamBoxScore(ctx, item.HomeTeamID, item.HomeTeamName, linesByPlayer)
	if err != nil {
		return BoxScore{}, err
	}
	away, err := s.teamBoxScore(ctx, item.AwayTeamID, item.AwayTeamName, linesByPlayer)
	if err != nil {
		return BoxScore{}, err
	}
	for playerID := range linesByPlayer {
		s.logger.WarnContext(ctx, "stat line for player outside both rosters", "game_id", item.ID, "player_id", playerID)
	}

	box := BoxScore{
		GameID:      item.ID,
		ScheduledAt: item.ScheduledAt,
		Home:        home,
		Away:        away,
	}
	if genErr == nil {
		stored, err := s.cache.Set(ctx, box, generation)
		if err != nil {
			s.logger.WarnContext(ctx, "cache box score failed", "game_id", item.ID, "error", err)
		} else if !stored {
			s.logger.DebugContext(ctx, "box score superseded by a newer write", "game_id", item.ID, "generation", generation)
		}
	}
	return box, nil
}

// teamBoxScore lists the whole roster in roster order and consumes the
// matching entries of linesByPlayer.
func (s *BoxScoreService) teamBoxScore(ctx context.Context, teamID, teamName string, linesByPlayer map[string]stat.Line) (TeamBoxScore, error) {
	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamBoxScore{}, fmt.Errorf("list players for team %s: %w", teamID, err)
	}

	out := TeamBoxScore{
		TeamID:   teamID,
		TeamName: teamName,
		Players:  make([]PlayerBoxScore, 0, len(roster)),
	}
	teamLines := make([]stat.Line, 0, len(roster))
	for _, p := range roster {
		line := linesByPlayer[p.ID]
		delete(linesByPlayer, p.ID)
		teamLines = append(teamLines, line)
		out.Players = append(out.Players, PlayerBoxScore{
			PlayerID:     p.ID,
			Name:         p.DisplayName(),
			JerseyNumber: p.JerseyNumber,
			Position:     p.Position,
			Stats:        stat.Summarize(line),
		})
	}
	out.Totals = stat.Summarize(stat.Total(teamLines))
	return out, nil
}

// ListGameScores returns the score of every scheduled game, in schedule
// order, computing box scores on a bounded worker pool.
func (s *BoxScoreService) ListGameScores(ctx context.Context) ([]GameScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoxScoreService.ListGameScores")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		return []GameScore{}, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(games)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	scores := make([]GameScore, len(games))
	errs := make([]error, len(games))
	var workers sync.WaitGroup
	for i, item := range games {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			box, err := s.boxScoreFor(ctx, item)
			if err != nil {
				errs[i] = fmt.Errorf("box score for game %s: %w", item.ID, err)
				return
			}
			scores[i] = box.Score()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}
