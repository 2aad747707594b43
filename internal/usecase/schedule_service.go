package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const (
	gameDateLayout = "2006-01-02"
	gameTimeLayout = "3:04 PM"
)

// CreateGameInput schedules a game either at ScheduledAt or, when that is
// zero, at Date ("YYYY-MM-DD") and Time ("hh:mm AM/PM") read as UTC.
type CreateGameInput struct {
	HomeTeamID  string
	AwayTeamID  string
	ScheduledAt time.Time
	Date        string
	Time        string
}

type ScheduleService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	statRepo   stat.Repository
	boxScores  BoxScoreCache
	ids        id.Generator
	logger     *logging.Logger
}

func NewScheduleService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	statRepo stat.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *ScheduleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		statRepo:   statRepo,
		boxScores:  NewNoopBoxScoreCache(),
		ids:        ids,
		logger:     logger,
	}
}

func (s *ScheduleService) SetBoxScoreCache(cache BoxScoreCache) {
	if cache != nil {
		s.boxScores = cache
	}
}

func (s *ScheduleService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *ScheduleService) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListPlayers")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return players, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetSchedule")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

func (s *ScheduleService) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	return item, nil
}

func (s *ScheduleService) CreateGame(ctx context.Context, input CreateGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.CreateGame")
	defer span.End()

	input.HomeTeamID = strings.TrimSpace(input.HomeTeamID)
	input.AwayTeamID = strings.TrimSpace(input.AwayTeamID)
	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return game.Game{}, fmt.Errorf("%w: home_team_id and away_team_id are required", ErrInvalidInput)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return game.Game{}, fmt.Errorf("%w: home and away team must be different", ErrInvalidInput)
	}

	scheduledAt, err := resolveScheduledAt(input)
	if err != nil {
		return game.Game{}, err
	}

	home, err := s.requireTeam(ctx, input.HomeTeamID)
	if err != nil {
		return game.Game{}, err
	}
	away, err := s.requireTeam(ctx, input.AwayTeamID)
	if err != nil {
		return game.Game{}, err
	}

	gameID, err := s.ids.NewID()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate game id: %w", err)
	}

	item := game.Game{
		ID:           gameID,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeamName: home.Name,
		AwayTeamName: away.Name,
		ScheduledAt:  scheduledAt,
	}
	if err := item.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.gameRepo.Create(ctx, item)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}
	if created.HomeTeamName == "" {
		created.HomeTeamName = home.Name
	}
	if created.AwayTeamName == "" {
		created.AwayTeamName = away.Name
	}

	s.logger.InfoContext(ctx, "game created",
		"game_id", created.ID,
		"home_team_id", created.HomeTeamID,
		"away_team_id", created.AwayTeamID,
		"scheduled_at", created.ScheduledAt.Format(time.RFC3339),
	)
	return created, nil
}

// DeleteGame removes the game's stat lines before the game itself.
func (s *ScheduleService) DeleteGame(ctx context.Context, gameID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.DeleteGame")
	defer span.End()

	item, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if err := s.statRepo.DeleteByGame(ctx, item.ID); err != nil {
		return fmt.Errorf("delete stats for game: %w", err)
	}
	if err := s.gameRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if err := s.boxScores.Invalidate(ctx, item.ID); err != nil {
		s.logger.WarnContext(ctx, "invalidate box score failed", "game_id", item.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "game deleted", "game_id", item.ID)
	return nil
}

func (s *ScheduleService) requireTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: unknown team %s", ErrInvalidInput, teamID)
	}
	return item, nil
}

func resolveScheduledAt(input CreateGameInput) (time.Time, error) {
	if !input.ScheduledAt.IsZero() {
		return input.ScheduledAt.UTC(), nil
	}

	date := strings.TrimSpace(input.Date)
	clock := strings.ToUpper(strings.TrimSpace(input.Time))
	if date == "" || clock == "" {
		return time.Time{}, fmt.Errorf("%w: scheduled_at or date and time are required", ErrInvalidInput)
	}

	value, err := time.ParseInLocation(gameDateLayout+" "+gameTimeLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD and time hh:mm AM/PM", ErrInvalidInput)
	}
	return value, nil
}
