package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// StatPublisher fans recorded events out to live listeners.
type StatPublisher interface {
	Publish(ctx context.Context, event stat.Event) error
}

type noopStatPublisher struct{}

func (noopStatPublisher) Publish(context.Context, stat.Event) error {
	return nil
}

func NewNoopStatPublisher() StatPublisher {
	return noopStatPublisher{}
}

type StatService struct {
	gameRepo   game.Repository
	playerRepo player.Repository
	statRepo   stat.Repository
	publisher  StatPublisher
	boxScores  BoxScoreCache
	logger     *logging.Logger
}

func NewStatService(
	gameRepo game.Repository,
	playerRepo player.Repository,
	statRepo stat.Repository,
	logger *logging.Logger,
) *StatService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		statRepo:   statRepo,
		publisher:  NewNoopStatPublisher(),
		boxScores:  NewNoopBoxScoreCache(),
		logger:     logger,
	}
}

func (s *StatService) SetPublisher(publisher StatPublisher) {
	if publisher != nil {
		s.publisher = publisher
	}
}

func (s *StatService) SetBoxScoreCache(cache BoxScoreCache) {
	if cache != nil {
		s.boxScores = cache
	}
}

// RecordStatEvent increments one counter on the player's line for the game.
// The player must be rostered on the game's home or away team.
func (s *StatService) RecordStatEvent(ctx context.Context, event stat.Event) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.RecordStatEvent")
	defer span.End()

	event.GameID = strings.TrimSpace(event.GameID)
	event.PlayerID = strings.TrimSpace(event.PlayerID)
	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, event.GameID)
	if err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: game=%s", ErrNotFound, event.GameID)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, event.PlayerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, event.PlayerID)
	}
	if !item.Involves(p.TeamID) {
		return fmt.Errorf("%w: player %s does not play in game %s", ErrInvalidInput, p.ID, item.ID)
	}

	return s.record(ctx, event)
}

// record writes an event already known to be valid. Publishing and cache
// invalidation are best effort and never fail the write.
func (s *StatService) record(ctx context.Context, event stat.Event) error {
	if err := s.statRepo.Increment(ctx, stat.Delta(event)); err != nil {
		s.logger.ErrorContext(ctx, "record stat event failed",
			"game_id", event.GameID,
			"player_id", event.PlayerID,
			"event_kind", event.Label(),
			"error", err,
		)
		return fmt.Errorf("increment stat line: %w", err)
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "publish stat event failed", "game_id", event.GameID, "event_kind", event.Label(), "error", err)
	}
	if err := s.boxScores.Invalidate(ctx, event.GameID); err != nil {
		s.logger.WarnContext(ctx, "invalidate box score failed", "game_id", event.GameID, "error", err)
	}

	s.logger.DebugContext(ctx, "stat event recorded",
		"game_id", event.GameID,
		"player_id", event.PlayerID,
		"event_kind", event.Label(),
	)
	return nil
}

