package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/lineup"
	"github.com/riskibarqy/courtside/internal/domain/playcapture"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	sessionKeyPrefix       = "session:"
	defaultStartersPerTeam = 5

	MessageStatsRecorded = "Stat(s) updated."
	MessagePartialRecord = "Stat(s) partially recorded."
	MessageLineupUpdated = "Lineup updated."
)

type ScorekeepingConfig struct {
	StartersPerTeam int
}

// ActivePlay is the question state of the tree currently being answered.
type ActivePlay struct {
	Kind     playcapture.StatKind `json:"stat"`
	Actor    player.Player        `json:"-"`
	Steps    []playcapture.Step   `json:"steps"`
	Complete bool                 `json:"complete"`
}

type SessionView struct {
	SessionID string          `json:"session_id"`
	Game      game.Game       `json:"-"`
	Lineup    lineup.Snapshot `json:"-"`
	Play      *ActivePlay     `json:"play,omitempty"`
}

// Substitution is the lineup change applied by a submitted substitution play.
type Substitution struct {
	OutgoingID string `json:"outgoing_player_id"`
	IncomingID string `json:"incoming_player_id"`
}

// SubmitResult reports what a submit actually wrote. Writes are not
// transactional: events before a failure stay recorded.
type SubmitResult struct {
	Recorded     []stat.Event  `json:"-"`
	Failed       []stat.Event  `json:"-"`
	Substitution *Substitution `json:"substitution,omitempty"`
	Message      string        `json:"message"`
}

// gameSession holds the lineup and at most one tree for one operator.
type gameSession struct {
	mu     sync.Mutex
	id     string
	lineup *lineup.Lineup
	active playcapture.Tree
}

func (s *gameSession) view() SessionView {
	out := SessionView{
		SessionID: s.id,
		Game:      s.lineup.Game(),
		Lineup:    s.lineup.Snapshot(),
	}
	if s.active != nil {
		out.Play = &ActivePlay{
			Kind:     s.active.Kind(),
			Actor:    s.active.Actor(),
			Steps:    s.active.Steps(),
			Complete: s.active.Complete(),
		}
	}
	return out
}

type ScorekeepingService struct {
	gameRepo   game.Repository
	playerRepo player.Repository
	stats      *StatService
	sessions   *cache.Store
	ids        id.Generator
	cfg        ScorekeepingConfig
	logger     *logging.Logger
}

func NewScorekeepingService(
	gameRepo game.Repository,
	playerRepo player.Repository,
	stats *StatService,
	sessions *cache.Store,
	ids id.Generator,
	cfg ScorekeepingConfig,
	logger *logging.Logger,
) *ScorekeepingService {
	if cfg.StartersPerTeam <= 0 {
		cfg.StartersPerTeam = defaultStartersPerTeam
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorekeepingService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		stats:      stats,
		sessions:   sessions,
		ids:        ids,
		cfg:        cfg,
		logger:     logger,
	}
}

type teamRoster struct {
	teamID  string
	players []player.Player
}

// OpenSession loads both rosters and seeds the lineup in roster order.
func (s *ScorekeepingService) OpenSession(ctx context.Context, gameID string) (SessionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorekeepingService.OpenSession")
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return SessionView{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return SessionView{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return SessionView{}, fmt.Errorf("%w: game=%s", ErrNotFound, gameID)
	}

	loaders := pool.NewWithResults[teamRoster]().WithContext(ctx)
	for _, teamID := range item.TeamIDs() {
		loaders.Go(func(ctx context.Context) (teamRoster, error) {
			players, err := s.playerRepo.ListByTeam(ctx, teamID)
			if err != nil {
				return teamRoster{}, fmt.Errorf("list players for team %s: %w", teamID, err)
			}
			return teamRoster{teamID: teamID, players: players}, nil
		})
	}
	rosters, err := loaders.Wait()
	if err != nil {
		return SessionView{}, fmt.Errorf("load rosters: %w", err)
	}

	rosterByTeam := make(map[string][]player.Player, len(rosters))
	for _, r := range rosters {
		rosterByTeam[r.teamID] = r.players
	}

	l, err := lineup.Initialize(item, rosterByTeam, s.cfg.StartersPerTeam)
	if err != nil {
		return SessionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sessionID, err := s.ids.NewID()
	if err != nil {
		return SessionView{}, fmt.Errorf("generate session id: %w", err)
	}

	sess := &gameSession{id: sessionID, lineup: l}
	s.sessions.Set(ctx, sessionKeyPrefix+sessionID, sess)

	s.logger.InfoContext(ctx, "scorekeeping session opened",
		"session_id", sessionID,
		"game_id", item.ID,
		"home_roster", len(rosterByTeam[item.HomeTeamID]),
		"away_roster", len(rosterByTeam[item.AwayTeamID]),
	)
	return sess.view(), nil
}

func (s *ScorekeepingService) Session(ctx context.Context, sessionID string) (SessionView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// CloseSession drops the session. Closing an unknown session is a no-op.
func (s *ScorekeepingService) CloseSession(ctx context.Context, sessionID string) {
	s.sessions.Delete(ctx, sessionKeyPrefix+strings.TrimSpace(sessionID))
}

// PurgeExpiredSessions drops every session idle for longer than the
// session TTL and returns how many were removed.
func (s *ScorekeepingService) PurgeExpiredSessions(ctx context.Context) int {
	removed := s.sessions.Purge(ctx)
	if removed > 0 {
		s.logger.DebugContext(ctx, "expired scorekeeping sessions purged", "count", removed)
	}
	return removed
}

// BeginPlay replaces any active play with a new tree for playerID. A
// rejected begin leaves the previous play in place.
func (s *ScorekeepingService) BeginPlay(ctx context.Context, sessionID, playerID, statKind string) (SessionView, error) {
	kind, err := playcapture.ParseStatKind(statKind)
	if err != nil {
		return SessionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return SessionView{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	tree, err := playcapture.New(kind, playerID, sess.lineup)
	if err != nil {
		return SessionView{}, mapPlayError(err)
	}
	sess.active = tree
	return sess.view(), nil
}

func (s *ScorekeepingService) AnswerPlay(ctx context.Context, sessionID, question, value string) (SessionView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.active == nil {
		return SessionView{}, mapPlayError(playcapture.ErrNoActivePlay)
	}
	q := playcapture.Question(strings.TrimSpace(question))
	if err := sess.active.Answer(q, value); err != nil {
		return SessionView{}, mapPlayError(err)
	}
	return sess.view(), nil
}

func (s *ScorekeepingService) DiscardPlay(ctx context.Context, sessionID string) (SessionView, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.active = nil
	return sess.view(), nil
}

// SubmitPlay writes the events of the active play in emission order and
// tears the play down. A failed write is logged and reported but does not
// stop the remaining writes.
func (s *ScorekeepingService) SubmitPlay(ctx context.Context, sessionID string) (SubmitResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorekeepingService.SubmitPlay")
	defer span.End()

	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.active == nil {
		return SubmitResult{}, mapPlayError(playcapture.ErrNoActivePlay)
	}
	gameID := sess.lineup.Game().ID
	events, err := sess.active.Events(gameID)
	if err != nil {
		return SubmitResult{}, mapPlayError(err)
	}

	if sub, ok := sess.active.(*playcapture.SubstitutionTree); ok {
		outgoing, incoming, _ := sub.Swap()
		if err := sess.lineup.Substitute(outgoing, incoming); err != nil {
			return SubmitResult{}, mapPlayError(err)
		}
		sess.active = nil
		s.logger.InfoContext(ctx, "substitution applied", "session_id", sess.id, "game_id", gameID, "out", outgoing, "in", incoming)
		return SubmitResult{
			Recorded:     []stat.Event{},
			Failed:       []stat.Event{},
			Substitution: &Substitution{OutgoingID: outgoing, IncomingID: incoming},
			Message:      MessageLineupUpdated,
		}, nil
	}

	result := SubmitResult{Recorded: []stat.Event{}, Failed: []stat.Event{}, Message: MessageStatsRecorded}
	for _, event := range events {
		if err := s.stats.record(ctx, event); err != nil {
			result.Failed = append(result.Failed, event)
			continue
		}
		result.Recorded = append(result.Recorded, event)
	}
	if len(result.Failed) > 0 {
		result.Message = MessagePartialRecord
	}
	sess.active = nil

	return result, nil
}

func (s *ScorekeepingService) session(ctx context.Context, sessionID string) (*gameSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	key := sessionKeyPrefix + sessionID
	value, ok := s.sessions.Get(ctx, key)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	sess, ok := value.(*gameSession)
	if !ok {
		return nil, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	s.sessions.Touch(ctx, key)
	return sess, nil
}

func mapPlayError(err error) error {
	switch {
	case errors.Is(err, lineup.ErrUnknownPlayer):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, playcapture.ErrNoActivePlay),
		errors.Is(err, lineup.ErrAlreadyOnCourt):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, playcapture.ErrUnknownStatKind),
		errors.Is(err, playcapture.ErrNotOnCourt),
		errors.Is(err, playcapture.ErrQuestionNotOpen),
		errors.Is(err, playcapture.ErrInvalidAnswer),
		errors.Is(err, playcapture.ErrIncomplete),
		errors.Is(err, lineup.ErrEmptyBench):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}
