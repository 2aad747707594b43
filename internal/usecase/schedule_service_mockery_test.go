package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/team"
	gamemock "github.com/riskibarqy/courtside/internal/mocks/domain/game"
	playermock "github.com/riskibarqy/courtside/internal/mocks/domain/player"
	statmock "github.com/riskibarqy/courtside/internal/mocks/domain/stat"
	teammock "github.com/riskibarqy/courtside/internal/mocks/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type scheduleMocks struct {
	teams   *teammock.Repository
	players *playermock.Repository
	games   *gamemock.Repository
	stats   *statmock.Repository
}

func newScheduleServiceWithMocks(t *testing.T) (*ScheduleService, scheduleMocks) {
	m := scheduleMocks{
		teams:   teammock.NewRepository(t),
		players: playermock.NewRepository(t),
		games:   gamemock.NewRepository(t),
		stats:   statmock.NewRepository(t),
	}
	svc := NewScheduleService(m.teams, m.players, m.games, m.stats, &sequenceIDs{prefix: "game-"}, logging.NewNop())
	return svc, m
}

func sameContext(ctx context.Context) any {
	return mock.MatchedBy(func(v context.Context) bool { return v == ctx })
}

func TestScheduleService_CreateGame_IdenticalTeamsNeverTouchStoreUsingMockery(t *testing.T) {
	t.Parallel()

	svc, m := newScheduleServiceWithMocks(t)

	_, err := svc.CreateGame(context.Background(), CreateGameInput{
		HomeTeamID:  "hawks",
		AwayTeamID:  " hawks ",
		ScheduledAt: time.Date(2026, 11, 6, 19, 30, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	m.games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestScheduleService_CreateGame_FromDateAndClockUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-create")
	svc, m := newScheduleServiceWithMocks(t)
	want := time.Date(2026, 11, 6, 19, 5, 0, 0, time.UTC)

	m.teams.
		On("GetByID", sameContext(ctx), "hawks").
		Return(team.Team{ID: "hawks", Name: "Harbor Hawks"}, true, nil).
		Once()
	m.teams.
		On("GetByID", sameContext(ctx), "ridge").
		Return(team.Team{ID: "ridge", Name: "Ridge Runners"}, true, nil).
		Once()
	m.games.
		On("Create", sameContext(ctx), mock.MatchedBy(func(g game.Game) bool {
			return g.ID == "game-1" && g.HomeTeamID == "hawks" && g.AwayTeamID == "ridge" && g.ScheduledAt.Equal(want)
		})).
		Return(func(_ context.Context, g game.Game) (game.Game, error) { return g, nil }).
		Once()

	got, err := svc.CreateGame(ctx, CreateGameInput{
		HomeTeamID: "hawks",
		AwayTeamID: "ridge",
		Date:       "2026-11-06",
		Time:       "07:05 pm",
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if got.HomeTeamName != "Harbor Hawks" || got.AwayTeamName != "Ridge Runners" {
		t.Fatalf("unexpected team names: %+v", got)
	}
	if got.ScheduledAt.Location() != time.UTC {
		t.Fatalf("expected UTC schedule, got %v", got.ScheduledAt)
	}
}

func TestScheduleService_CreateGame_MalformedTimeUsingMockery(t *testing.T) {
	t.Parallel()

	svc, m := newScheduleServiceWithMocks(t)

	cases := []CreateGameInput{
		{HomeTeamID: "hawks", AwayTeamID: "ridge", Date: "06/11/2026", Time: "7:05 PM"},
		{HomeTeamID: "hawks", AwayTeamID: "ridge", Date: "2026-11-06", Time: "19:05"},
		{HomeTeamID: "hawks", AwayTeamID: "ridge"},
	}
	for _, input := range cases {
		if _, err := svc.CreateGame(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
	m.games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScheduleService_CreateGame_UnknownTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newScheduleServiceWithMocks(t)

	m.teams.
		On("GetByID", sameContext(ctx), "hawks").
		Return(team.Team{ID: "hawks", Name: "Harbor Hawks"}, true, nil).
		Once()
	m.teams.
		On("GetByID", sameContext(ctx), "ghosts").
		Return(team.Team{}, false, nil).
		Once()

	_, err := svc.CreateGame(ctx, CreateGameInput{
		HomeTeamID:  "hawks",
		AwayTeamID:  "ghosts",
		ScheduledAt: time.Now(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	m.games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScheduleService_DeleteGame_CascadesStatsFirstUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newScheduleServiceWithMocks(t)
	cache := newMapBoxScoreCache()
	svc.SetBoxScoreCache(cache)

	m.games.
		On("GetByID", sameContext(ctx), "game-7").
		Return(game.Game{ID: "game-7", HomeTeamID: "hawks", AwayTeamID: "ridge"}, true, nil).
		Once()
	mock.InOrder(
		m.stats.On("DeleteByGame", sameContext(ctx), "game-7").Return(nil).Once(),
		m.games.On("Delete", sameContext(ctx), "game-7").Return(nil).Once(),
	)

	if err := svc.DeleteGame(ctx, "game-7"); err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "game-7" {
		t.Fatalf("expected box score invalidation, got %v", cache.invalidated)
	}
}

func TestScheduleService_DeleteGame_StatFailureKeepsGameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newScheduleServiceWithMocks(t)

	m.games.
		On("GetByID", sameContext(ctx), "game-7").
		Return(game.Game{ID: "game-7"}, true, nil).
		Once()
	m.stats.
		On("DeleteByGame", sameContext(ctx), "game-7").
		Return(errSinkDown).
		Once()

	if err := svc.DeleteGame(ctx, "game-7"); !errors.Is(err, errSinkDown) {
		t.Fatalf("expected stat delete error, got %v", err)
	}
	m.games.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestScheduleService_DeleteGame_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newScheduleServiceWithMocks(t)

	m.games.
		On("GetByID", sameContext(ctx), "missing").
		Return(game.Game{}, false, nil).
		Once()

	if err := svc.DeleteGame(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	m.stats.AssertNotCalled(t, "DeleteByGame", mock.Anything, mock.Anything)
}

func TestScheduleService_ListPlayers_UnknownTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, m := newScheduleServiceWithMocks(t)

	m.teams.
		On("GetByID", sameContext(ctx), "ghosts").
		Return(team.Team{}, false, nil).
		Once()

	if _, err := svc.ListPlayers(ctx, "ghosts"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListPlayers(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	m.players.AssertNotCalled(t, "ListByTeam", mock.Anything, mock.Anything)
}

func TestScheduleService_GetScheduleWithMemoryRepositories(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := NewScheduleService(f.teams, f.players, f.games, f.stats, &sequenceIDs{prefix: "game-"}, f.logger)

	games, err := svc.GetSchedule(t.Context())
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if len(games) != 2 || games[0].HomeTeamName != "Harbor Hawks" {
		t.Fatalf("unexpected schedule: %+v", games)
	}

	teams, err := svc.ListTeams(t.Context())
	if err != nil || len(teams) != 4 {
		t.Fatalf("unexpected teams: %v %+v", err, teams)
	}
}
