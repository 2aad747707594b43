package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/stat"
)

func recordAll(t *testing.T, svc *StatService, events ...stat.Event) {
	t.Helper()

	for _, e := range events {
		if err := svc.RecordStatEvent(t.Context(), e); err != nil {
			t.Fatalf("record %s: %v", e, err)
		}
	}
}

func TestBoxScoreService_BoxScore(t *testing.T) {
	t.Parallel()

	f := newFixture()
	stats := NewStatService(f.games, f.players, f.stats, f.logger)
	svc := NewBoxScoreService(f.games, f.players, f.stats, 2, f.logger)

	const g = "game-opener"
	recordAll(t, stats,
		stat.NewEvent(g, "hh-01", stat.KindThreeMade),
		stat.NewEvent(g, "hh-01", stat.KindTwoMissed),
		stat.NewEvent(g, "hh-01", stat.KindFreeThrowMade),
		stat.NewEvent(g, "hh-01", stat.KindFreeThrowMissed),
		stat.NewEvent(g, "hh-03", stat.KindTwoMade),
		stat.NewEvent(g, "hh-03", stat.KindRebound),
		stat.NewEvent(g, "rr-05", stat.KindTwoMade),
		stat.NewFreeThrowCount(g, "rr-05", 2),
	)

	box, err := svc.BoxScore(t.Context(), g)
	if err != nil {
		t.Fatalf("box score: %v", err)
	}
	if box.Home.TeamName != "Harbor Hawks" || box.Away.TeamName != "Ridge Runners" {
		t.Fatalf("unexpected teams: %s vs %s", box.Home.TeamName, box.Away.TeamName)
	}
	if len(box.Home.Players) != 8 || box.Home.Players[0].PlayerID != "hh-01" {
		t.Fatalf("expected the full home roster in roster order, got %+v", box.Home.Players)
	}

	marcus := box.Home.Players[0].Stats
	if marcus.Points != 4 || marcus.FieldGoalPct != 50 || marcus.ThreePct != 100 || marcus.FreeThrowPct != 50 {
		t.Fatalf("unexpected hh-01 summary: %+v", marcus)
	}
	if box.Home.Totals.Points != 6 || box.Home.Totals.Rebounds != 1 {
		t.Fatalf("unexpected home totals: %+v", box.Home.Totals)
	}
	if box.Away.Totals.Points != 4 {
		t.Fatalf("unexpected away totals: %+v", box.Away.Totals)
	}

	score := box.Score()
	if score.HomePoints != 6 || score.AwayPoints != 4 {
		t.Fatalf("unexpected score: %+v", score)
	}
}

func TestBoxScoreService_CacheIsInvalidatedByWrites(t *testing.T) {
	t.Parallel()

	f := newFixture()
	cache := newMapBoxScoreCache()
	stats := NewStatService(f.games, f.players, f.stats, f.logger)
	stats.SetBoxScoreCache(cache)
	svc := NewBoxScoreService(f.games, f.players, f.stats, 2, f.logger)
	svc.SetCache(cache)

	const g = "game-derby"
	if _, err := svc.BoxScore(t.Context(), g); err != nil {
		t.Fatalf("box score: %v", err)
	}
	if _, ok, _ := cache.Get(t.Context(), g); !ok {
		t.Fatalf("expected computed box score to be cached")
	}

	recordAll(t, stats, stat.NewEvent(g, "cc-02", stat.KindThreeMade))
	if _, ok, _ := cache.Get(t.Context(), g); ok {
		t.Fatalf("expected write to invalidate cached box score")
	}

	box, err := svc.BoxScore(t.Context(), g)
	if err != nil {
		t.Fatalf("box score: %v", err)
	}
	if box.Away.Totals.Points != 3 {
		t.Fatalf("expected fresh totals, got %+v", box.Away.Totals)
	}
}

func TestBoxScoreService_WriteDuringComputeIsNotCached(t *testing.T) {
	t.Parallel()

	f := newFixture()
	cache := newMapBoxScoreCache()
	stats := NewStatService(f.games, f.players, f.stats, f.logger)
	stats.SetBoxScoreCache(cache)

	const g = "game-derby"
	racing := &racingStatRepository{StatRepository: f.stats}
	racing.afterList = func() {
		recordAll(t, stats, stat.NewEvent(g, "cc-02", stat.KindThreeMade))
	}
	svc := NewBoxScoreService(f.games, f.players, racing, 2, f.logger)
	svc.SetCache(cache)

	stale, err := svc.BoxScore(t.Context(), g)
	if err != nil {
		t.Fatalf("box score: %v", err)
	}
	if stale.Away.Totals.Points != 0 {
		t.Fatalf("expected the in-flight computation to miss the racing write, got %+v", stale.Away.Totals)
	}
	if _, ok, _ := cache.Get(t.Context(), g); ok {
		t.Fatalf("expected box score computed before the write to stay uncached")
	}

	fresh, err := svc.BoxScore(t.Context(), g)
	if err != nil {
		t.Fatalf("box score: %v", err)
	}
	if fresh.Away.Totals.Points != 3 {
		t.Fatalf("expected fresh totals, got %+v", fresh.Away.Totals)
	}
	if cached, ok, _ := cache.Get(t.Context(), g); !ok || cached.Away.Totals.Points != 3 {
		t.Fatalf("expected fresh box score to be cached, got ok=%v %+v", ok, cached.Away.Totals)
	}
}

func TestBoxScoreService_ListGameScores(t *testing.T) {
	t.Parallel()

	f := newFixture()
	stats := NewStatService(f.games, f.players, f.stats, f.logger)
	svc := NewBoxScoreService(f.games, f.players, f.stats, 0, f.logger)

	recordAll(t, stats,
		stat.NewEvent("game-derby", "mc-02", stat.KindThreeMade),
		stat.NewEvent("game-opener", "rr-01", stat.KindTwoMade),
	)

	scores, err := svc.ListGameScores(t.Context())
	if err != nil {
		t.Fatalf("list game scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected two scores, got %+v", scores)
	}
	if scores[0].GameID != "game-opener" || scores[0].AwayPoints != 2 || scores[0].HomePoints != 0 {
		t.Fatalf("unexpected opener score: %+v", scores[0])
	}
	if scores[1].GameID != "game-derby" || scores[1].HomePoints != 3 {
		t.Fatalf("unexpected derby score: %+v", scores[1])
	}
}

func TestBoxScoreService_UnknownGame(t *testing.T) {
	t.Parallel()

	f := newFixture()
	svc := NewBoxScoreService(f.games, f.players, f.stats, 1, f.logger)

	if _, err := svc.BoxScore(t.Context(), "game-void"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
