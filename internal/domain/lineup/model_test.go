package lineup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
)

func roster(teamID string, n int) []player.Player {
	out := make([]player.Player, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, player.Player{
			ID:           fmt.Sprintf("%s-%d", teamID, i),
			TeamID:       teamID,
			LastName:     fmt.Sprintf("Player%d", i),
			JerseyNumber: i,
		})
	}
	return out
}

func newTestLineup(t *testing.T) *Lineup {
	t.Helper()

	g := game.Game{ID: "g1", HomeTeamID: "home", AwayTeamID: "away"}
	l, err := Initialize(g, map[string][]player.Player{
		"home": roster("home", 8),
		"away": roster("away", 7),
	}, 5)
	if err != nil {
		t.Fatalf("initialize lineup: %v", err)
	}
	return l
}

func ids(players []player.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func TestInitialize_SeedsFirstFivePerTeam(t *testing.T) {
	l := newTestLineup(t)

	if got := len(l.OnCourt()); got != 10 {
		t.Fatalf("expected 10 players on court, got %d", got)
	}
	if !l.IsOnCourt("home-5") || l.IsOnCourt("home-6") {
		t.Fatalf("expected roster order seeding")
	}
	if got := ids(l.BenchFor("home")); fmt.Sprint(got) != "[home-6 home-7 home-8]" {
		t.Fatalf("unexpected home bench: %v", got)
	}
	if got := ids(l.BenchFor("away")); fmt.Sprint(got) != "[away-6 away-7]" {
		t.Fatalf("unexpected away bench: %v", got)
	}
}

func TestInitialize_SkippedRosterEntriesDoNotCostAStarter(t *testing.T) {
	players := roster("home", 6)
	home := []player.Player{{ID: ""}, players[0], players[1], players[0]}
	home = append(home, players[2:]...)
	g := game.Game{ID: "g1", HomeTeamID: "home", AwayTeamID: "away"}

	l, err := Initialize(g, map[string][]player.Player{
		"home": home,
		"away": roster("away", 5),
	}, 5)
	if err != nil {
		t.Fatalf("initialize lineup: %v", err)
	}

	if got := len(l.OnCourt()); got != 10 {
		t.Fatalf("expected five starters per team despite blank and duplicate entries, got %d", got)
	}
	if !l.IsOnCourt("home-5") {
		t.Fatalf("expected home-5 to start")
	}
	if got := ids(l.BenchFor("home")); fmt.Sprint(got) != "[home-6]" {
		t.Fatalf("unexpected home bench: %v", got)
	}
}

func TestInitialize_RequiresTeams(t *testing.T) {
	if _, err := Initialize(game.Game{ID: "g1", HomeTeamID: "home"}, nil, 5); err == nil {
		t.Fatalf("expected error without away team")
	}
}

func TestInitialize_ShortRosterHasEmptyBench(t *testing.T) {
	g := game.Game{ID: "g1", HomeTeamID: "home", AwayTeamID: "away"}
	l, err := Initialize(g, map[string][]player.Player{"home": roster("home", 3)}, 5)
	if err != nil {
		t.Fatalf("initialize lineup: %v", err)
	}
	if len(l.BenchFor("home")) != 0 || len(l.BenchFor("away")) != 0 {
		t.Fatalf("expected empty benches")
	}
	if len(l.OnCourt()) != 3 {
		t.Fatalf("expected 3 players on court, got %d", len(l.OnCourt()))
	}
}

func TestCandidates_FiltersAndCaps(t *testing.T) {
	l := newTestLineup(t)

	opponents := l.Candidates(Filter{TeamID: "away", Limit: 5})
	if fmt.Sprint(ids(opponents)) != "[away-1 away-2 away-3 away-4 away-5]" {
		t.Fatalf("unexpected opponent candidates: %v", ids(opponents))
	}

	teammates := l.Candidates(Filter{TeamID: "home", ExcludePlayerID: "home-2", Limit: 4})
	if fmt.Sprint(ids(teammates)) != "[home-1 home-3 home-4 home-5]" {
		t.Fatalf("unexpected teammate candidates: %v", ids(teammates))
	}

	everyone := l.Candidates(Filter{Limit: 10})
	if len(everyone) != 10 || everyone[0].TeamID != "home" || everyone[9].TeamID != "away" {
		t.Fatalf("expected both teams in roster order: %v", ids(everyone))
	}

	capped := l.Candidates(Filter{ExcludeTeamID: "home", Limit: 2})
	if fmt.Sprint(ids(capped)) != "[away-1 away-2]" {
		t.Fatalf("cap must keep roster order: %v", ids(capped))
	}
}

func TestSubstitute_SwapInvariant(t *testing.T) {
	l := newTestLineup(t)
	before := len(l.OnCourt()) + len(l.BenchFor("home"))

	if err := l.Substitute("home-3", "home-7"); err != nil {
		t.Fatalf("substitute: %v", err)
	}

	if l.IsOnCourt("home-3") {
		t.Fatalf("outgoing player still on court")
	}
	if !l.IsOnCourt("home-7") {
		t.Fatalf("incoming player not on court")
	}
	bench := ids(l.BenchFor("home"))
	if fmt.Sprint(bench) != "[home-6 home-8 home-3]" {
		t.Fatalf("unexpected bench after swap: %v", bench)
	}
	if after := len(l.OnCourt()) + len(l.BenchFor("home")); after != before {
		t.Fatalf("lineup+bench size changed: %d -> %d", before, after)
	}
	if l.OnCourt()[2] != "home-7" {
		t.Fatalf("incoming player should take the outgoing slot")
	}
}

func TestSubstitute_PermissiveWhenOutgoingBenched(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Substitute("home-6", "home-7"); err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if !l.IsOnCourt("home-7") {
		t.Fatalf("incoming player should be appended to the lineup")
	}
	if got := len(l.OnCourt()); got != 11 {
		t.Fatalf("expected appended lineup of 11, got %d", got)
	}
	if fmt.Sprint(ids(l.BenchFor("home"))) != "[home-6 home-8]" {
		t.Fatalf("unexpected bench: %v", ids(l.BenchFor("home")))
	}
}

func TestSubstitute_Errors(t *testing.T) {
	l := newTestLineup(t)

	if err := l.Substitute("nobody", "home-7"); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
	if err := l.Substitute("home-1", "home-2"); !errors.Is(err, ErrAlreadyOnCourt) {
		t.Fatalf("expected ErrAlreadyOnCourt, got %v", err)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	l := newTestLineup(t)
	snap := l.Snapshot()
	snap.Bench["home"] = nil

	if len(l.BenchFor("home")) != 3 {
		t.Fatalf("snapshot mutation leaked into lineup")
	}
	if snap.GameID != "g1" || len(snap.OnCourt) != 10 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
