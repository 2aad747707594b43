package lineup

import (
	"errors"
	"fmt"
	"slices"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
)

var (
	ErrEmptyBench     = errors.New("no bench players available")
	ErrUnknownPlayer  = errors.New("player is not on either roster")
	ErrAlreadyOnCourt = errors.New("player is already on court")
)

// Lineup tracks who is on court and who is benched for one game.
// It is not safe for concurrent use; callers serialize access per session.
type Lineup struct {
	game    game.Game
	roster  []player.Player
	byID    map[string]player.Player
	onCourt []string
	bench   map[string][]string
}

// Initialize seeds up to perTeam players per side on court, in roster order,
// and benches the rest. Home players precede away players in roster order.
func Initialize(g game.Game, rosterByTeam map[string][]player.Player, perTeam int) (*Lineup, error) {
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return nil, fmt.Errorf("game %q has no resolvable home/away teams", g.ID)
	}
	if perTeam < 0 {
		perTeam = 0
	}

	l := &Lineup{
		game:  g,
		byID:  make(map[string]player.Player),
		bench: make(map[string][]string, 2),
	}
	for _, teamID := range g.TeamIDs() {
		l.bench[teamID] = []string{}
		starters := 0
		for _, p := range rosterByTeam[teamID] {
			if _, dup := l.byID[p.ID]; dup || p.ID == "" {
				continue
			}
			p.TeamID = teamID
			l.byID[p.ID] = p
			l.roster = append(l.roster, p)
			if starters < perTeam {
				l.onCourt = append(l.onCourt, p.ID)
				starters++
			} else {
				l.bench[teamID] = append(l.bench[teamID], p.ID)
			}
		}
	}

	return l, nil
}

func (l *Lineup) Game() game.Game {
	return l.game
}

func (l *Lineup) Player(playerID string) (player.Player, bool) {
	p, ok := l.byID[playerID]
	return p, ok
}

func (l *Lineup) IsOnCourt(playerID string) bool {
	return slices.Contains(l.onCourt, playerID)
}

// OnCourt returns on-court player ids in lineup order.
func (l *Lineup) OnCourt() []string {
	return slices.Clone(l.onCourt)
}

// BenchFor returns the team's benched players in bench order.
func (l *Lineup) BenchFor(teamID string) []player.Player {
	ids := l.bench[teamID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := l.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (l *Lineup) OpponentOf(teamID string) (string, bool) {
	return l.game.OpponentOf(teamID)
}

// Filter selects on-court candidates. Empty fields do not filter.
type Filter struct {
	TeamID          string
	ExcludeTeamID   string
	ExcludePlayerID string
	Limit           int
}

// Candidates returns on-court players matching f in roster order. Limit only
// trims how many are offered, never which players qualify.
func (l *Lineup) Candidates(f Filter) []player.Player {
	out := make([]player.Player, 0, len(l.onCourt))
	for _, p := range l.roster {
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
		switch {
		case !l.IsOnCourt(p.ID):
		case f.TeamID != "" && p.TeamID != f.TeamID:
		case f.ExcludeTeamID != "" && p.TeamID == f.ExcludeTeamID:
		case f.ExcludePlayerID != "" && p.ID == f.ExcludePlayerID:
		default:
			out = append(out, p)
		}
	}
	return out
}

// Substitute swaps outgoing for incoming. It is lenient about inconsistent
// state: an outgoing player that is not on court makes incoming join the
// lineup anyway, and an incoming player missing from the bench leaves the
// bench untouched on that side.
func (l *Lineup) Substitute(outgoingID, incomingID string) error {
	out, ok := l.byID[outgoingID]
	if !ok {
		return fmt.Errorf("%w: outgoing %q", ErrUnknownPlayer, outgoingID)
	}
	if _, ok := l.byID[incomingID]; !ok {
		return fmt.Errorf("%w: incoming %q", ErrUnknownPlayer, incomingID)
	}
	if l.IsOnCourt(incomingID) {
		return fmt.Errorf("%w: %q", ErrAlreadyOnCourt, incomingID)
	}

	if idx := slices.Index(l.onCourt, outgoingID); idx >= 0 {
		l.onCourt[idx] = incomingID
	} else {
		l.onCourt = append(l.onCourt, incomingID)
	}

	bench := l.bench[out.TeamID]
	if idx := slices.Index(bench, incomingID); idx >= 0 {
		bench = slices.Delete(bench, idx, idx+1)
	}
	if !slices.Contains(bench, outgoingID) {
		bench = append(bench, outgoingID)
	}
	l.bench[out.TeamID] = bench

	return nil
}

// Snapshot is a copy of the lineup state for rendering.
type Snapshot struct {
	GameID  string
	OnCourt []player.Player
	Bench   map[string][]player.Player
}

func (l *Lineup) Snapshot() Snapshot {
	snap := Snapshot{
		GameID: l.game.ID,
		Bench:  make(map[string][]player.Player, len(l.bench)),
	}
	for _, id := range l.onCourt {
		if p, ok := l.byID[id]; ok {
			snap.OnCourt = append(snap.OnCourt, p)
		}
	}
	for teamID := range l.bench {
		snap.Bench[teamID] = l.BenchFor(teamID)
	}
	return snap
}
