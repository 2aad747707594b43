// Package playcapture turns a stat-button press into a short sequence of
// questions and, once every required answer is in, into stat events.
package playcapture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/lineup"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
)

var (
	ErrUnknownStatKind = errors.New("unknown stat kind")
	ErrNotOnCourt      = errors.New("player is not on court")
	ErrQuestionNotOpen = errors.New("question is not open")
	ErrInvalidAnswer   = errors.New("invalid answer")
	ErrIncomplete      = errors.New("play is incomplete")
	ErrNoActivePlay    = errors.New("no active play")
)

// StatKind is the button pressed for a player.
type StatKind string

const (
	KindTwoPoint     StatKind = "2pt"
	KindThreePoint   StatKind = "3pt"
	KindSteal        StatKind = "Stl"
	KindTurnover     StatKind = "TO"
	KindAssist       StatKind = "Ast"
	KindBlock        StatKind = "Blk"
	KindFoul         StatKind = "Foul"
	KindRebound      StatKind = "Reb"
	KindFreeThrow    StatKind = "FT"
	KindSubstitution StatKind = "jersey"
)

var statKinds = []StatKind{
	KindTwoPoint, KindThreePoint, KindSteal, KindTurnover, KindAssist,
	KindBlock, KindFoul, KindRebound, KindFreeThrow, KindSubstitution,
}

func StatKinds() []StatKind {
	return append([]StatKind(nil), statKinds...)
}

// ParseStatKind matches case-insensitively, so "stl" and "STL" both work.
func ParseStatKind(raw string) (StatKind, error) {
	value := strings.TrimSpace(raw)
	for _, k := range statKinds {
		if strings.EqualFold(value, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatKind, raw)
}

// Question identifies one answer slot of a tree.
type Question string

const (
	QuestionOutcome        Question = "outcome"
	QuestionFouled         Question = "fouled"
	QuestionFouler         Question = "fouler"
	QuestionAssisted       Question = "assisted"
	QuestionAssister       Question = "assister"
	QuestionBlocked        Question = "blocked"
	QuestionBlocker        Question = "blocker"
	QuestionRebounded      Question = "rebounded"
	QuestionRebounder      Question = "rebounder"
	QuestionStolenFrom     Question = "stolen_from"
	QuestionStolen         Question = "stolen"
	QuestionStealer        Question = "stealer"
	QuestionTeammate       Question = "teammate"
	QuestionShotType       Question = "shot_type"
	QuestionFreeThrow      Question = "free_throw"
	QuestionOpponent       Question = "opponent"
	QuestionShootingFoul   Question = "shooting_foul"
	QuestionFreeThrowsMade Question = "free_throws_made"
	QuestionIncoming       Question = "incoming"
)

// FreeThrowQuestion names the n-th (1-based) free-throw slot of a shot.
func FreeThrowQuestion(n int) Question {
	return Question("free_throw_" + strconv.Itoa(n))
}

const (
	ValueYes    = "yes"
	ValueNo     = "no"
	ValueMade   = "made"
	ValueMissed = "missed"
	ValueTwo    = "2"
	ValueThree  = "3"
)

const (
	opponentLimit = 5
	teammateLimit = 4
	anyTeamLimit  = 10
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Step is one revealed question with its offered options and current answer.
// Answer is empty while unanswered.
type Step struct {
	Question Question `json:"question"`
	Prompt   string   `json:"prompt"`
	Options  []Option `json:"options"`
	Answer   string   `json:"answer,omitempty"`
}

func (s Step) allows(value string) bool {
	for _, o := range s.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Court is the read view of the active game a tree needs to build candidate lists.
type Court interface {
	Game() game.Game
	Player(playerID string) (player.Player, bool)
	IsOnCourt(playerID string) bool
	OpponentOf(teamID string) (string, bool)
	Candidates(f lineup.Filter) []player.Player
	BenchFor(teamID string) []player.Player
}

// Tree is the in-progress answer set for one (player, stat kind) press.
type Tree interface {
	Kind() StatKind
	Actor() player.Player
	// Steps returns the questions revealed so far, in order.
	Steps() []Step
	// Answer records value for q and clears answers that depend on q.
	Answer(q Question, value string) error
	Complete() bool
	// Events derives the stat events of a complete tree, in emission order.
	Events(gameID string) ([]stat.Event, error)
}

// New starts a tree for actorID, who must be on court.
func New(kind StatKind, actorID string, court Court) (Tree, error) {
	actor, ok := court.Player(actorID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", lineup.ErrUnknownPlayer, actorID)
	}
	if !court.IsOnCourt(actorID) {
		return nil, fmt.Errorf("%w: %s", ErrNotOnCourt, actor.DisplayName())
	}
	opponent, ok := court.OpponentOf(actor.TeamID)
	if !ok {
		return nil, fmt.Errorf("%w: team %q is not in game %q", lineup.ErrUnknownPlayer, actor.TeamID, court.Game().ID)
	}

	b := base{kind: kind, actor: actor, opponent: opponent, court: court}
	switch kind {
	case KindTwoPoint:
		return &ShotTree{base: b, points: 2}, nil
	case KindThreePoint:
		return &ShotTree{base: b, points: 3}, nil
	case KindSteal:
		return &StealTree{base: b}, nil
	case KindTurnover:
		return &TurnoverTree{base: b}, nil
	case KindAssist:
		return &AssistTree{base: b}, nil
	case KindBlock:
		return &BlockTree{base: b}, nil
	case KindFoul:
		return &FoulTree{base: b}, nil
	case KindRebound:
		return &ReboundTree{base: b}, nil
	case KindFreeThrow:
		return &FreeThrowTree{base: b}, nil
	case KindSubstitution:
		return newSubstitutionTree(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatKind, kind)
	}
}

// base carries what every tree knows about the press.
type base struct {
	kind     StatKind
	actor    player.Player
	opponent string
	court    Court
}

func (b *base) Kind() StatKind {
	return b.kind
}

func (b *base) Actor() player.Player {
	return b.actor
}

func (b *base) opponents() []Option {
	return playerOptions(b.court.Candidates(lineup.Filter{TeamID: b.opponent, Limit: opponentLimit}))
}

func (b *base) teammates() []Option {
	return playerOptions(b.court.Candidates(lineup.Filter{
		TeamID:          b.actor.TeamID,
		ExcludePlayerID: b.actor.ID,
		Limit:           teammateLimit,
	}))
}

func (b *base) anyone() []Option {
	return playerOptions(b.court.Candidates(lineup.Filter{Limit: anyTeamLimit}))
}

// setter is the per-tree half of Answer: assign the slot and reset dependents.
type setter interface {
	Steps() []Step
	set(q Question, value string)
}

func answer(t setter, q Question, value string) error {
	value = strings.TrimSpace(value)
	for _, s := range t.Steps() {
		if s.Question != q {
			continue
		}
		if !s.allows(value) {
			return fmt.Errorf("%w: %q for %s", ErrInvalidAnswer, value, q)
		}
		t.set(q, value)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrQuestionNotOpen, q)
}

func events(t Tree, gameID string, derive func() []stat.Event) ([]stat.Event, error) {
	if !t.Complete() {
		return nil, fmt.Errorf("%w: %s for %s", ErrIncomplete, t.Kind(), t.Actor().DisplayName())
	}
	return derive(), nil
}

func playerOptions(players []player.Player) []Option {
	out := make([]Option, 0, len(players))
	for _, p := range players {
		out = append(out, Option{Value: p.ID, Label: playerLabel(p)})
	}
	return out
}

func playerLabel(p player.Player) string {
	label := "#" + strconv.Itoa(p.JerseyNumber) + " " + p.LastName
	if p.Position != "" {
		label += " (" + p.Position + ")"
	}
	return label
}

var (
	yesNo      = []Option{{Value: ValueYes, Label: "Yes"}, {Value: ValueNo, Label: "No"}}
	madeMissed = []Option{{Value: ValueMade, Label: "Made"}, {Value: ValueMissed, Label: "Missed"}}
	shotTypes  = []Option{{Value: ValueTwo, Label: "2"}, {Value: ValueThree, Label: "3"}}
)

func countOptions(upTo int) []Option {
	out := make([]Option, 0, upTo+1)
	for i := 0; i <= upTo; i++ {
		v := strconv.Itoa(i)
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

func step(q Question, prompt string, options []Option, answer string) Step {
	return Step{Question: q, Prompt: prompt, Options: options, Answer: answer}
}

func points(shotType string) int {
	if shotType == ValueThree {
		return 3
	}
	return 2
}

func shotEvent(gameID, playerID string, pts int, made bool) stat.Event {
	kind, _ := stat.ShotKind(pts, made)
	return stat.NewEvent(gameID, playerID, kind)
}
