package playcapture

import (
	"fmt"

	"github.com/riskibarqy/courtside/internal/domain/lineup"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
)

// SubstitutionTree picks a bench player to replace the actor. It emits no
// stat events; the caller applies Swap to the lineup on submit.
type SubstitutionTree struct {
	base
	incoming string
}

func newSubstitutionTree(b base) (*SubstitutionTree, error) {
	if len(b.court.BenchFor(b.actor.TeamID)) == 0 {
		return nil, fmt.Errorf("%w for %s", lineup.ErrEmptyBench, b.actor.DisplayName())
	}
	return &SubstitutionTree{base: b}, nil
}

func (t *SubstitutionTree) Steps() []Step {
	bench := t.court.BenchFor(t.actor.TeamID)
	options := make([]Option, 0, len(bench))
	for _, p := range bench {
		options = append(options, Option{Value: p.ID, Label: benchLabel(p)})
	}
	return []Step{step(QuestionIncoming, "Select a bench player", options, t.incoming)}
}

func (t *SubstitutionTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *SubstitutionTree) set(_ Question, value string) {
	t.incoming = value
}

func (t *SubstitutionTree) Complete() bool {
	return t.incoming != ""
}

func (t *SubstitutionTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event { return []stat.Event{} })
}

// Swap returns the outgoing and incoming player ids once a bench player is chosen.
func (t *SubstitutionTree) Swap() (outgoing, incoming string, ok bool) {
	if !t.Complete() {
		return "", "", false
	}
	return t.actor.ID, t.incoming, true
}

func benchLabel(p player.Player) string {
	if p.Position == "" {
		return p.DisplayName()
	}
	return p.DisplayName() + " (" + p.Position + ")"
}
