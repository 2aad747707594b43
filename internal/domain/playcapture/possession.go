package playcapture

import "github.com/riskibarqy/courtside/internal/domain/stat"

// StealTree records a steal. Naming the player it was taken from is optional.
type StealTree struct {
	base
	victim string
}

func (t *StealTree) Steps() []Step {
	return []Step{step(QuestionStolenFrom, "Who was it stolen from?", t.opponents(), t.victim)}
}

func (t *StealTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *StealTree) set(_ Question, value string) {
	t.victim = value
}

func (t *StealTree) Complete() bool {
	return true
}

func (t *StealTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		out := []stat.Event{stat.NewEvent(gameID, t.actor.ID, stat.KindSteal)}
		if t.victim != "" {
			out = append(out, stat.NewEvent(gameID, t.victim, stat.KindTurnover))
		}
		return out
	})
}

// TurnoverTree records a turnover and, when it was stolen, the stealer.
type TurnoverTree struct {
	base
	stolen  string
	stealer string
}

func (t *TurnoverTree) Steps() []Step {
	steps := []Step{step(QuestionStolen, "Was it stolen?", yesNo, t.stolen)}
	if t.stolen == ValueYes {
		steps = append(steps, step(QuestionStealer, "Select the player who stole it", t.opponents(), t.stealer))
	}
	return steps
}

func (t *TurnoverTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *TurnoverTree) set(q Question, value string) {
	switch q {
	case QuestionStolen:
		t.stolen, t.stealer = value, ""
	case QuestionStealer:
		t.stealer = value
	}
}

func (t *TurnoverTree) Complete() bool {
	return t.stolen == ValueNo || (t.stolen == ValueYes && t.stealer != "")
}

func (t *TurnoverTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		out := []stat.Event{stat.NewEvent(gameID, t.actor.ID, stat.KindTurnover)}
		if t.stolen == ValueYes {
			out = append(out, stat.NewEvent(gameID, t.stealer, stat.KindSteal))
		}
		return out
	})
}

// ReboundTree is a bare confirmation.
type ReboundTree struct {
	base
}

func (t *ReboundTree) Steps() []Step {
	return nil
}

func (t *ReboundTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *ReboundTree) set(Question, string) {}

func (t *ReboundTree) Complete() bool {
	return true
}

func (t *ReboundTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		return []stat.Event{stat.NewEvent(gameID, t.actor.ID, stat.KindRebound)}
	})
}

// FreeThrowTree records one standalone free throw.
type FreeThrowTree struct {
	base
	result string
}

func (t *FreeThrowTree) Steps() []Step {
	return []Step{step(QuestionFreeThrow, "Free throw", madeMissed, t.result)}
}

func (t *FreeThrowTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *FreeThrowTree) set(_ Question, value string) {
	t.result = value
}

func (t *FreeThrowTree) Complete() bool {
	return t.result != ""
}

func (t *FreeThrowTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		return []stat.Event{stat.NewEvent(gameID, t.actor.ID, stat.FreeThrowKind(t.result == ValueMade))}
	})
}
