package playcapture

import (
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/stat"
)

// AssistTree records a pass that led to a made basket by a teammate.
type AssistTree struct {
	base
	teammate  string
	shotType  string
	fouled    string
	freeThrow string
}

func (t *AssistTree) Steps() []Step {
	steps := []Step{step(QuestionTeammate, "Who was assisted?", t.teammates(), t.teammate)}
	if t.teammate == "" {
		return steps
	}
	steps = append(steps, step(QuestionShotType, "Shot type", shotTypes, t.shotType))
	if t.shotType == "" {
		return steps
	}
	steps = append(steps, step(QuestionFouled, "Was the shooter fouled?", yesNo, t.fouled))
	if t.fouled == ValueYes {
		steps = append(steps, step(QuestionFreeThrow, "Free throw", madeMissed, t.freeThrow))
	}
	return steps
}

func (t *AssistTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *AssistTree) set(q Question, value string) {
	switch q {
	case QuestionTeammate:
		t.teammate = value
	case QuestionShotType:
		t.shotType, t.fouled, t.freeThrow = value, "", ""
	case QuestionFouled:
		t.fouled, t.freeThrow = value, ""
	case QuestionFreeThrow:
		t.freeThrow = value
	}
}

func (t *AssistTree) Complete() bool {
	if t.teammate == "" || t.shotType == "" || t.fouled == "" {
		return false
	}
	return t.fouled == ValueNo || t.freeThrow != ""
}

func (t *AssistTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		out := []stat.Event{
			stat.NewEvent(gameID, t.actor.ID, stat.KindAssist),
			shotEvent(gameID, t.teammate, points(t.shotType), true),
		}
		if t.fouled == ValueYes {
			out = append(out, stat.NewEvent(gameID, t.teammate, stat.FreeThrowKind(t.freeThrow == ValueMade)))
		}
		return out
	})
}

// BlockTree records a block and the blocked opponent's missed shot.
type BlockTree struct {
	base
	shooter  string
	shotType string
}

func (t *BlockTree) Steps() []Step {
	steps := []Step{step(QuestionOpponent, "Who was blocked?", t.opponents(), t.shooter)}
	if t.shooter != "" {
		steps = append(steps, step(QuestionShotType, "Shot type", shotTypes, t.shotType))
	}
	return steps
}

func (t *BlockTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *BlockTree) set(q Question, value string) {
	switch q {
	case QuestionOpponent:
		t.shooter = value
	case QuestionShotType:
		t.shotType = value
	}
}

func (t *BlockTree) Complete() bool {
	return t.shooter != "" && t.shotType != ""
}

func (t *BlockTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		return []stat.Event{
			stat.NewEvent(gameID, t.actor.ID, stat.KindBlock),
			shotEvent(gameID, t.shooter, points(t.shotType), false),
		}
	})
}

// FoulTree records a personal foul. A shooting foul also captures the shot
// and its free throws: one made/missed attempt after a make, or a made count
// after a miss.
type FoulTree struct {
	base
	fouled    string
	shooting  string
	shotType  string
	outcome   string
	freeThrow string
	madeCount string
}

func (t *FoulTree) Steps() []Step {
	steps := []Step{step(QuestionOpponent, "Who was fouled?", t.opponents(), t.fouled)}
	if t.fouled == "" {
		return steps
	}
	steps = append(steps, step(QuestionShootingFoul, "Shooting foul?", yesNo, t.shooting))
	if t.shooting != ValueYes {
		return steps
	}
	steps = append(steps, step(QuestionShotType, "Shot type", shotTypes, t.shotType))
	if t.shotType == "" {
		return steps
	}
	steps = append(steps, step(QuestionOutcome, "Shot made?", madeMissed, t.outcome))
	switch t.outcome {
	case ValueMade:
		steps = append(steps, step(QuestionFreeThrow, "Free throw", madeMissed, t.freeThrow))
	case ValueMissed:
		steps = append(steps, step(QuestionFreeThrowsMade, "How many free throws made?", countOptions(points(t.shotType)), t.madeCount))
	}
	return steps
}

func (t *FoulTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *FoulTree) set(q Question, value string) {
	switch q {
	case QuestionOpponent:
		*t = FoulTree{base: t.base, fouled: value}
	case QuestionShootingFoul:
		*t = FoulTree{base: t.base, fouled: t.fouled, shooting: value}
	case QuestionShotType:
		t.shotType, t.outcome, t.freeThrow, t.madeCount = value, "", "", ""
	case QuestionOutcome:
		t.outcome, t.freeThrow, t.madeCount = value, "", ""
	case QuestionFreeThrow:
		t.freeThrow = value
	case QuestionFreeThrowsMade:
		t.madeCount = value
	}
}

func (t *FoulTree) Complete() bool {
	switch {
	case t.fouled == "" || t.shooting == "":
		return false
	case t.shooting == ValueNo:
		return true
	case t.outcome == ValueMade:
		return t.freeThrow != ""
	case t.outcome == ValueMissed:
		return t.madeCount != ""
	default:
		return false
	}
}

func (t *FoulTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		out := []stat.Event{
			stat.NewEvent(gameID, t.actor.ID, stat.KindFoul),
			stat.NewEvent(gameID, t.fouled, stat.KindFouled),
		}
		switch {
		case t.shooting != ValueYes:
		case t.outcome == ValueMade:
			out = append(out, stat.NewEvent(gameID, t.fouled, stat.FreeThrowKind(t.freeThrow == ValueMade)))
		default:
			made, _ := strconv.Atoi(t.madeCount)
			out = append(out, stat.NewFreeThrowCount(gameID, t.fouled, made))
		}
		return out
	})
}
