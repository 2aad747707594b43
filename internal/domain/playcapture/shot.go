package playcapture

import (
	"strconv"

	"github.com/riskibarqy/courtside/internal/domain/stat"
)

// ShotTree captures a 2 or 3 point attempt. An empty field is unanswered.
type ShotTree struct {
	base
	points int

	outcome    string
	fouled     string
	fouler     string
	freeThrows [3]string
	assisted   string
	assister   string
	blocked    string
	blocker    string
	rebounded  string
	rebounder  string
}

func (t *ShotTree) Points() int {
	return t.points
}

func (t *ShotTree) made() bool {
	return t.outcome == ValueMade
}

// freeThrowCount is 1 for an and-one, otherwise the shot's point value.
func (t *ShotTree) freeThrowCount() int {
	if t.fouled != ValueYes {
		return 0
	}
	if t.made() {
		return 1
	}
	return t.points
}

func (t *ShotTree) blockAsked() bool {
	return t.outcome == ValueMissed && t.fouled == ValueNo
}

func (t *ShotTree) reboundAsked() bool {
	if t.outcome != ValueMissed || t.fouled == "" {
		return false
	}
	if !t.blockAsked() {
		return true
	}
	return t.blocked == ValueNo || (t.blocked == ValueYes && t.blocker != "")
}

func (t *ShotTree) Steps() []Step {
	steps := []Step{step(QuestionOutcome, "Was the shot made?", madeMissed, t.outcome)}
	if t.outcome == "" {
		return steps
	}

	steps = append(steps, step(QuestionFouled, "Was the shooter fouled?", yesNo, t.fouled))
	if t.fouled == "" {
		return steps
	}
	if t.fouled == ValueYes {
		steps = append(steps, step(QuestionFouler, "Select fouling player", t.opponents(), t.fouler))
		for i := 0; i < t.freeThrowCount(); i++ {
			steps = append(steps, step(FreeThrowQuestion(i+1), "Free throw "+strconv.Itoa(i+1), madeMissed, t.freeThrows[i]))
		}
	}

	if t.made() {
		steps = append(steps, step(QuestionAssisted, "Was it assisted?", yesNo, t.assisted))
		if t.assisted == ValueYes {
			steps = append(steps, step(QuestionAssister, "Select assisting player", t.teammates(), t.assister))
		}
		return steps
	}

	if t.blockAsked() {
		steps = append(steps, step(QuestionBlocked, "Was it blocked?", yesNo, t.blocked))
		if t.blocked == ValueYes {
			steps = append(steps, step(QuestionBlocker, "Select blocking player", t.opponents(), t.blocker))
		}
	}
	if t.reboundAsked() {
		steps = append(steps, step(QuestionRebounded, "Was it rebounded?", yesNo, t.rebounded))
		if t.rebounded == ValueYes {
			steps = append(steps, step(QuestionRebounder, "Select rebounding player", t.anyone(), t.rebounder))
		}
	}
	return steps
}

func (t *ShotTree) Answer(q Question, value string) error {
	return answer(t, q, value)
}

func (t *ShotTree) set(q Question, value string) {
	switch q {
	case QuestionOutcome:
		*t = ShotTree{base: t.base, points: t.points, outcome: value}
	case QuestionFouled:
		t.fouled = value
		t.fouler, t.freeThrows = "", [3]string{}
		t.clearBranch()
	case QuestionFouler:
		t.fouler = value
	case QuestionAssisted:
		t.assisted, t.assister = value, ""
	case QuestionAssister:
		t.assister = value
	case QuestionBlocked:
		t.blocked, t.blocker = value, ""
		t.rebounded, t.rebounder = "", ""
	case QuestionBlocker:
		t.blocker = value
	case QuestionRebounded:
		t.rebounded, t.rebounder = value, ""
	case QuestionRebounder:
		t.rebounder = value
	default:
		for i := range t.freeThrows {
			if q == FreeThrowQuestion(i+1) {
				t.freeThrows[i] = value
			}
		}
	}
}

func (t *ShotTree) clearBranch() {
	t.assisted, t.assister = "", ""
	t.blocked, t.blocker = "", ""
	t.rebounded, t.rebounder = "", ""
}

func (t *ShotTree) Complete() bool {
	if t.outcome == "" || t.fouled == "" {
		return false
	}
	if t.fouled == ValueYes {
		if t.fouler == "" {
			return false
		}
		for i := 0; i < t.freeThrowCount(); i++ {
			if t.freeThrows[i] == "" {
				return false
			}
		}
	}
	if t.made() {
		return t.assisted == ValueNo || (t.assisted == ValueYes && t.assister != "")
	}
	return t.rebounded == ValueNo || (t.rebounded == ValueYes && t.rebounder != "")
}

// Events never names the fouler: free throws belong to the shooter.
func (t *ShotTree) Events(gameID string) ([]stat.Event, error) {
	return events(t, gameID, func() []stat.Event {
		shooter := t.actor.ID
		out := []stat.Event{shotEvent(gameID, shooter, t.points, t.made())}
		for i := 0; i < t.freeThrowCount(); i++ {
			out = append(out, stat.NewEvent(gameID, shooter, stat.FreeThrowKind(t.freeThrows[i] == ValueMade)))
		}
		if t.made() && t.assisted == ValueYes {
			out = append(out, stat.NewEvent(gameID, t.assister, stat.KindAssist))
		}
		if t.blockAsked() && t.blocked == ValueYes {
			out = append(out, stat.NewEvent(gameID, t.blocker, stat.KindBlock))
		}
		if !t.made() && t.rebounded == ValueYes {
			out = append(out, stat.NewEvent(gameID, t.rebounder, stat.KindRebound))
		}
		return out
	})
}
