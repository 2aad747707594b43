package stat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownKind = errors.New("unknown event kind")

// Kind is the vocabulary of counter increments a play can produce.
type Kind string

const (
	KindTwoMade            Kind = "two_made"
	KindTwoMissed          Kind = "two_missed"
	KindThreeMade          Kind = "three_made"
	KindThreeMissed        Kind = "three_missed"
	KindFreeThrowMade      Kind = "free_throw_made"
	KindFreeThrowMissed    Kind = "free_throw_missed"
	KindFreeThrowMadeCount Kind = "free_throw_made_count"
	KindSteal              Kind = "steal"
	KindTurnover           Kind = "turnover"
	KindAssist             Kind = "assist"
	KindBlock              Kind = "block"
	KindFoul               Kind = "foul"
	KindFouled             Kind = "fouled"
	KindRebound            Kind = "rebound"
)

var allKinds = []Kind{
	KindTwoMade, KindTwoMissed, KindThreeMade, KindThreeMissed,
	KindFreeThrowMade, KindFreeThrowMissed, KindFreeThrowMadeCount,
	KindSteal, KindTurnover, KindAssist, KindBlock, KindFoul, KindFouled, KindRebound,
}

func Kinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ShotKind returns the made or missed field-goal kind for a 2 or 3 point attempt.
func ShotKind(points int, made bool) (Kind, error) {
	switch {
	case points == 2 && made:
		return KindTwoMade, nil
	case points == 2:
		return KindTwoMissed, nil
	case points == 3 && made:
		return KindThreeMade, nil
	case points == 3:
		return KindThreeMissed, nil
	default:
		return "", fmt.Errorf("%w: %d point shot", ErrUnknownKind, points)
	}
}

func FreeThrowKind(made bool) Kind {
	if made {
		return KindFreeThrowMade
	}
	return KindFreeThrowMissed
}

// Event is one counter increment for a player in a game.
// Count is only meaningful for KindFreeThrowMadeCount.
type Event struct {
	GameID   string
	PlayerID string
	Kind     Kind
	Count    int
}

func NewEvent(gameID, playerID string, kind Kind) Event {
	return Event{GameID: gameID, PlayerID: playerID, Kind: kind}
}

func NewFreeThrowCount(gameID, playerID string, made int) Event {
	return Event{GameID: gameID, PlayerID: playerID, Kind: KindFreeThrowMadeCount, Count: made}
}

// Label renders the kind the way it is written in logs and the API,
// e.g. "free_throw_made_count(2)".
func (e Event) Label() string {
	if e.Kind == KindFreeThrowMadeCount {
		return string(e.Kind) + "(" + strconv.Itoa(e.Count) + ")"
	}
	return string(e.Kind)
}

func (e Event) String() string {
	return e.PlayerID + ":" + e.Label()
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.GameID) == "" {
		return fmt.Errorf("game id is required")
	}
	if strings.TrimSpace(e.PlayerID) == "" {
		return fmt.Errorf("player id is required")
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
	if e.Kind == KindFreeThrowMadeCount && (e.Count < 0 || e.Count > 3) {
		return fmt.Errorf("free throw count must be between 0 and 3, got %d", e.Count)
	}
	return nil
}

// ParseLabel accepts both plain kinds and the "free_throw_made_count(N)" form.
func ParseLabel(raw string) (Kind, int, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if head, rest, ok := strings.Cut(value, "("); ok {
		if Kind(head) != KindFreeThrowMadeCount || !strings.HasSuffix(rest, ")") {
			return "", 0, fmt.Errorf("%w: %q", ErrUnknownKind, raw)
		}
		n, err := strconv.Atoi(strings.TrimSuffix(rest, ")"))
		if err != nil {
			return "", 0, fmt.Errorf("%w: bad count in %q", ErrUnknownKind, raw)
		}
		return KindFreeThrowMadeCount, n, nil
	}

	kind := Kind(value)
	if !kind.Valid() {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
	if kind == KindFreeThrowMadeCount {
		return "", 0, fmt.Errorf("%w: %q needs a count", ErrUnknownKind, raw)
	}
	return kind, 0, nil
}
