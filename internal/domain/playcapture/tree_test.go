package playcapture

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/lineup"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
)

const testGameID = "g1"

func teamRoster(teamID string, n int) []player.Player {
	out := make([]player.Player, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, player.Player{
			ID:           fmt.Sprintf("%s-%d", teamID, i),
			TeamID:       teamID,
			FirstName:    "P",
			LastName:     fmt.Sprintf("%s%d", teamID, i),
			JerseyNumber: i,
			Position:     "G",
		})
	}
	return out
}

func newCourt(t *testing.T, homeSize, awaySize int) *lineup.Lineup {
	t.Helper()

	g := game.Game{ID: testGameID, HomeTeamID: "home", AwayTeamID: "away"}
	l, err := lineup.Initialize(g, map[string][]player.Player{
		"home": teamRoster("home", homeSize),
		"away": teamRoster("away", awaySize),
	}, 5)
	if err != nil {
		t.Fatalf("initialize lineup: %v", err)
	}
	return l
}

func mustTree(t *testing.T, kind StatKind, actorID string, court Court) Tree {
	t.Helper()

	tree, err := New(kind, actorID, court)
	if err != nil {
		t.Fatalf("new %s tree: %v", kind, err)
	}
	return tree
}

func mustAnswer(t *testing.T, tree Tree, q Question, value string) {
	t.Helper()

	if err := tree.Answer(q, value); err != nil {
		t.Fatalf("answer %s=%s: %v", q, value, err)
	}
}

func mustEvents(t *testing.T, tree Tree) []string {
	t.Helper()

	events, err := tree.Events(testGameID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	out := make([]string, 0, len(events))
	for _, e := range events {
		if e.GameID != testGameID {
			t.Fatalf("event for wrong game: %+v", e)
		}
		out = append(out, e.String())
	}
	return out
}

func stepFor(tree Tree, q Question) (Step, bool) {
	for _, s := range tree.Steps() {
		if s.Question == q {
			return s, true
		}
	}
	return Step{}, false
}

func optionValues(t *testing.T, tree Tree, q Question) []string {
	t.Helper()

	s, ok := stepFor(tree, q)
	if !ok {
		t.Fatalf("question %s not revealed", q)
	}
	out := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		out = append(out, o.Value)
	}
	return out
}

func questions(tree Tree) []Question {
	out := []Question{}
	for _, s := range tree.Steps() {
		out = append(out, s.Question)
	}
	return out
}

func answered(tree Tree) map[Question]string {
	out := map[Question]string{}
	for _, s := range tree.Steps() {
		if s.Answer != "" {
			out[s.Question] = s.Answer
		}
	}
	return out
}

func TestNew_Validation(t *testing.T) {
	court := newCourt(t, 7, 7)

	if _, err := New(KindTwoPoint, "home-6", court); !errors.Is(err, ErrNotOnCourt) {
		t.Fatalf("expected ErrNotOnCourt for benched player, got %v", err)
	}
	if _, err := New(KindTwoPoint, "ghost", court); !errors.Is(err, lineup.ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
	if _, err := New("dunk", "home-1", court); !errors.Is(err, ErrUnknownStatKind) {
		t.Fatalf("expected ErrUnknownStatKind, got %v", err)
	}
}

func TestParseStatKind(t *testing.T) {
	for raw, want := range map[string]StatKind{"2pt": KindTwoPoint, "stl": KindSteal, " FOUL ": KindFoul, "Jersey": KindSubstitution} {
		got, err := ParseStatKind(raw)
		if err != nil || got != want {
			t.Fatalf("ParseStatKind(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseStatKind("alley-oop"); !errors.Is(err, ErrUnknownStatKind) {
		t.Fatalf("expected ErrUnknownStatKind, got %v", err)
	}
}

func TestAnswer_RejectsClosedQuestionsAndBadValues(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindTwoPoint, "home-1", court)

	if err := tree.Answer(QuestionFouled, ValueYes); !errors.Is(err, ErrQuestionNotOpen) {
		t.Fatalf("expected ErrQuestionNotOpen, got %v", err)
	}
	if err := tree.Answer(QuestionOutcome, "swish"); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}

	mustAnswer(t, tree, QuestionOutcome, ValueMade)
	mustAnswer(t, tree, QuestionFouled, ValueYes)
	if err := tree.Answer(QuestionFouler, "home-2"); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("teammate must not be offered as fouler, got %v", err)
	}
}

func TestShotTree_TopLevelResetMatchesFreshTree(t *testing.T) {
	court := newCourt(t, 5, 5)

	for _, kind := range []StatKind{KindTwoPoint, KindThreePoint} {
		tree := mustTree(t, kind, "home-1", court)
		mustAnswer(t, tree, QuestionOutcome, ValueMade)
		mustAnswer(t, tree, QuestionFouled, ValueYes)
		mustAnswer(t, tree, QuestionFouler, "away-2")
		mustAnswer(t, tree, FreeThrowQuestion(1), ValueMade)
		mustAnswer(t, tree, QuestionAssisted, ValueYes)
		mustAnswer(t, tree, QuestionAssister, "home-3")

		mustAnswer(t, tree, QuestionOutcome, ValueMissed)

		fresh := mustTree(t, kind, "home-1", court)
		mustAnswer(t, fresh, QuestionOutcome, ValueMissed)

		if fmt.Sprint(answered(tree)) != fmt.Sprint(answered(fresh)) {
			t.Fatalf("%s: stale answers survived reset: %v vs %v", kind, answered(tree), answered(fresh))
		}
		if !slices.Equal(questions(tree), questions(fresh)) {
			t.Fatalf("%s: revealed questions differ: %v vs %v", kind, questions(tree), questions(fresh))
		}
		if tree.Complete() {
			t.Fatalf("%s: reset tree must not be complete", kind)
		}
	}
}

func TestShotTree_CompletionPerBranch(t *testing.T) {
	type answerStep struct {
		q Question
		v string
	}
	cases := []struct {
		name  string
		kind  StatKind
		steps []answerStep
		want  []string
	}{
		{
			name: "made fouled assisted",
			kind: KindTwoPoint,
			steps: []answerStep{
				{QuestionOutcome, ValueMade}, {QuestionFouled, ValueYes}, {QuestionFouler, "away-1"},
				{FreeThrowQuestion(1), ValueMade}, {QuestionAssisted, ValueYes}, {QuestionAssister, "home-2"},
			},
			want: []string{"home-1:two_made", "home-1:free_throw_made", "home-2:assist"},
		},
		{
			name:  "made not fouled not assisted",
			kind:  KindThreePoint,
			steps: []answerStep{{QuestionOutcome, ValueMade}, {QuestionFouled, ValueNo}, {QuestionAssisted, ValueNo}},
			want:  []string{"home-1:three_made"},
		},
		{
			name: "missed fouled three",
			kind: KindThreePoint,
			steps: []answerStep{
				{QuestionOutcome, ValueMissed}, {QuestionFouled, ValueYes}, {QuestionFouler, "away-4"},
				{FreeThrowQuestion(1), ValueMade}, {FreeThrowQuestion(2), ValueMissed}, {FreeThrowQuestion(3), ValueMade},
				{QuestionRebounded, ValueNo},
			},
			want: []string{"home-1:three_missed", "home-1:free_throw_made", "home-1:free_throw_missed", "home-1:free_throw_made"},
		},
		{
			name: "missed not fouled blocked rebounded",
			kind: KindTwoPoint,
			steps: []answerStep{
				{QuestionOutcome, ValueMissed}, {QuestionFouled, ValueNo}, {QuestionBlocked, ValueYes},
				{QuestionBlocker, "away-5"}, {QuestionRebounded, ValueYes}, {QuestionRebounder, "away-3"},
			},
			want: []string{"home-1:two_missed", "away-5:block", "away-3:rebound"},
		},
		{
			name: "missed not fouled not blocked not rebounded",
			kind: KindTwoPoint,
			steps: []answerStep{
				{QuestionOutcome, ValueMissed}, {QuestionFouled, ValueNo}, {QuestionBlocked, ValueNo}, {QuestionRebounded, ValueNo},
			},
			want: []string{"home-1:two_missed"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			court := newCourt(t, 5, 5)
			tree := mustTree(t, tc.kind, "home-1", court)

			for i, s := range tc.steps {
				if tree.Complete() {
					t.Fatalf("complete before answering %s", s.q)
				}
				if _, err := tree.Events(testGameID); !errors.Is(err, ErrIncomplete) {
					t.Fatalf("expected ErrIncomplete before %s, got %v", s.q, err)
				}
				mustAnswer(t, tree, s.q, s.v)
				if i < len(tc.steps)-1 && tree.Complete() {
					t.Fatalf("complete too early after %s", s.q)
				}
			}
			if !tree.Complete() {
				t.Fatalf("expected complete after last answer, steps=%v", tree.Steps())
			}
			if got := mustEvents(t, tree); !slices.Equal(got, tc.want) {
				t.Fatalf("unexpected events:\n got  %v\n want %v", got, tc.want)
			}
		})
	}
}

func TestShotTree_FoulerNeverAttributed(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindTwoPoint, "home-1", court)
	mustAnswer(t, tree, QuestionOutcome, ValueMade)
	mustAnswer(t, tree, QuestionFouled, ValueYes)
	mustAnswer(t, tree, QuestionFouler, "away-2")
	mustAnswer(t, tree, FreeThrowQuestion(1), ValueMade)
	mustAnswer(t, tree, QuestionAssisted, ValueYes)
	mustAnswer(t, tree, QuestionAssister, "home-4")

	events, err := tree.Events(testGameID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected exactly 3 events, got %v", events)
	}
	for _, e := range events {
		if e.PlayerID == "away-2" {
			t.Fatalf("fouler must not be named: %v", e)
		}
	}
	if events[1].PlayerID != "home-1" || events[1].Kind != stat.KindFreeThrowMade {
		t.Fatalf("free throw must go to the shooter: %v", events[1])
	}
}

func TestShotTree_FreeThrowSlotsByOutcome(t *testing.T) {
	court := newCourt(t, 5, 5)

	cases := []struct {
		kind    StatKind
		outcome string
		want    int
	}{
		{KindTwoPoint, ValueMade, 1},
		{KindThreePoint, ValueMade, 1},
		{KindTwoPoint, ValueMissed, 2},
		{KindThreePoint, ValueMissed, 3},
	}
	for _, tc := range cases {
		tree := mustTree(t, tc.kind, "away-1", court)
		mustAnswer(t, tree, QuestionOutcome, tc.outcome)
		mustAnswer(t, tree, QuestionFouled, ValueYes)

		got := 0
		for i := 1; i <= 3; i++ {
			if _, ok := stepFor(tree, FreeThrowQuestion(i)); ok {
				got++
			}
		}
		if got != tc.want {
			t.Fatalf("%s %s: expected %d free throw slots, got %d", tc.kind, tc.outcome, tc.want, got)
		}
	}
}

func TestShotTree_FreeThrowSlotsAreIndependent(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindTwoPoint, "home-1", court)
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	mustAnswer(t, tree, QuestionFouled, ValueYes)
	mustAnswer(t, tree, QuestionFouler, "away-1")
	mustAnswer(t, tree, FreeThrowQuestion(2), ValueMade)
	mustAnswer(t, tree, FreeThrowQuestion(1), ValueMissed)
	mustAnswer(t, tree, QuestionRebounded, ValueNo)

	if got := answered(tree); got[FreeThrowQuestion(2)] != ValueMade || got[QuestionRebounded] != ValueNo {
		t.Fatalf("sibling answers were cleared: %v", got)
	}

	mustAnswer(t, tree, QuestionFouled, ValueNo)
	if got := answered(tree); len(got) != 2 {
		t.Fatalf("changing the foul answer must clear everything below it: %v", got)
	}
}

func TestShotTree_CandidatePools(t *testing.T) {
	court := newCourt(t, 7, 7)
	tree := mustTree(t, KindTwoPoint, "home-2", court)
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	mustAnswer(t, tree, QuestionFouled, ValueNo)
	mustAnswer(t, tree, QuestionBlocked, ValueYes)

	blockers := optionValues(t, tree, QuestionBlocker)
	if fmt.Sprint(blockers) != "[away-1 away-2 away-3 away-4 away-5]" {
		t.Fatalf("blockers must be on-court opponents only: %v", blockers)
	}

	mustAnswer(t, tree, QuestionBlocked, ValueNo)
	if _, ok := stepFor(tree, QuestionBlocker); ok {
		t.Fatalf("blocker must be hidden after answering no")
	}
	mustAnswer(t, tree, QuestionRebounded, ValueYes)

	rebounders := optionValues(t, tree, QuestionRebounder)
	if len(rebounders) != 10 {
		t.Fatalf("expected 10 rebound candidates, got %v", rebounders)
	}
	if !slices.Contains(rebounders, "home-2") || !slices.Contains(rebounders, "away-5") {
		t.Fatalf("rebounders must span both teams: %v", rebounders)
	}
	if slices.Contains(rebounders, "home-6") || slices.Contains(rebounders, "away-7") {
		t.Fatalf("benched players must not be offered: %v", rebounders)
	}
}

func TestShotTree_AssistCandidatesExcludeShooter(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindThreePoint, "home-3", court)
	mustAnswer(t, tree, QuestionOutcome, ValueMade)
	mustAnswer(t, tree, QuestionFouled, ValueNo)
	mustAnswer(t, tree, QuestionAssisted, ValueYes)

	if got := optionValues(t, tree, QuestionAssister); fmt.Sprint(got) != "[home-1 home-2 home-4 home-5]" {
		t.Fatalf("unexpected assister candidates: %v", got)
	}
}

func TestShotTree_ReboundWaitsForBlocker(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindTwoPoint, "home-1", court)
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	mustAnswer(t, tree, QuestionFouled, ValueNo)

	if _, ok := stepFor(tree, QuestionRebounded); ok {
		t.Fatalf("rebound must not be asked before the block question")
	}
	mustAnswer(t, tree, QuestionBlocked, ValueYes)
	if _, ok := stepFor(tree, QuestionRebounded); ok {
		t.Fatalf("rebound must wait for the blocker")
	}
	mustAnswer(t, tree, QuestionBlocker, "away-1")
	if _, ok := stepFor(tree, QuestionRebounded); !ok {
		t.Fatalf("rebound should be asked once the blocker is chosen")
	}
}

func TestTurnoverTree_WithSteal(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindTurnover, "home-1", court)

	if tree.Complete() {
		t.Fatalf("turnover must wait for the stolen question")
	}
	mustAnswer(t, tree, QuestionStolen, ValueYes)
	if tree.Complete() {
		t.Fatalf("a stolen turnover needs a stealer")
	}
	mustAnswer(t, tree, QuestionStealer, "away-2")

	got := mustEvents(t, tree)
	want := []string{"home-1:turnover", "away-2:steal"}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected events: %v", got)
	}

	mustAnswer(t, tree, QuestionStolen, ValueNo)
	if got := mustEvents(t, tree); !slices.Equal(got, []string{"home-1:turnover"}) {
		t.Fatalf("unexpected events after answering no: %v", got)
	}
}

func TestStealTree_VictimOptional(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindSteal, "away-3", court)

	if got := mustEvents(t, tree); !slices.Equal(got, []string{"away-3:steal"}) {
		t.Fatalf("unexpected events: %v", got)
	}
	if got := optionValues(t, tree, QuestionStolenFrom); fmt.Sprint(got) != "[home-1 home-2 home-3 home-4 home-5]" {
		t.Fatalf("unexpected victim candidates: %v", got)
	}
	mustAnswer(t, tree, QuestionStolenFrom, "home-4")
	if got := mustEvents(t, tree); !slices.Equal(got, []string{"away-3:steal", "home-4:turnover"}) {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestBlockTree_Recorded(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindBlock, "home-5", court)

	mustAnswer(t, tree, QuestionOpponent, "away-1")
	if tree.Complete() {
		t.Fatalf("block needs a shot type")
	}
	mustAnswer(t, tree, QuestionShotType, ValueThree)

	got := mustEvents(t, tree)
	if !slices.Equal(got, []string{"home-5:block", "away-1:three_missed"}) {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestAssistTree(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindAssist, "home-1", court)

	if got := optionValues(t, tree, QuestionTeammate); slices.Contains(got, "home-1") || len(got) != 4 {
		t.Fatalf("unexpected teammates: %v", got)
	}
	mustAnswer(t, tree, QuestionTeammate, "home-2")
	mustAnswer(t, tree, QuestionShotType, ValueTwo)
	mustAnswer(t, tree, QuestionFouled, ValueYes)
	if tree.Complete() {
		t.Fatalf("fouled assist needs a free throw result")
	}
	mustAnswer(t, tree, QuestionFreeThrow, ValueMissed)

	got := mustEvents(t, tree)
	want := []string{"home-1:assist", "home-2:two_made", "home-2:free_throw_missed"}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected events: %v", got)
	}

	mustAnswer(t, tree, QuestionShotType, ValueThree)
	if tree.Complete() {
		t.Fatalf("changing shot type must clear the foul answers")
	}
}

func TestFoulTree_FreeThrowCountOptions(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindFoul, "home-1", court)
	mustAnswer(t, tree, QuestionOpponent, "away-1")
	mustAnswer(t, tree, QuestionShootingFoul, ValueYes)

	mustAnswer(t, tree, QuestionShotType, ValueThree)
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	if got := optionValues(t, tree, QuestionFreeThrowsMade); !slices.Equal(got, []string{"0", "1", "2", "3"}) {
		t.Fatalf("unexpected 3pt count options: %v", got)
	}

	mustAnswer(t, tree, QuestionShotType, ValueTwo)
	if _, ok := stepFor(tree, QuestionFreeThrowsMade); ok {
		t.Fatalf("changing shot type must reset the shot outcome")
	}
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	if got := optionValues(t, tree, QuestionFreeThrowsMade); !slices.Equal(got, []string{"0", "1", "2"}) {
		t.Fatalf("unexpected 2pt count options: %v", got)
	}

	mustAnswer(t, tree, QuestionFreeThrowsMade, "2")
	got := mustEvents(t, tree)
	want := []string{"home-1:foul", "away-1:fouled", "away-1:free_throw_made_count(2)"}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestFoulTree_ResetsAndBranches(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindFoul, "away-2", court)

	mustAnswer(t, tree, QuestionOpponent, "home-3")
	mustAnswer(t, tree, QuestionShootingFoul, ValueNo)
	if !tree.Complete() {
		t.Fatalf("non-shooting foul should be complete")
	}
	if got := mustEvents(t, tree); !slices.Equal(got, []string{"away-2:foul", "home-3:fouled"}) {
		t.Fatalf("unexpected events: %v", got)
	}

	mustAnswer(t, tree, QuestionShootingFoul, ValueYes)
	mustAnswer(t, tree, QuestionShotType, ValueTwo)
	mustAnswer(t, tree, QuestionOutcome, ValueMade)
	mustAnswer(t, tree, QuestionFreeThrow, ValueMade)
	if got := mustEvents(t, tree); !slices.Equal(got, []string{"away-2:foul", "home-3:fouled", "home-3:free_throw_made"}) {
		t.Fatalf("unexpected events: %v", got)
	}

	mustAnswer(t, tree, QuestionOpponent, "home-4")
	fresh := mustTree(t, KindFoul, "away-2", court)
	mustAnswer(t, fresh, QuestionOpponent, "home-4")
	if fmt.Sprint(answered(tree)) != fmt.Sprint(answered(fresh)) {
		t.Fatalf("changing the fouled player must reset everything below: %v", answered(tree))
	}
}

func TestFoulTree_ZeroMadeCountIsEmitted(t *testing.T) {
	court := newCourt(t, 5, 5)
	tree := mustTree(t, KindFoul, "home-1", court)
	mustAnswer(t, tree, QuestionOpponent, "away-2")
	mustAnswer(t, tree, QuestionShootingFoul, ValueYes)
	mustAnswer(t, tree, QuestionShotType, ValueThree)
	mustAnswer(t, tree, QuestionOutcome, ValueMissed)
	mustAnswer(t, tree, QuestionFreeThrowsMade, "0")

	events, err := tree.Events(testGameID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	last := events[len(events)-1]
	if last.Kind != stat.KindFreeThrowMadeCount || last.Count != 0 || last.PlayerID != "away-2" {
		t.Fatalf("unexpected count event: %+v", last)
	}
}

func TestReboundAndFreeThrowTrees(t *testing.T) {
	court := newCourt(t, 5, 5)

	reb := mustTree(t, KindRebound, "home-4", court)
	if len(reb.Steps()) != 0 || !reb.Complete() {
		t.Fatalf("rebound is a bare confirmation")
	}
	if got := mustEvents(t, reb); !slices.Equal(got, []string{"home-4:rebound"}) {
		t.Fatalf("unexpected events: %v", got)
	}

	ft := mustTree(t, KindFreeThrow, "away-4", court)
	if ft.Complete() {
		t.Fatalf("free throw needs a result")
	}
	mustAnswer(t, ft, QuestionFreeThrow, ValueMissed)
	if got := mustEvents(t, ft); !slices.Equal(got, []string{"away-4:free_throw_missed"}) {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestSubstitutionTree(t *testing.T) {
	court := newCourt(t, 7, 5)

	if _, err := New(KindSubstitution, "away-1", court); !errors.Is(err, lineup.ErrEmptyBench) {
		t.Fatalf("expected ErrEmptyBench, got %v", err)
	}

	tree := mustTree(t, KindSubstitution, "home-2", court)
	if got := optionValues(t, tree, QuestionIncoming); fmt.Sprint(got) != "[home-6 home-7]" {
		t.Fatalf("unexpected bench options: %v", got)
	}
	sub, ok := tree.(*SubstitutionTree)
	if !ok {
		t.Fatalf("expected *SubstitutionTree, got %T", tree)
	}
	if _, _, ok := sub.Swap(); ok {
		t.Fatalf("swap must not be ready before choosing")
	}

	mustAnswer(t, tree, QuestionIncoming, "home-7")
	if got := mustEvents(t, tree); len(got) != 0 {
		t.Fatalf("substitution must not emit stat events: %v", got)
	}
	out, in, ok := sub.Swap()
	if !ok || out != "home-2" || in != "home-7" {
		t.Fatalf("unexpected swap: %s %s %v", out, in, ok)
	}
}
