package stat

import "math"

// Summary is the box-score projection of a Line.
type Summary struct {
	Points          int `json:"points"`
	Rebounds        int `json:"rebounds"`
	Assists         int `json:"assists"`
	Steals          int `json:"steals"`
	Blocks          int `json:"blocks"`
	Turnovers       int `json:"turnovers"`
	Fouls           int `json:"fouls"`
	FieldGoalsMade  int `json:"field_goals_made"`
	FieldGoalsTried int `json:"field_goals_attempted"`
	FieldGoalPct    int `json:"field_goal_pct"`
	ThreesMade      int `json:"threes_made"`
	ThreesTried     int `json:"threes_attempted"`
	ThreePct        int `json:"three_pct"`
	FreeThrowsMade  int `json:"free_throws_made"`
	FreeThrowsTried int `json:"free_throws_attempted"`
	FreeThrowPct    int `json:"free_throw_pct"`
}

func Summarize(l Line) Summary {
	fgMade := l.TwoMade + l.ThreeMade
	fgTried := fgMade + l.TwoMissed + l.ThreeMissed
	threesTried := l.ThreeMade + l.ThreeMissed
	ftTried := l.FreeThrowMade + l.FreeThrowMissed

	return Summary{
		Points:          3*l.ThreeMade + 2*l.TwoMade + l.FreeThrowMade,
		Rebounds:        l.OffRebounds + l.DefRebounds,
		Assists:         l.Assists,
		Steals:          l.Steals,
		Blocks:          l.Blocks,
		Turnovers:       l.Turnovers,
		Fouls:           l.Fouls,
		FieldGoalsMade:  fgMade,
		FieldGoalsTried: fgTried,
		FieldGoalPct:    Percent(fgMade, fgTried),
		ThreesMade:      l.ThreeMade,
		ThreesTried:     threesTried,
		ThreePct:        Percent(l.ThreeMade, threesTried),
		FreeThrowsMade:  l.FreeThrowMade,
		FreeThrowsTried: ftTried,
		FreeThrowPct:    Percent(l.FreeThrowMade, ftTried),
	}
}

// Total sums lines into one team line.
func Total(lines []Line) Line {
	var out Line
	for _, l := range lines {
		out = out.Add(l)
	}
	return out
}

// Percent rounds made/attempts to a whole percentage; no attempts is 0.
func Percent(made, attempts int) int {
	if attempts <= 0 {
		return 0
	}
	return int(math.Round(float64(made) / float64(attempts) * 100))
}
