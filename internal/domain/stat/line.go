package stat

// Line is the per-player, per-game counter record. It is created by the
// first increment for a (game, player) pair.
type Line struct {
	GameID          string
	PlayerID        string
	ThreeMade       int
	ThreeMissed     int
	TwoMade         int
	TwoMissed       int
	FreeThrowMade   int
	FreeThrowMissed int
	Steals          int
	Turnovers       int
	Assists         int
	Blocks          int
	Fouls           int
	Fouled          int
	OffRebounds     int
	DefRebounds     int
}

// Delta converts an event into the counter increment it stands for.
// A rebound is booked as defensive; plays do not say which end it was.
func Delta(e Event) Line {
	d := Line{GameID: e.GameID, PlayerID: e.PlayerID}
	switch e.Kind {
	case KindTwoMade:
		d.TwoMade = 1
	case KindTwoMissed:
		d.TwoMissed = 1
	case KindThreeMade:
		d.ThreeMade = 1
	case KindThreeMissed:
		d.ThreeMissed = 1
	case KindFreeThrowMade:
		d.FreeThrowMade = 1
	case KindFreeThrowMissed:
		d.FreeThrowMissed = 1
	case KindFreeThrowMadeCount:
		d.FreeThrowMade = e.Count
	case KindSteal:
		d.Steals = 1
	case KindTurnover:
		d.Turnovers = 1
	case KindAssist:
		d.Assists = 1
	case KindBlock:
		d.Blocks = 1
	case KindFoul:
		d.Fouls = 1
	case KindFouled:
		d.Fouled = 1
	case KindRebound:
		d.DefRebounds = 1
	}
	return d
}

// Add returns l with every counter of d added. Identity fields of l are kept.
func (l Line) Add(d Line) Line {
	l.ThreeMade += d.ThreeMade
	l.ThreeMissed += d.ThreeMissed
	l.TwoMade += d.TwoMade
	l.TwoMissed += d.TwoMissed
	l.FreeThrowMade += d.FreeThrowMade
	l.FreeThrowMissed += d.FreeThrowMissed
	l.Steals += d.Steals
	l.Turnovers += d.Turnovers
	l.Assists += d.Assists
	l.Blocks += d.Blocks
	l.Fouls += d.Fouls
	l.Fouled += d.Fouled
	l.OffRebounds += d.OffRebounds
	l.DefRebounds += d.DefRebounds
	return l
}

func (l Line) Apply(e Event) Line {
	return l.Add(Delta(e))
}

func (l Line) IsZero() bool {
	zero := Line{GameID: l.GameID, PlayerID: l.PlayerID}
	return l == zero
}
