package game

import (
	"fmt"
	"time"
)

// Game is one scheduled match between a home and an away team.
// Team names are resolved for display and are not part of identity.
type Game struct {
	ID           string
	HomeTeamID   string
	AwayTeamID   string
	HomeTeamName string
	AwayTeamName string
	ScheduledAt  time.Time
}

func (g Game) Validate() error {
	if g.HomeTeamID == "" || g.AwayTeamID == "" {
		return fmt.Errorf("home and away team ids are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("home and away team must differ")
	}
	if g.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled time is required")
	}

	return nil
}

// Involves reports whether teamID plays in the game.
func (g Game) Involves(teamID string) bool {
	return teamID != "" && (teamID == g.HomeTeamID || teamID == g.AwayTeamID)
}

// OpponentOf returns the other side of the game for teamID.
func (g Game) OpponentOf(teamID string) (string, bool) {
	switch teamID {
	case g.HomeTeamID:
		return g.AwayTeamID, true
	case g.AwayTeamID:
		return g.HomeTeamID, true
	default:
		return "", false
	}
}

func (g Game) TeamIDs() []string {
	return []string{g.HomeTeamID, g.AwayTeamID}
}
