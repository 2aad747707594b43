package player

import (
	"fmt"
	"strings"
)

// Player is a rostered athlete. Roster order is the order a Repository returns.
type Player struct {
	ID           string
	TeamID       string
	FirstName    string
	LastName     string
	JerseyNumber int
	Position     string
}

func (p Player) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.LastName == "" && p.FirstName == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("invalid jersey number: %d", p.JerseyNumber)
	}

	return nil
}
