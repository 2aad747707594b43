package team

import "fmt"

// Team is a basketball club that can be scheduled as home or away.
type Team struct {
	ID   string
	Name string
	City string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
