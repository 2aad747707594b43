package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// ListByTeam returns the team's roster in roster order.
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
