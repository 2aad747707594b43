package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	// List returns the schedule ordered by ScheduledAt, with team names resolved.
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, gameID string) (Game, bool, error)
	// Create stores g. Stores that assign their own ids return the stored game.
	Create(ctx context.Context, g Game) (Game, error)
	Delete(ctx context.Context, gameID string) error
}
