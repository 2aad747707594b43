package stat

import "context"

// Repository is the stat sink and its read side.
type Repository interface {
	// Increment adds delta's counters to the (GameID, PlayerID) line, creating it on first write.
	Increment(ctx context.Context, delta Line) error
	ListByGame(ctx context.Context, gameID string) ([]Line, error)
	DeleteByGame(ctx context.Context, gameID string) error
}
