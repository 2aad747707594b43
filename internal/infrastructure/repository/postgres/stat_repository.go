package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

const statTable = "player_game_stats"

var statCounterColumns = []string{
	"three_made", "three_missed", "two_made", "two_missed",
	"free_throw_made", "free_throw_missed",
	"steals", "turnovers", "assists", "blocks", "fouls", "fouled",
	"off_rebounds", "def_rebounds",
}

type StatRepository struct {
	db *sqlx.DB
}

func NewStatRepository(db *sqlx.DB) *StatRepository {
	return &StatRepository{db: db}
}

// incrementQuery inserts delta as a new line or adds it to the existing one.
func incrementQuery(delta stat.Line) (string, []any, error) {
	sets := make([]string, 0, len(statCounterColumns)+1)
	for _, col := range statCounterColumns {
		sets = append(sets, fmt.Sprintf("%s = %s.%s + EXCLUDED.%s", col, statTable, col, col))
	}
	sets = append(sets, "updated_at = NOW()")

	return qb.InsertModel(statTable, statLineFromDomain(delta)).
		OnConflictDoUpdate([]string{"game_public_id", "player_public_id"}, sets...).
		ToSQL()
}

func (r *StatRepository) Increment(ctx context.Context, delta stat.Line) error {
	query, args, err := incrementQuery(delta)
	if err != nil {
		return fmt.Errorf("build increment stat query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("increment stat line: %w", err)
	}
	return nil
}

func (r *StatRepository) ListByGame(ctx context.Context, gameID string) ([]stat.Line, error) {
	columns := append([]string{"game_public_id", "player_public_id"}, statCounterColumns...)
	query, args, err := qb.Select(columns...).From(statTable).
		Where(qb.Eq("game_public_id", gameID)).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat lines query: %w", err)
	}

	var rows []statLineModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat lines: %w", err)
	}

	out := make([]stat.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StatRepository) DeleteByGame(ctx context.Context, gameID string) error {
	query, args, err := qb.DeleteFrom(statTable).
		Where(qb.Eq("game_public_id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stat lines query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stat lines: %w", err)
	}
	return nil
}
