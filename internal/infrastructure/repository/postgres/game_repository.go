package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/domain/game"
	qb "github.com/riskibarqy/courtside/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func gameSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"g.public_id",
		"g.home_team_public_id",
		"g.away_team_public_id",
		"g.scheduled_at",
		"COALESCE(h.name, '') AS home_team_name",
		"COALESCE(a.name, '') AS away_team_name",
	).
		From("games g").
		Join("LEFT JOIN teams h ON h.public_id = g.home_team_public_id").
		Join("LEFT JOIN teams a ON a.public_id = g.away_team_public_id")
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, args, err := gameSelectBuilder().
		OrderBy("g.scheduled_at", "g.public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	query, args, err := gameSelectBuilder().
		Where(qb.Eq("g.public_id", gameID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (game.Game, error) {
	query, args, err := qb.InsertModel("games", gameInsertModel{
		PublicID:    g.ID,
		HomeTeamID:  g.HomeTeamID,
		AwayTeamID:  g.AwayTeamID,
		ScheduledAt: g.ScheduledAt.UTC(),
	}).ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return game.Game{}, fmt.Errorf("insert game %s: already exists: %w", g.ID, err)
		}
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	created, ok, err := r.GetByID(ctx, g.ID)
	if err != nil {
		return game.Game{}, err
	}
	if !ok {
		return game.Game{}, fmt.Errorf("insert game %s: row not visible after insert", g.ID)
	}
	return created, nil
}

func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	query, args, err := qb.DeleteFrom("games").
		Where(qb.Eq("public_id", gameID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}
