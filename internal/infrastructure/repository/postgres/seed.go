package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo teams, rosters and schedule into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, name, city)
VALUES (:public_id, :name, :city)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
			"city":      t.City,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	rosterOrder := make(map[string]int)
	for _, p := range memory.SeedPlayers() {
		order := rosterOrder[p.TeamID]
		rosterOrder[p.TeamID] = order + 1

		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, team_public_id, first_name, last_name, jersey_number, position, roster_order)
VALUES (:public_id, :team_public_id, :first_name, :last_name, :jersey_number, :position, :roster_order)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"team_public_id": p.TeamID,
			"first_name":     p.FirstName,
			"last_name":      p.LastName,
			"jersey_number":  p.JerseyNumber,
			"position":       p.Position,
			"roster_order":   order,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	for _, g := range memory.SeedGames() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO games (public_id, home_team_public_id, away_team_public_id, scheduled_at)
VALUES (:public_id, :home_team_public_id, :away_team_public_id, :scheduled_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           g.ID,
			"home_team_public_id": g.HomeTeamID,
			"away_team_public_id": g.AwayTeamID,
			"scheduled_at":        g.ScheduledAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("bind seed game %s query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed game %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
