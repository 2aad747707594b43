package postgres

import (
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

type teamTableModel struct {
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
	City     string `db:"city"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: m.PublicID, Name: m.Name, City: m.City}
}

type playerTableModel struct {
	PublicID     string `db:"public_id"`
	TeamID       string `db:"team_public_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	JerseyNumber int    `db:"jersey_number"`
	Position     string `db:"position"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.PublicID,
		TeamID:       m.TeamID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		JerseyNumber: m.JerseyNumber,
		Position:     m.Position,
	}
}

type gameInsertModel struct {
	PublicID    string    `db:"public_id"`
	HomeTeamID  string    `db:"home_team_public_id"`
	AwayTeamID  string    `db:"away_team_public_id"`
	ScheduledAt time.Time `db:"scheduled_at"`
}

type gameTableModel struct {
	PublicID     string    `db:"public_id"`
	HomeTeamID   string    `db:"home_team_public_id"`
	AwayTeamID   string    `db:"away_team_public_id"`
	ScheduledAt  time.Time `db:"scheduled_at"`
	HomeTeamName string    `db:"home_team_name"`
	AwayTeamName string    `db:"away_team_name"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:           m.PublicID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		HomeTeamName: m.HomeTeamName,
		AwayTeamName: m.AwayTeamName,
		ScheduledAt:  m.ScheduledAt.UTC(),
	}
}

// statLineModel mirrors player_game_stats. Field order is column order.
type statLineModel struct {
	GameID          string `db:"game_public_id"`
	PlayerID        string `db:"player_public_id"`
	ThreeMade       int    `db:"three_made"`
	ThreeMissed     int    `db:"three_missed"`
	TwoMade         int    `db:"two_made"`
	TwoMissed       int    `db:"two_missed"`
	FreeThrowMade   int    `db:"free_throw_made"`
	FreeThrowMissed int    `db:"free_throw_missed"`
	Steals          int    `db:"steals"`
	Turnovers       int    `db:"turnovers"`
	Assists         int    `db:"assists"`
	Blocks          int    `db:"blocks"`
	Fouls           int    `db:"fouls"`
	Fouled          int    `db:"fouled"`
	OffRebounds     int    `db:"off_rebounds"`
	DefRebounds     int    `db:"def_rebounds"`
}

func statLineFromDomain(l stat.Line) statLineModel {
	return statLineModel(l)
}

func (m statLineModel) toDomain() stat.Line {
	return stat.Line(m)
}
