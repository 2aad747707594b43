package scorebook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

// Wire shapes follow the scorebook's camel-cased column names (team_ID, three_Points_Made, ...).

type teamDTO struct {
	TeamID   int    `json:"team_ID"`
	TeamName string `json:"team_Name"`
	TeamCity string `json:"team_City"`
}

func (d teamDTO) toDomain() team.Team {
	return team.Team{
		ID:   formatID(d.TeamID),
		Name: strings.TrimSpace(d.TeamName),
		City: strings.TrimSpace(d.TeamCity),
	}
}

type playerDTO struct {
	PlayerID     int    `json:"player_ID"`
	TeamID       *int   `json:"team_ID"`
	FirstName    string `json:"first_Name"`
	LastName     string `json:"last_Name"`
	PositionID   string `json:"position_ID"`
	JerseyNumber int    `json:"jersey_Number"`
}

func (d playerDTO) onTeam(teamID int) bool {
	return d.TeamID != nil && *d.TeamID == teamID
}

func (d playerDTO) toDomain() player.Player {
	p := player.Player{
		ID:           formatID(d.PlayerID),
		FirstName:    strings.TrimSpace(d.FirstName),
		LastName:     strings.TrimSpace(d.LastName),
		JerseyNumber: d.JerseyNumber,
		Position:     strings.TrimSpace(d.PositionID),
	}
	if d.TeamID != nil {
		p.TeamID = formatID(*d.TeamID)
	}
	return p
}

type gameDTO struct {
	GameID   int    `json:"game_ID"`
	HomeID   int    `json:"home_ID"`
	AwayID   int    `json:"away_ID"`
	GameDate string `json:"game_Date"`
}

func (d gameDTO) toDomain() (game.Game, error) {
	scheduledAt, err := parseGameDate(d.GameDate)
	if err != nil {
		return game.Game{}, fmt.Errorf("game %d: %w", d.GameID, err)
	}
	return game.Game{
		ID:          formatID(d.GameID),
		HomeTeamID:  formatID(d.HomeID),
		AwayTeamID:  formatID(d.AwayID),
		ScheduledAt: scheduledAt,
	}, nil
}

type gameCreateDTO struct {
	HomeID   int    `json:"home_ID"`
	AwayID   int    `json:"away_ID"`
	GameDate string `json:"game_Date"`
}

// statDTO is both the stat row and the increment body. The scorebook has no
// column for being fouled, so that counter stays local.
type statDTO struct {
	StatID            int `json:"stat_ID,omitempty"`
	PlayerID          int `json:"player_ID"`
	GameID            int `json:"game_ID"`
	ThreePointsMade   int `json:"three_Points_Made"`
	ThreePointsMissed int `json:"three_Points_Missed"`
	TwoPointsMade     int `json:"two_Points_Made"`
	TwoPointsMissed   int `json:"two_Points_Missed"`
	FreeThrowMade     int `json:"free_Throw_Made"`
	FreeThrowMissed   int `json:"free_Throw_Missed"`
	Steals            int `json:"steals"`
	Turnovers         int `json:"turnovers"`
	Assists           int `json:"assists"`
	Blocks            int `json:"blocks"`
	Fouls             int `json:"fouls"`
	OffRebounds       int `json:"off_Rebounds"`
	DefRebounds       int `json:"def_Rebounds"`
}

func statDTOFromLine(gameID, playerID int, l stat.Line) statDTO {
	return statDTO{
		PlayerID:          playerID,
		GameID:            gameID,
		ThreePointsMade:   l.ThreeMade,
		ThreePointsMissed: l.ThreeMissed,
		TwoPointsMade:     l.TwoMade,
		TwoPointsMissed:   l.TwoMissed,
		FreeThrowMade:     l.FreeThrowMade,
		FreeThrowMissed:   l.FreeThrowMissed,
		Steals:            l.Steals,
		Turnovers:         l.Turnovers,
		Assists:           l.Assists,
		Blocks:            l.Blocks,
		Fouls:             l.Fouls,
		OffRebounds:       l.OffRebounds,
		DefRebounds:       l.DefRebounds,
	}
}

func (d statDTO) toDomain() stat.Line {
	return stat.Line{
		GameID:          formatID(d.GameID),
		PlayerID:        formatID(d.PlayerID),
		ThreeMade:       d.ThreePointsMade,
		ThreeMissed:     d.ThreePointsMissed,
		TwoMade:         d.TwoPointsMade,
		TwoMissed:       d.TwoPointsMissed,
		FreeThrowMade:   d.FreeThrowMade,
		FreeThrowMissed: d.FreeThrowMissed,
		Steals:          d.Steals,
		Turnovers:       d.Turnovers,
		Assists:         d.Assists,
		Blocks:          d.Blocks,
		Fouls:           d.Fouls,
		OffRebounds:     d.OffRebounds,
		DefRebounds:     d.DefRebounds,
	}
}

func formatID(id int) string {
	return strconv.Itoa(id)
}

// parseID reports false for ids the scorebook could never have issued.
func parseID(id string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

var gameDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseGameDate reads the scorebook's DateTime text. Values without an offset are UTC.
func parseGameDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range gameDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", value)
}

func formatGameDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}
