package httpapi

import (
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/playcapture"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type teamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DisplayName  string `json:"display_name"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position,omitempty"`
}

type gameDTO struct {
	ID           string    `json:"id"`
	HomeTeamID   string    `json:"home_team_id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamID   string    `json:"away_team_id"`
	AwayTeamName string    `json:"away_team_name"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

type eventDTO struct {
	GameID    string `json:"game_id"`
	PlayerID  string `json:"player_id"`
	EventKind string `json:"event_kind"`
}

type recordStatDTO struct {
	Event   eventDTO `json:"event"`
	Message string   `json:"message"`
}

type playDTO struct {
	Stat     string             `json:"stat"`
	Actor    playerDTO          `json:"actor"`
	Steps    []playcapture.Step `json:"steps"`
	Complete bool               `json:"complete"`
}

type sessionDTO struct {
	SessionID string                 `json:"session_id"`
	Game      gameDTO                `json:"game"`
	OnCourt   []playerDTO            `json:"on_court"`
	Bench     map[string][]playerDTO `json:"bench"`
	Play      *playDTO               `json:"play,omitempty"`
}

type substitutionDTO struct {
	OutgoingPlayerID string `json:"outgoing_player_id"`
	IncomingPlayerID string `json:"incoming_player_id"`
}

type submitResultDTO struct {
	Recorded     []eventDTO       `json:"recorded"`
	Failed       []eventDTO       `json:"failed"`
	Substitution *substitutionDTO `json:"substitution,omitempty"`
	Message      string           `json:"message"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{ID: v.ID, Name: v.Name, City: v.City}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		DisplayName:  v.DisplayName(),
		JerseyNumber: v.JerseyNumber,
		Position:     v.Position,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func gameToDTO(v game.Game) gameDTO {
	return gameDTO{
		ID:           v.ID,
		HomeTeamID:   v.HomeTeamID,
		HomeTeamName: v.HomeTeamName,
		AwayTeamID:   v.AwayTeamID,
		AwayTeamName: v.AwayTeamName,
		ScheduledAt:  v.ScheduledAt.UTC(),
	}
}

func eventToDTO(v stat.Event) eventDTO {
	return eventDTO{GameID: v.GameID, PlayerID: v.PlayerID, EventKind: v.Label()}
}

func eventsToDTO(items []stat.Event) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, e := range items {
		out = append(out, eventToDTO(e))
	}
	return out
}

func sessionToDTO(v usecase.SessionView) sessionDTO {
	out := sessionDTO{
		SessionID: v.SessionID,
		Game:      gameToDTO(v.Game),
		OnCourt:   playersToDTO(v.Lineup.OnCourt),
		Bench:     make(map[string][]playerDTO, len(v.Lineup.Bench)),
	}
	for teamID, bench := range v.Lineup.Bench {
		out.Bench[teamID] = playersToDTO(bench)
	}
	if v.Play != nil {
		steps := v.Play.Steps
		if steps == nil {
			steps = []playcapture.Step{}
		}
		out.Play = &playDTO{
			Stat:     string(v.Play.Kind),
			Actor:    playerToDTO(v.Play.Actor),
			Steps:    steps,
			Complete: v.Play.Complete,
		}
	}
	return out
}

func submitResultToDTO(v usecase.SubmitResult) submitResultDTO {
	out := submitResultDTO{
		Recorded: eventsToDTO(v.Recorded),
		Failed:   eventsToDTO(v.Failed),
		Message:  v.Message,
	}
	if v.Substitution != nil {
		out.Substitution = &substitutionDTO{
			OutgoingPlayerID: v.Substitution.OutgoingID,
			IncomingPlayerID: v.Substitution.IncomingID,
		}
	}
	return out
}
