package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type createGameRequest struct {
	HomeTeamID  string     `json:"home_team_id" validate:"required"`
	AwayTeamID  string     `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	ScheduledAt *time.Time `json:"scheduled_at" validate:"required_without=Date"`
	Date        string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string     `json:"time" validate:"required_with=Date"`
}

type recordStatRequest struct {
	PlayerID  string `json:"player_id" validate:"required"`
	EventKind string `json:"event_kind" validate:"required,event_kind"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.scheduleService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.scheduleService.ListPlayers(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.scheduleService.GetSchedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	item, err := h.scheduleService.GetGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CreateGameInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
		Time:       req.Time,
	}
	if req.ScheduledAt != nil {
		input.ScheduledAt = req.ScheduledAt.UTC()
	}

	created, err := h.scheduleService.CreateGame(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed",
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	gameID := r.PathValue("gameID")
	if err := h.scheduleService.DeleteGame(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"game_id": gameID, "status": "deleted"})
}

func (h *Handler) RecordStatEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordStatEvent")
	defer span.End()

	var req recordStatRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	kind, count, err := stat.ParseLabel(req.EventKind)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	event := stat.Event{
		GameID:   r.PathValue("gameID"),
		PlayerID: req.PlayerID,
		Kind:     kind,
		Count:    count,
	}
	if err := h.statService.RecordStatEvent(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "record stat event failed",
			"game_id", event.GameID,
			"player_id", event.PlayerID,
			"event_kind", req.EventKind,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordStatDTO{
		Event:   eventToDTO(event),
		Message: usecase.MessageStatsRecorded,
	})
}

func (h *Handler) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoxScore")
	defer span.End()

	gameID := r.PathValue("gameID")
	box, err := h.boxScoreService.BoxScore(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get box score failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, box)
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScores")
	defer span.End()

	scores, err := h.boxScoreService.ListGameScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list game scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scores)
}
