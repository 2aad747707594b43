package httpapi

import "net/http"

type beginPlayRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Stat     string `json:"stat" validate:"required,stat_kind"`
}

type answerPlayRequest struct {
	Question string `json:"question" validate:"required"`
	Value    string `json:"value" validate:"required"`
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenSession")
	defer span.End()

	gameID := r.PathValue("gameID")
	view, err := h.scorekeepingService.OpenSession(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "open session failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(view))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	view, err := h.scorekeepingService.Session(ctx, r.PathValue("sessionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseSession")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	h.scorekeepingService.CloseSession(ctx, sessionID)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"session_id": sessionID, "status": "closed"})
}

func (h *Handler) BeginPlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BeginPlay")
	defer span.End()

	var req beginPlayRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID := r.PathValue("sessionID")
	view, err := h.scorekeepingService.BeginPlay(ctx, sessionID, req.PlayerID, req.Stat)
	if err != nil {
		h.logger.InfoContext(ctx, "begin play rejected",
			"session_id", sessionID,
			"player_id", req.PlayerID,
			"stat", req.Stat,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}

func (h *Handler) AnswerPlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnswerPlay")
	defer span.End()

	var req answerPlayRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.scorekeepingService.AnswerPlay(ctx, r.PathValue("sessionID"), req.Question, req.Value)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}

func (h *Handler) SubmitPlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPlay")
	defer span.End()

	sessionID := r.PathValue("sessionID")
	result, err := h.scorekeepingService.SubmitPlay(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "submit play failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submitResultToDTO(result))
}

func (h *Handler) DiscardPlay(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DiscardPlay")
	defer span.End()

	view, err := h.scorekeepingService.DiscardPlay(ctx, r.PathValue("sessionID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(view))
}
