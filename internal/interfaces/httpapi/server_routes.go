package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("POST /v1/games", handler.CreateGame)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("DELETE /v1/games/{gameID}", handler.DeleteGame)
	mux.HandleFunc("POST /v1/games/{gameID}/stats", handler.RecordStatEvent)
	mux.HandleFunc("GET /v1/games/{gameID}/boxscore", handler.GetBoxScore)
	mux.HandleFunc("GET /v1/scores", handler.ListScores)
}

func registerScorekeepingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games/{gameID}/sessions", handler.OpenSession)
	mux.HandleFunc("GET /v1/sessions/{sessionID}", handler.GetSession)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}", handler.CloseSession)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/play", handler.BeginPlay)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}/play", handler.DiscardPlay)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/play/answers", handler.AnswerPlay)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/play/submit", handler.SubmitPlay)
}
