package scorebook

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/valyala/fasthttp"
)

type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamDTO
	if err := r.client.getJSON(ctx, "/Teams", &rows); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	id, ok := parseID(teamID)
	if !ok {
		return team.Team{}, false, nil
	}

	var row teamDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/Teams/%d", id), &row); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("fetch team %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

// PlayerRepository reads the league-wide /Players list. Roster order is player id order.
type PlayerRepository struct {
	client *Client
}

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	id, ok := parseID(teamID)
	if !ok {
		return nil, nil
	}

	var rows []playerDTO
	if err := r.client.getJSON(ctx, "/Players", &rows); err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}

	roster := make([]playerDTO, 0, 16)
	for _, row := range rows {
		if row.onTeam(id) {
			roster = append(roster, row)
		}
	}
	slices.SortStableFunc(roster, func(a, b playerDTO) int { return cmp.Compare(a.PlayerID, b.PlayerID) })

	out := make([]player.Player, 0, len(roster))
	for _, row := range roster {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	id, ok := parseID(playerID)
	if !ok {
		return player.Player{}, false, nil
	}

	var row playerDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/Players/%d", id), &row); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("fetch player %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

type GameRepository struct {
	client *Client
	teams  team.Repository
}

// NewGameRepository resolves team names through teams, which is usually the cached team repository.
func NewGameRepository(client *Client, teams team.Repository) *GameRepository {
	return &GameRepository{client: client, teams: teams}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	var rows []gameDTO
	if err := r.client.getJSON(ctx, "/Games", &rows); err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}

	names, err := r.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		g, err := row.toDomain()
		if err != nil {
			r.client.logger.WarnContext(ctx, "skip scorebook game with unreadable date", "game_id", row.GameID, "error", err)
			continue
		}
		out = append(out, withNames(g, names))
	}

	slices.SortStableFunc(out, func(a, b game.Game) int {
		if c := a.ScheduledAt.Compare(b.ScheduledAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	id, ok := parseID(gameID)
	if !ok {
		return game.Game{}, false, nil
	}

	var row gameDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/Games/%d", id), &row); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("fetch game %d: %w", id, err)
	}

	return r.resolve(ctx, row)
}

// Create ignores g.ID; the scorebook assigns game ids.
func (r *GameRepository) Create(ctx context.Context, g game.Game) (game.Game, error) {
	homeID, homeOK := parseID(g.HomeTeamID)
	awayID, awayOK := parseID(g.AwayTeamID)
	if !homeOK || !awayOK {
		return game.Game{}, fmt.Errorf("scorebook team ids must be numeric: home=%q away=%q", g.HomeTeamID, g.AwayTeamID)
	}

	body := gameCreateDTO{HomeID: homeID, AwayID: awayID, GameDate: formatGameDate(g.ScheduledAt)}
	var row gameDTO
	if err := r.client.sendJSON(ctx, fasthttp.MethodPost, "/Games", body, &row); err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	created, _, err := r.resolve(ctx, row)
	return created, err
}

func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	id, ok := parseID(gameID)
	if !ok {
		return fmt.Errorf("delete game: unknown game id %q", gameID)
	}
	if err := r.client.sendJSON(ctx, fasthttp.MethodDelete, fmt.Sprintf("/Games/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete game %d: %w", id, err)
	}
	return nil
}

func (r *GameRepository) resolve(ctx context.Context, row gameDTO) (game.Game, bool, error) {
	g, err := row.toDomain()
	if err != nil {
		return game.Game{}, false, err
	}
	names, err := r.teamNames(ctx)
	if err != nil {
		return game.Game{}, false, err
	}
	return withNames(g, names), true, nil
}

func (r *GameRepository) teamNames(ctx context.Context) (map[string]string, error) {
	teams, err := r.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve team names: %w", err)
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}

func withNames(g game.Game, names map[string]string) game.Game {
	g.HomeTeamName = names[g.HomeTeamID]
	g.AwayTeamName = names[g.AwayTeamID]
	return g
}

// StatRepository posts increments to /Stats, which upserts by (player, game).
type StatRepository struct {
	client *Client
}

func NewStatRepository(client *Client) *StatRepository {
	return &StatRepository{client: client}
}

func (r *StatRepository) Increment(ctx context.Context, delta stat.Line) error {
	gameID, gameOK := parseID(delta.GameID)
	playerID, playerOK := parseID(delta.PlayerID)
	if !gameOK || !playerOK {
		return fmt.Errorf("scorebook ids must be numeric: game=%q player=%q", delta.GameID, delta.PlayerID)
	}

	if err := r.client.sendJSON(ctx, fasthttp.MethodPost, "/Stats", statDTOFromLine(gameID, playerID, delta), nil); err != nil {
		return fmt.Errorf("post stat increment: %w", err)
	}
	return nil
}

func (r *StatRepository) ListByGame(ctx context.Context, gameID string) ([]stat.Line, error) {
	rows, err := r.rowsForGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	out := make([]stat.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StatRepository) DeleteByGame(ctx context.Context, gameID string) error {
	rows, err := r.rowsForGame(ctx, gameID)
	if err != nil {
		return err
	}

	for _, row := range rows {
		err := r.client.sendJSON(ctx, fasthttp.MethodDelete, fmt.Sprintf("/Stats/%d", row.StatID), nil, nil)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("delete stat %d: %w", row.StatID, err)
		}
	}
	return nil
}

func (r *StatRepository) rowsForGame(ctx context.Context, gameID string) ([]statDTO, error) {
	id, ok := parseID(gameID)
	if !ok {
		return nil, nil
	}

	var rows []statDTO
	if err := r.client.getJSON(ctx, "/Stats", &rows); err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	out := make([]statDTO, 0, len(rows))
	for _, row := range rows {
		if row.GameID == id {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b statDTO) int { return cmp.Compare(a.PlayerID, b.PlayerID) })
	return out, nil
}
