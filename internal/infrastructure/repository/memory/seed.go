package memory

import (
	"time"

	"github.com/riskibarqy/courtside/internal/domain/game"
	"github.com/riskibarqy/courtside/internal/domain/player"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

const (
	TeamIDHarbor = "team-harbor"
	TeamIDRidge  = "team-ridge"
	TeamIDMetro  = "team-metro"
	TeamIDCanyon = "team-canyon"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDHarbor, Name: "Harbor Hawks", City: "Portside"},
		{ID: TeamIDRidge, Name: "Ridge Runners", City: "Highmoor"},
		{ID: TeamIDMetro, Name: "Metro Comets", City: "Centerville"},
		{ID: TeamIDCanyon, Name: "Canyon Coyotes", City: "Red Rock"},
	}
}

// SeedPlayers returns eight players per team, starters first.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "hh-01", TeamID: TeamIDHarbor, FirstName: "Marcus", LastName: "Hale", JerseyNumber: 3, Position: "PG"},
		{ID: "hh-02", TeamID: TeamIDHarbor, FirstName: "Devin", LastName: "Okafor", JerseyNumber: 11, Position: "SG"},
		{ID: "hh-03", TeamID: TeamIDHarbor, FirstName: "Luis", LastName: "Arriaga", JerseyNumber: 23, Position: "SF"},
		{ID: "hh-04", TeamID: TeamIDHarbor, FirstName: "Theo", LastName: "Brandt", JerseyNumber: 34, Position: "PF"},
		{ID: "hh-05", TeamID: TeamIDHarbor, FirstName: "Isaiah", LastName: "Mbeki", JerseyNumber: 50, Position: "C"},
		{ID: "hh-06", TeamID: TeamIDHarbor, FirstName: "Caleb", LastName: "Strand", JerseyNumber: 7, Position: "G"},
		{ID: "hh-07", TeamID: TeamIDHarbor, FirstName: "Ramon", LastName: "Duarte", JerseyNumber: 15, Position: "F"},
		{ID: "hh-08", TeamID: TeamIDHarbor, FirstName: "Nate", LastName: "Whitlock", JerseyNumber: 44, Position: "C"},

		{ID: "rr-01", TeamID: TeamIDRidge, FirstName: "Andre", LastName: "Fulton", JerseyNumber: 1, Position: "PG"},
		{ID: "rr-02", TeamID: TeamIDRidge, FirstName: "Jonah", LastName: "Pike", JerseyNumber: 10, Position: "SG"},
		{ID: "rr-03", TeamID: TeamIDRidge, FirstName: "Emeka", LastName: "Obi", JerseyNumber: 21, Position: "SF"},
		{ID: "rr-04", TeamID: TeamIDRidge, FirstName: "Grant", LastName: "Sorensen", JerseyNumber: 32, Position: "PF"},
		{ID: "rr-05", TeamID: TeamIDRidge, FirstName: "Victor", LastName: "Lind", JerseyNumber: 55, Position: "C"},
		{ID: "rr-06", TeamID: TeamIDRidge, FirstName: "Kofi", LastName: "Asante", JerseyNumber: 4, Position: "G"},
		{ID: "rr-07", TeamID: TeamIDRidge, FirstName: "Miles", LastName: "Carver", JerseyNumber: 13, Position: "F"},
		{ID: "rr-08", TeamID: TeamIDRidge, FirstName: "Omar", LastName: "Haddad", JerseyNumber: 42, Position: "C"},

		{ID: "mc-01", TeamID: TeamIDMetro, FirstName: "Jalen", LastName: "Price", JerseyNumber: 2, Position: "PG"},
		{ID: "mc-02", TeamID: TeamIDMetro, FirstName: "Tyrese", LastName: "Vance", JerseyNumber: 12, Position: "SG"},
		{ID: "mc-03", TeamID: TeamIDMetro, FirstName: "Niko", LastName: "Petrovic", JerseyNumber: 24, Position: "SF"},
		{ID: "mc-04", TeamID: TeamIDMetro, FirstName: "Darius", LastName: "Cole", JerseyNumber: 30, Position: "PF"},
		{ID: "mc-05", TeamID: TeamIDMetro, FirstName: "Samuel", LastName: "Adeyemi", JerseyNumber: 41, Position: "C"},
		{ID: "mc-06", TeamID: TeamIDMetro, FirstName: "Eli", LastName: "Brooks", JerseyNumber: 5, Position: "G"},
		{ID: "mc-07", TeamID: TeamIDMetro, FirstName: "Aaron", LastName: "Quist", JerseyNumber: 17, Position: "F"},
		{ID: "mc-08", TeamID: TeamIDMetro, FirstName: "Ivan", LastName: "Kovac", JerseyNumber: 52, Position: "C"},

		{ID: "cc-01", TeamID: TeamIDCanyon, FirstName: "Reggie", LastName: "Moss", JerseyNumber: 0, Position: "PG"},
		{ID: "cc-02", TeamID: TeamIDCanyon, FirstName: "Hugo", LastName: "Serrano", JerseyNumber: 9, Position: "SG"},
		{ID: "cc-03", TeamID: TeamIDCanyon, FirstName: "Tariq", LastName: "Nolan", JerseyNumber: 22, Position: "SF"},
		{ID: "cc-04", TeamID: TeamIDCanyon, FirstName: "Felix", LastName: "Engel", JerseyNumber: 33, Position: "PF"},
		{ID: "cc-05", TeamID: TeamIDCanyon, FirstName: "Zion", LastName: "Ward", JerseyNumber: 45, Position: "C"},
		{ID: "cc-06", TeamID: TeamIDCanyon, FirstName: "Paolo", LastName: "Ricci", JerseyNumber: 6, Position: "G"},
		{ID: "cc-07", TeamID: TeamIDCanyon, FirstName: "Bram", LastName: "de Vries", JerseyNumber: 18, Position: "F"},
		{ID: "cc-08", TeamID: TeamIDCanyon, FirstName: "Kwame", LastName: "Boateng", JerseyNumber: 40, Position: "C"},
	}
}

func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:          "game-opener",
			HomeTeamID:  TeamIDHarbor,
			AwayTeamID:  TeamIDRidge,
			ScheduledAt: time.Date(2026, 11, 6, 19, 30, 0, 0, time.UTC),
		},
		{
			ID:          "game-derby",
			HomeTeamID:  TeamIDMetro,
			AwayTeamID:  TeamIDCanyon,
			ScheduledAt: time.Date(2026, 11, 7, 18, 0, 0, 0, time.UTC),
		},
	}
}
