package memory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/esports-club/internal/domain/game"
	"github.com/riskibarqy/esports-club/internal/domain/player"
	"github.com/riskibarqy/esports-club/internal/domain/team"
)

type seedPlayer struct {
	name string
	role string
}

type seedTeam struct {
	game        string
	playerCount int
	team        string
	players     []seedPlayer
}

var seedRoster = []seedTeam{
	{
		game: "League of Legends", playerCount: 5, team: "Lions Red",
		players: []seedPlayer{
			{`Alex "Striker" Chen`, "Top"},
			{`Jordan "Flash" Kim`, "Jungle"},
			{`Sam "Nexus" Rivera`, "Mid"},
			{`Taylor "Bolt" Johnson`, "ADC"},
			{`Morgan "Shield" Lee`, "Support"},
		},
	},
	{
		game: "Valorant", playerCount: 5, team: "Lions Gold",
		players: []seedPlayer{
			{`Casey "Phantom" Davis`, "Duelist"},
			{`Riley "Sage" Martinez`, "Controller"},
			{`Avery "Viper" Thompson`, "Sentinel"},
			{`Drew "Omen" Wilson`, "Flex"},
		},
	},
	{
		game: "CS2", playerCount: 5, team: "Lions Black",
		players: []seedPlayer{
			{`Blake "Ace" Foster`, "AWPer"},
			{`Skylar "Clutch" Hayes`, "Entry_Fragger"},
			{`Reese "Flash" Cooper`, "Lurker"},
			{`Peyton "IGL" Morgan`, "In_Game_Leader"},
		},
	},
	{
		game: "Rocket League", playerCount: 3, team: "Lions White",
		players: []seedPlayer{
			{`Kai "Boost" Sullivan`, "Striker"},
			{`Sage "Aerial" Park`, "Midfielder"},
			{`River "Wall" Bennett`, "Goalkeeper"},
		},
	},
}

// SeedRoster fills an empty database with the four-game club roster that
// package tests assert against.
func SeedRoster(ctx context.Context, db *Database) error {
	games := NewGameRepository(db)
	teams := NewTeamRepository(db)
	players := NewPlayerRepository(db)

	discordID := uint64(100000000000000000)
	for _, item := range seedRoster {
		g, exists, err := games.GetByName(ctx, item.game)
		if err != nil {
			return err
		}
		if !exists {
			g, err = games.Create(ctx, game.Game{Name: item.game, PlayerCount: item.playerCount})
			if err != nil {
				return fmt.Errorf("seed game %s: %w", item.game, err)
			}
		}

		t, err := teams.Create(ctx, team.Team{GameID: g.ID, Name: item.team})
		if err != nil {
			return fmt.Errorf("seed team %s/%s: %w", item.game, item.team, err)
		}

		for _, p := range item.players {
			discordID++
			_, err := players.Create(ctx, player.Player{
				DiscordID: strconv.FormatUint(discordID, 10),
				Name:      p.name,
				TeamID:    &t.ID,
				Role:      p.role,
			})
			if err != nil {
				return fmt.Errorf("seed player %s: %w", p.name, err)
			}
		}
	}
	return nil
}
