package roster

import (
	"fmt"
	"strings"
	"unicode"
)

const TeamLogo = "/placeholder.svg?height=200&width=200"

// TeamData is everything a team page renders for one game.
type TeamData struct {
	Game        string
	Logo        string
	Description string
	Players     []Player
	Slug        string
}

type Player struct {
	Name  string
	Role  string
	Image string
}

// GameSlug links a game to its page slug.
type GameSlug struct {
	Game string
	Slug string
}

func Description(gameName string, playerCount int) string {
	return fmt.Sprintf("Competing in %s. Required roster size: %d players.", gameName, playerCount)
}

// NameFromSlug turns "league-of-legends" into "league of legends" for a
// case-insensitive name match.
func NameFromSlug(slug string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(slug)), "-", " ")
}

// SlugForGame lowercases name and replaces every whitespace character with a hyphen.
func SlugForGame(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, strings.ToLower(name))
}
