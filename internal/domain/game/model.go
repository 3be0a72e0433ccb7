package game

import (
	"fmt"
	"strings"
)

// Game is a title the club fields teams in.
type Game struct {
	ID          int64
	Name        string
	PlayerCount int
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("game name is required")
	}
	if g.PlayerCount <= 0 {
		return fmt.Errorf("player count must be > 0")
	}

	return nil
}
