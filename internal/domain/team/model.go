package team

import (
	"fmt"
	"strings"
)

// Team is a roster entered under one game. Names are unique per game only.
type Team struct {
	ID     int64
	GameID int64
	Name   string
}

func (t Team) Validate() error {
	if t.GameID <= 0 {
		return fmt.Errorf("team game id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
