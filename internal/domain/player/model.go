package player

import (
	"fmt"
	"strconv"
	"strings"
)

// Player is a club member registered by their Discord account.
// TeamID is nil once the team has been deleted.
type Player struct {
	ID        int64
	DiscordID string
	Name      string
	TeamID    *int64
	Role      string
}

func (p Player) Validate() error {
	if err := ValidateDiscordID(p.DiscordID); err != nil {
		return err
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if len(p.Role) > 50 {
		return fmt.Errorf("player role must be at most 50 characters")
	}

	return nil
}

// ValidateDiscordID checks that id is a Discord snowflake in decimal form.
func ValidateDiscordID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("discord id is required")
	}
	if _, err := strconv.ParseUint(id, 10, 63); err != nil {
		return fmt.Errorf("discord id %q is not a valid snowflake", id)
	}

	return nil
}
