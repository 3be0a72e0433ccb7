package postgres

import (
	"database/sql"
	"time"
)

type gameTableModel struct {
	ID          int64  `db:"game_id"`
	Name        string `db:"name"`
	PlayerCount int    `db:"player_count"`
}

type teamTableModel struct {
	ID     int64  `db:"team_id"`
	GameID int64  `db:"game_id"`
	Name   string `db:"team_name"`
}

// discord_id is selected as text so snowflakes never pass through float64.
type playerTableModel struct {
	ID        int64         `db:"player_id"`
	DiscordID string        `db:"discord_id"`
	Name      string        `db:"name"`
	TeamID    sql.NullInt64 `db:"team_id"`
	Role      string        `db:"role"`
}

type applicantTableModel struct {
	ID            int64     `db:"application_id,auto"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	Email         string    `db:"email"`
	DiscordHandle string    `db:"discord_handle"`
	PhoneNumber   string    `db:"phone_number"`
	IsOver18      bool      `db:"is_over_18"`
	CreatedAt     time.Time `db:"created_at,auto"`
}
