package querybuilder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder_JoinContainsOrder(t *testing.T) {
	query, args, err := Select("t.team_id", "t.team_name").
		From("teams t").
		Join("games g", "t.game_id = g.game_id").
		Where(Contains("g.name", "val")).
		OrderBy("t.team_name").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT t.team_id, t.team_name FROM teams t JOIN games g ON t.game_id = g.game_id WHERE g.name ILIKE $1 ORDER BY t.team_name", query)
	assert.Equal(t, []any{"%val%"}, args)
}

func TestSelectBuilder_ExprAndLimit(t *testing.T) {
	query, args, err := Select("game_id", "name").
		From("games").
		Where(Expr("LOWER(name) = ?", "rocket league"), Eq("player_count", 3)).
		Limit(1).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT game_id, name FROM games WHERE LOWER(name) = $1 AND player_count = $2 LIMIT 1", query)
	assert.Equal(t, []any{"rocket league", 3}, args)
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	_, _, err := Select("1").ToSQL()
	assert.Error(t, err)
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("games").
		Columns("name", "player_count").
		Values("Valorant", 5).
		Suffix("RETURNING game_id").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO games (name, player_count) VALUES ($1, $2) RETURNING game_id", query)
	assert.Equal(t, []any{"Valorant", 5}, args)

	_, _, err = InsertInto("games").Columns("name", "player_count").Values("Valorant").ToSQL()
	assert.Error(t, err)
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("players").
		Where(Eq("discord_id", "1234")).
		Suffix("RETURNING player_id").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM players WHERE discord_id = $1 RETURNING player_id", query)
	assert.Equal(t, []any{"1234"}, args)

	_, _, err = DeleteFrom("players").ToSQL()
	assert.Error(t, err, "unconditional delete must be rejected")
}

func TestInsertModel_SkipsAutoColumns(t *testing.T) {
	type row struct {
		ID        int64     `db:"application_id,auto"`
		FirstName string    `db:"first_name"`
		IsOver18  bool      `db:"is_over_18"`
		CreatedAt time.Time `db:"created_at,auto"`
		ignored   string
	}

	query, args, err := InsertModel("applicants", row{ID: 9, FirstName: "Ada", IsOver18: true, ignored: "x"}, "RETURNING application_id, created_at")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO applicants (first_name, is_over_18) VALUES ($1, $2) RETURNING application_id, created_at", query)
	assert.Equal(t, []any{"Ada", true}, args)
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	_, _, err := InsertModel("applicants", 42, "")
	assert.Error(t, err)

	var nilRow *struct{ A string }
	_, _, err = InsertModel("applicants", nilRow, "")
	assert.Error(t, err)
}
