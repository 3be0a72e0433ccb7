package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageForRole(t *testing.T) {
	cases := map[string]string{
		"awper":          "/counter-strike-player-at-lan-event.jpg",
		"AWPer":          "/counter-strike-player-at-lan-event.jpg",
		"In Game Leader": "/esports-team-captain.jpg",
		"entry_fragger":  "/cs2-competitive-player.jpg",
		"unknown_role":   DefaultImage,
		"":               DefaultImage,
	}
	for role, want := range cases {
		assert.Equal(t, want, ImageForRole(role), "role %q", role)
	}
}

func TestRoles_ExcludeDefaultAndKeepOrder(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, 22)
	assert.Equal(t, "Top", roles[0].Role)
	assert.Equal(t, "Lurker", roles[len(roles)-1].Role)
	for _, item := range roles {
		assert.NotEqual(t, DefaultRoleKey, RoleKey(item.Role))
		assert.True(t, IsKnownRole(item.Role))
	}
	assert.False(t, IsKnownRole("default"))

	roles[0].Role = "changed"
	assert.Equal(t, "Top", Roles()[0].Role)
}

func TestSlugs(t *testing.T) {
	assert.Equal(t, "league-of-legends", SlugForGame("League of Legends"))
	assert.Equal(t, "rocket-league-", SlugForGame("Rocket\tLeague "))
	assert.Equal(t, "league of legends", NameFromSlug("League-Of-Legends"))
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Competing in Valorant. Required roster size: 5 players.", Description("Valorant", 5))
}
