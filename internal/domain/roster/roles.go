package roster

import "strings"

const (
	DefaultRoleKey = "DEFAULT"
	DefaultImage   = "/placeholder.svg?height=400&width=400"
)

// RoleAsset pairs a selectable player role with its display image.
type RoleAsset struct {
	Role  string
	Image string
}

// roleAssets is the single role table used for command choices and roster images.
// Order is the order roles are offered in chat.
var roleAssets = []RoleAsset{
	{Role: "Top", Image: "/college-student-playing-league-of-legends-competit.jpg"},
	{Role: "Jungle", Image: "/competitive-gamer-with-headset.jpg"},
	{Role: "Mid", Image: "/esports-team-captain.jpg"},
	{Role: "ADC", Image: "/esports-player-in-team-jersey.jpg"},
	{Role: "Support", Image: "/college-esports-team-member.jpg"},

	{Role: "AWPer", Image: "/counter-strike-player-at-lan-event.jpg"},
	{Role: "Entry_Fragger", Image: "/cs2-competitive-player.jpg"},
	{Role: "Controller", Image: "/focused-esports-player-at-gaming-setup.jpg"},
	{Role: "Sentinel", Image: "/esports-player-with-gaming-mouse.jpg"},
	{Role: "Duelist", Image: "/focused-valorant-competitor.jpg"},

	{Role: "Captain", Image: "/esports-team-captain.jpg"},
	{Role: "Flex", Image: "/focused-esports-player-at-gaming-setup.jpg"},
	{Role: "Striker", Image: DefaultImage},
	{Role: "Midfielder", Image: DefaultImage},
	{Role: "Goalkeeper", Image: DefaultImage},
	{Role: "Tank", Image: DefaultImage},
	{Role: "Damage", Image: DefaultImage},
	{Role: "Heals", Image: DefaultImage},
	{Role: "Fragger", Image: DefaultImage},
	{Role: "Scout", Image: DefaultImage},
	{Role: "In_Game_Leader", Image: "/esports-team-captain.jpg"},
	{Role: "Lurker", Image: "/focused-cs2-player.jpg"},
}

var imageByRoleKey = func() map[string]string {
	out := make(map[string]string, len(roleAssets)+1)
	for _, item := range roleAssets {
		out[RoleKey(item.Role)] = item.Image
	}
	out[DefaultRoleKey] = DefaultImage
	return out
}()

// Roles lists the selectable roles, without the default entry.
func Roles() []RoleAsset {
	return append([]RoleAsset(nil), roleAssets...)
}

// RoleKey normalizes a role name: trimmed, uppercased, spaces and hyphens as underscores.
func RoleKey(role string) string {
	key := strings.ToUpper(strings.TrimSpace(role))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(key)
}

// ImageForRole never fails: unknown or empty roles get the default image.
func ImageForRole(role string) string {
	if image, ok := imageByRoleKey[RoleKey(role)]; ok {
		return image
	}
	return DefaultImage
}

// IsKnownRole reports whether role is one of the selectable roles.
func IsKnownRole(role string) bool {
	key := RoleKey(role)
	if key == DefaultRoleKey {
		return false
	}
	_, ok := imageByRoleKey[key]
	return ok
}
