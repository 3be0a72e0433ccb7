package admin

import "context"

// Repository answers membership in the bot administrator allow-list.
type Repository interface {
	Exists(ctx context.Context, discordID string) (bool, error)
}
