package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Game) (Game, error)
	GetByName(ctx context.Context, name string) (Game, bool, error)
	// GetByLowerName matches LOWER(name) against an already lowercased value.
	GetByLowerName(ctx context.Context, lowerName string) (Game, bool, error)
	List(ctx context.Context) ([]Game, error)
	DeleteByName(ctx context.Context, name string) (bool, error)
}
