package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) (Team, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	// ListByGameNameLike returns teams of every game whose name contains fragment,
	// case-insensitively, ordered by team name.
	ListByGameNameLike(ctx context.Context, fragment string) ([]Team, error)
}
