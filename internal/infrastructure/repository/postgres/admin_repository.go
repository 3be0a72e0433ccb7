package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/esports-club/internal/platform/querybuilder"
)

type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Exists(ctx context.Context, discordID string) (bool, error) {
	query, args, err := qb.Select("discord_id::text").From("admins").
		Where(qb.Eq("discord_id", discordID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select admin query: %w", err)
	}

	var found string
	if err := r.db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select admin: %w", err)
	}
	return true, nil
}
