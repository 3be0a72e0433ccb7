package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/esports-club/internal/domain/applicant"
	qb "github.com/riskibarqy/esports-club/internal/platform/querybuilder"
)

type ApplicantRepository struct {
	db *sqlx.DB
}

func NewApplicantRepository(db *sqlx.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

func (r *ApplicantRepository) Create(ctx context.Context, item applicant.Applicant) (applicant.Applicant, error) {
	row := applicantTableModel{
		FirstName:     item.FirstName,
		LastName:      item.LastName,
		Email:         item.Email,
		DiscordHandle: item.DiscordHandle,
		PhoneNumber:   item.PhoneNumber,
		IsOver18:      item.IsOver18,
	}
	query, args, err := qb.InsertModel("applicants", row, "RETURNING application_id, created_at")
	if err != nil {
		return applicant.Applicant{}, fmt.Errorf("build insert applicant query: %w", err)
	}

	var inserted struct {
		ID        int64     `db:"application_id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &inserted, query, args...); err != nil {
		return applicant.Applicant{}, writeError("insert applicant", err)
	}

	item.ID = inserted.ID
	item.CreatedAt = inserted.CreatedAt.UTC()
	return item, nil
}
