package memory

import (
	"context"
	"time"

	"github.com/riskibarqy/esports-club/internal/domain/applicant"
)

type ApplicantRepository struct {
	db  *Database
	now func() time.Time
}

func NewApplicantRepository(db *Database) *ApplicantRepository {
	return &ApplicantRepository{db: db, now: time.Now}
}

func (r *ApplicantRepository) Create(_ context.Context, item applicant.Applicant) (applicant.Applicant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.applicants {
		if existing.Email == item.Email {
			return applicant.Applicant{}, duplicate("applicants_email_key", item.Email)
		}
	}

	item.ID = r.db.nextID()
	item.CreatedAt = r.now().UTC()
	r.db.applicants[item.ID] = item
	return item, nil
}
