package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/esports-club/internal/domain/applicant"
)

// JoinRequest is the join form as submitted; Over18 is "yes" or "no".
type JoinRequest struct {
	FirstName string
	LastName  string
	Discord   string
	Phone     string
	Email     string
	Over18    string
}

type ApplicantService struct {
	repo applicant.Repository
}

func NewApplicantService(repo applicant.Repository) *ApplicantService {
	return &ApplicantService{repo: repo}
}

func (s *ApplicantService) Register(ctx context.Context, req JoinRequest) (applicant.Applicant, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ApplicantService.Register")
	defer span.End()

	if strings.TrimSpace(req.Over18) == "" {
		return applicant.Applicant{}, fmt.Errorf("%w: over18 is required", ErrInvalidInput)
	}

	item := applicant.Applicant{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		DiscordHandle: strings.TrimSpace(req.Discord),
		PhoneNumber:   strings.TrimSpace(req.Phone),
		IsOver18:      req.Over18 == "yes",
	}
	if err := item.Validate(); err != nil {
		return applicant.Applicant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return applicant.Applicant{}, fmt.Errorf("create applicant: %w", err)
	}
	return created, nil
}
