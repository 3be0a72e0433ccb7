package applicant

import "context"

// Repository describes applicant persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Applicant) (Applicant, error)
}
