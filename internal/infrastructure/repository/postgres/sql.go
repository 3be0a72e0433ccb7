package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/riskibarqy/esports-club/internal/usecase"
)

// SQLSTATE unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr, true
	}
	return nil, false
}

// writeError classifies a failed insert: unique violations become
// usecase.ErrDuplicateKey, everything else is wrapped as is.
func writeError(op string, err error) error {
	if pqErr, ok := isUniqueViolation(err); ok {
		return fmt.Errorf("%w: %s violates %s", usecase.ErrDuplicateKey, op, pqErr.Constraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
