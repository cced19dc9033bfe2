package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SebasDosman/vortex-bird-test/repositories"
	"github.com/lib/pq"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")

	usersPhoneKey = "users_phone_key"
	usersEmailKey = "users_email_key"

	purchasesUserFKey = "purchases_user_id_fkey"
	detailsFilmFKey   = "purchase_details_film_id_fkey"
)

// translateError maps driver errors onto the repository sentinels, keeping
// the original error in the chain.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repositories.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			switch pqErr.Constraint {
			case usersPhoneKey:
				return fmt.Errorf("%s: %w", op, repositories.ErrDuplicatePhone)
			case usersEmailKey:
				return fmt.Errorf("%s: %w", op, repositories.ErrDuplicateEmail)
			}
		case foreignKeyViolation:
			switch pqErr.Constraint {
			case purchasesUserFKey:
				return fmt.Errorf("%s: %w", op, repositories.ErrUserReference)
			case detailsFilmFKey:
				return fmt.Errorf("%s: %w", op, repositories.ErrFilmReference)
			}
			return fmt.Errorf("%s: %w", op, repositories.ErrInvalidReference)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// checkAffected returns ErrNotFound when a write touched no rows
func checkAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, repositories.ErrNotFound)
	}
	return nil
}
