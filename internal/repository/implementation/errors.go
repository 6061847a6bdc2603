package implementation

import (
	"errors"

	"vendor-marketplace-be/internal/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// translateError turns driver errors the services care about into apperror kinds.
func translateError(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperror.Wrap(apperror.KindConflict, conflictMsg, err)
	}
	return err
}
