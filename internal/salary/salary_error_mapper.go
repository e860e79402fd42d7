package salary

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-salary/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}

	if _, ok := apperror.As(err); ok {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "request cancelled before "+op+" finished", http.StatusServiceUnavailable)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(err, apperror.CodeDataAccess, pgErr.Message, http.StatusInternalServerError).
			WithDetails(map[string]string{
				"operation":  op,
				"sql_state":  pgErr.Code,
				"constraint": pgErr.ConstraintName,
				"table":      pgErr.TableName,
			})
	}

	return fmt.Errorf("%s: %w", op, err)
}
