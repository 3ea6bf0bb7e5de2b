package application

import (
	"errors"

	applicationerrors "go-leave/internal/application/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError translates store failures during application creation.
// The employee existence check runs first, but a concurrent delete (or a
// seed race) can still trip the foreign key; the pg error code keeps the
// canonical message in that window.
func mapCreateError(err error, employeeID int) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" {
			return applicationerrors.EmployeeDoesNotExist(employeeID)
		}
	}

	return err
}
