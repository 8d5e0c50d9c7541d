package attendance

import (
	"errors"

	attendanceerrors "github.com/Parvathyammu/Payroll-Management/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// foreign key violation: employee_id points nowhere
		if pgErr.Code == "23503" {
			return attendanceerrors.ErrEmployeeNotInSystem
		}
	}

	return err
}
