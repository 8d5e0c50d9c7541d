package auth

import (
	"errors"

	autherrors "github.com/Parvathyammu/Payroll-Management/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// unique violation on users.email
		if pgErr.Code == "23505" {
			return autherrors.ErrEmailAlreadyRegistered
		}
	}

	return err
}
