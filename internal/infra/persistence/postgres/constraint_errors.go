package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tuition/internal/errors"
)

// SQLSTATE codes raised by the constraints in Migrate.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, sqlStateForeignKeyViolation)
}

// hasSQLState reports whether the driver error carries code, for errors the
// dialector did not translate.
func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}
