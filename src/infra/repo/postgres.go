// Package repo implements the ports repository interfaces using pgx.
//
// Every operation that touches more than one table runs inside an explicit
// transaction on one pooled connection: begin, statements, commit, with a
// deferred rollback covering every error path. Single-statement operations
// go straight through the pool and rely on per-statement atomicity.
package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"boardshelf/src/core/domain"
	"boardshelf/src/core/ports"
)

var (
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
	_ ports.GameRepository     = (*GameRepository)(nil)
)

// PostgreSQL error codes the storage boundary translates into the domain
// taxonomy.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// translateErr maps a pgx statement failure onto the domain error taxonomy:
// unique, check and foreign-key violations become constraint errors, and
// anything else (lost connection, pool failure, cancellation) surfaces as a
// transient storage error wrapping the cause.
//
// pgx.ErrNoRows is deliberately not handled here; it is a per-query concern
// and each call site decides whether "no rows" means not-found.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.NewConstraintError("name already exists")
		case codeCheckViolation:
			return domain.NewConstraintError(pgErr.ConstraintName + " check failed")
		case codeForeignKeyViolation:
			return domain.NewConstraintError("referenced row does not exist")
		}
	}
	return domain.NewStorageError(err)
}
