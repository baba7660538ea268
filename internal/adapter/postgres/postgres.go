package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres error code for a unique-constraint hit.
const uniqueViolation = "23505"

// isUniqueViolation is the single place where driver errors are inspected
// for uniqueness conflicts. The rest of the repository code only deals with
// the boolean signal.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
