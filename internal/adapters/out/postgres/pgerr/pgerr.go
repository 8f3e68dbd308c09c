// Package pgerr maps PostgreSQL driver failures, from both gorm/pgx and
// lib/pq, onto the errs taxonomy.
package pgerr

import (
	"database/sql/driver"
	"errors"
	"net"

	"tracking/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	uniqueViolation       = pq.ErrorCode("23505")
	connectionExceptionCl = pq.ErrorClass("08")
	adminShutdownCl       = pq.ErrorClass("57")
)

// Translate wraps connection-level failures into errs.UnavailableError and
// returns every other error unchanged.
func Translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if IsConnectionFailure(err) {
		return errs.NewUnavailableError(resource, err)
	}
	return err
}

// IsUniqueViolation reports a duplicate key. gorm reports it as
// gorm.ErrDuplicatedKey when opened with TranslateError.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// IsConnectionFailure reports errors that mean the database could not be
// reached, as opposed to a rejected statement.
func IsConnectionFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		class := pqErr.Code.Class()
		return class == connectionExceptionCl || class == adminShutdownCl
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
