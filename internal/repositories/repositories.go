// Package repositories implements validated persistence over the
// SQLite store: tank profiles, per-tank custom safe ranges, and water
// test records.
//
// Every operation validates its arguments before any mutating statement
// is issued, and every write runs inside a transaction that rolls back
// in full on constraint violations. SQLite errors never leak raw:
// constraint violations are re-classified into the apperrors taxonomy
// at this boundary.
package repositories

import (
	"errors"
	"fmt"
	"math"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/aqualog/aqualog/internal/apperrors"
)

func validateTankID(tankID int64) error {
	if tankID < 1 {
		return fmt.Errorf("%w: tank id must be a positive integer, got %d", apperrors.ErrInvalidInput, tankID)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// classifyConstraint translates a SQLite failure into the application
// error taxonomy. onCheck is the error class a CHECK violation maps to
// in the caller's context (ErrInvalidRange for range bounds,
// ErrInvalidInput for tank and test columns). A foreign-key violation
// always means the referenced tank does not exist. Anything else,
// including a uniqueness violation not explained by prior validation,
// is a storage error.
func classifyConstraint(err error, onCheck error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: referenced tank does not exist", apperrors.ErrInvalidInput)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%w: %v", onCheck, err)
		}
	}
	return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
}
