package report

import (
	"errors"
	"fmt"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
)

// ErrStorage is returned when the report data could not be loaded.
var ErrStorage = errors.New("failed to load the data for the report")

// ValidationError is returned for request parameters that can not be
// used to build a report. Its message can be shown to clients as is.
type ValidationError struct {
	Err error
}

func (e ValidationError) Error() string {
	return e.Err.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// DataIntegrityError describes a transaction with a kind that is
// neither income nor expense.
type DataIntegrityError struct {
	TransactionID uuid.UUID
	Kind          models.Kind
}

func (e DataIntegrityError) Error() string {
	return fmt.Sprintf("transaction %s has unknown type %q", e.TransactionID, e.Kind)
}
