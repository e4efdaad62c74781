package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/internal/report"
)

// clientErrors are caused by the request and are answered with 400.
var clientErrors = []error{
	models.ErrCategoryNameNotUnique,
	models.ErrCategoryNameEmpty,
	models.ErrUserNotUnique,
	models.ErrInvalidKind,
	models.ErrAmountNegative,
	models.ErrInvalidPeriod,
	models.ErrBudgetEndBeforeStart,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidUUID,
}

// status returns the HTTP status for an error. Errors that are not known
// to be caused by the request are server errors.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrIDTokenInvalid), errors.Is(err, auth.ErrNoIDToken), errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.As(err, &report.ValidationError{}):
		return http.StatusBadRequest
	}

	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

var (
	errCodeMissing         = errors.New("authorization code is required")
	errTransactionFilter   = errors.New("the type filter must be either 'income' or 'expense'")
	errDateRange           = errors.New("fromDate must not be after untilDate")
	errIncludeEmptyInvalid = errors.New("includeEmpty must be either 'true' or 'false'")
)
