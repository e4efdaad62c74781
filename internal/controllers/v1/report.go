package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/report"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsMonthlyReport)
	r.GET("/monthly", co.GetMonthlyReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/reports/monthly [options]
func OptionsMonthlyReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns total income, total expenses and the activity per category for one month.
// @Description	Months are calendar months in UTC. Transactions whose category does not exist anymore are listed as "uncategorized".
// @Tags			Reports
// @Produce		json
// @Security		BearerAuth
// @Success		200				{object}	report.Monthly
// @Failure		400				{object}	httputil.HTTPError
// @Failure		401				{object}	httputil.HTTPError
// @Failure		500				{object}	httputil.HTTPError
// @Param			month			query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Param			includeEmpty	query		bool	false	"Also list categories without transactions in the month"
// @Router			/reports/monthly [get]
func (co Controller) GetMonthlyReport(c *gin.Context) {
	// A month parameter that is present but empty is invalid, so
	// presence is checked instead of the value
	var token *string
	if month, ok := c.GetQuery("month"); ok {
		token = &month
	}

	var includeEmpty bool
	if value, ok := c.GetQuery("includeEmpty"); ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errIncludeEmptyInvalid)
			return
		}
		includeEmpty = b
	}

	monthly, err := co.reports.Monthly(c.Request.Context(), auth.UserID(c), token, includeEmpty)
	if err != nil {
		if errors.Is(err, report.ErrStorage) {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("monthly report")
			httputil.NewError(c, http.StatusInternalServerError, report.ErrStorage)
			return
		}

		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, monthly)
}
