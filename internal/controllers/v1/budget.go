package v1

import (
	"net/http"
	"time"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type BudgetCreate struct {
	CategoryID uuid.UUID        `json:"categoryId" binding:"required" example:"5bd9c7c0-d1f8-4b5c-b4a6-ad0d9a5f1cbd"` // ID of the category the budget is for
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"300"`                 // Planned amount per period
	Period     models.Period    `json:"period" binding:"omitempty,oneof=monthly yearly" example:"monthly"`            // Defaults to monthly
	StartDate  time.Time        `json:"startDate" example:"2025-01-01T00:00:00Z"`                                     // Defaults to now
	EndDate    *time.Time       `json:"endDate" example:"2025-12-31T00:00:00Z"`                                       // Open ended if not set
}

// BudgetEditable are the fields that can be updated. Only fields
// that are present in the request body are changed.
type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"5bd9c7c0-d1f8-4b5c-b4a6-ad0d9a5f1cbd"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" example:"300"`
	Period     models.Period   `json:"period" example:"yearly"`
	StartDate  time.Time       `json:"startDate" example:"2025-01-01T00:00:00Z"`
	EndDate    *time.Time      `json:"endDate" example:"2025-12-31T00:00:00Z"`
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PUT("/:id", UpdateBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget for a category of the authenticated user
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	models.Budget
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetCreate	true	"Budget"
// @Router			/budgets [post]
func CreateBudget(c *gin.Context) {
	var data BudgetCreate
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	userID := auth.UserID(c)
	if _, err := findCategory(userID, data.CategoryID); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	budget := models.Budget{
		UserID:     userID,
		CategoryID: data.CategoryID,
		Amount:     *data.Amount,
		Period:     data.Period,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
	}

	if err := models.DB.Create(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary		Get budgets
// @Description	Returns all budgets of the authenticated user
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Budget
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/budgets [get]
func GetBudgets(c *gin.Context) {
	budgets := make([]models.Budget, 0)

	err := models.DB.
		Where("user_id = ?", auth.UserID(c)).
		Order("start_date ASC, created_at ASC").
		Find(&budgets).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	models.Budget
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Update budget
// @Description	Updates a budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	models.Budget
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets/{id} [patch]
// @Router			/budgets/{id} [put]
func UpdateBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var data BudgetEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	if slices.Contains(updateFields, "CategoryID") {
		if _, err := findCategory(budget.UserID, data.CategoryID); err != nil {
			httputil.NewError(c, status(err), err)
			return
		}
		budget.CategoryID = data.CategoryID
	}
	if slices.Contains(updateFields, "Amount") {
		budget.Amount = data.Amount
	}
	if slices.Contains(updateFields, "Period") {
		budget.Period = data.Period
	}
	if slices.Contains(updateFields, "StartDate") {
		budget.StartDate = data.StartDate
	}
	if slices.Contains(updateFields, "EndDate") {
		budget.EndDate = data.EndDate
	}

	if err := models.DB.Save(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Security		BearerAuth
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	budget, ok := getBudget(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}

func getBudget(c *gin.Context) (models.Budget, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return models.Budget{}, false
	}

	var budget models.Budget
	err := models.DB.Where("id = ? AND user_id = ?", uri.ID.UUID, auth.UserID(c)).First(&budget).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Budget{}, false
	}

	return budget, true
}
