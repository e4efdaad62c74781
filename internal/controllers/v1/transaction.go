package v1

import (
	"net/http"
	"time"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	ez_uuid "github.com/fintrack-api/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionCreate struct {
	CategoryID uuid.UUID        `json:"categoryId" binding:"required" example:"5bd9c7c0-d1f8-4b5c-b4a6-ad0d9a5f1cbd"` // ID of the category
	Amount     *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"14.03"`               // The amount, never negative. The type decides the direction.
	Type       models.Kind      `json:"type" binding:"required,oneof=income expense" example:"expense"`               // Type of the transaction
	Date       time.Time        `json:"date" example:"2025-01-13T18:43:00Z"`                                          // Date of the transaction. Defaults to now
	Note       string           `json:"note" example:"Lunch"`                                                         // A note
}

// TransactionEditable are the fields that can be updated. Only fields
// that are present in the request body are changed.
type TransactionEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"5bd9c7c0-d1f8-4b5c-b4a6-ad0d9a5f1cbd"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" example:"14.03"`
	Type       models.Kind     `json:"type" example:"expense"`
	Date       time.Time       `json:"date" example:"2025-01-13T18:43:00Z"`
	Note       string          `json:"note" example:"Lunch"`
}

type TransactionQueryFilter struct {
	Type       models.Kind  `form:"type"`                               // Type of the transaction
	CategoryID ez_uuid.UUID `form:"category"`                           // ID of the category
	FromDate   time.Time    `form:"fromDate" time_format:"2006-01-02"`  // From this date. Time is ignored.
	UntilDate  time.Time    `form:"untilDate" time_format:"2006-01-02"` // Until this date, inclusive. Time is ignored.
	Note       string       `form:"note"`                               // Glob pattern the note must match, e.g. "*lunch*"
	Offset     uint         `form:"offset"`                             // The offset of the first Transaction returned. Defaults to 0.
	Limit      int          `form:"limit"`                              // Maximum number of transactions to return. Defaults to 50.
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PUT("/:id", UpdateTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionCreate	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var data TransactionCreate
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	userID := auth.UserID(c)
	if _, err := findCategory(userID, data.CategoryID); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	transaction := models.Transaction{
		UserID:     userID,
		CategoryID: data.CategoryID,
		Amount:     *data.Amount,
		Type:       data.Type,
		Date:       data.Date,
		Note:       data.Note,
	}

	if err := models.DB.Create(&transaction).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Get transactions
// @Description	Returns the transactions of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Security		BearerAuth
// @Success		200			{array}		models.Transaction
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			type		query		string	false	"Filter by type"	Enums(income, expense)
// @Param			category	query		string	false	"Filter by category ID"
// @Param			fromDate	query		string	false	"From this date (YYYY-MM-DD)"
// @Param			untilDate	query		string	false	"Until this date, inclusive (YYYY-MM-DD)"
// @Param			note		query		string	false	"Glob pattern for the note"
// @Param			offset		query		uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of Transactions to return. Defaults to 50."
// @Router			/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Where("user_id = ?", auth.UserID(c)).
		Order("date DESC, created_at DESC")

	if slices.Contains(setFields, "Type") {
		if !filter.Type.Valid() {
			httputil.NewError(c, http.StatusBadRequest, errTransactionFilter)
			return
		}
		q = q.Where("type = ?", filter.Type)
	}

	if filter.CategoryID != ez_uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID.UUID)
	}

	if !filter.FromDate.IsZero() && !filter.UntilDate.IsZero() && filter.FromDate.After(filter.UntilDate) {
		httputil.NewError(c, http.StatusBadRequest, errDateRange)
		return
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date < ?", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// Notes are matched against the glob pattern after loading, so
	// pagination is applied here, too
	if slices.Contains(setFields, "Note") {
		matching := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if glob.Glob(filter.Note, t.Note) {
				matching = append(matching, t)
			}
		}
		transactions = matching
	}

	limit := listLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	c.JSON(http.StatusOK, paginate(transactions, filter.Offset, limit))
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	models.Transaction
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions/{id} [patch]
// @Router			/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var data TransactionEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	if slices.Contains(updateFields, "CategoryID") {
		if _, err := findCategory(transaction.UserID, data.CategoryID); err != nil {
			httputil.NewError(c, status(err), err)
			return
		}
		transaction.CategoryID = data.CategoryID
	}
	if slices.Contains(updateFields, "Amount") {
		transaction.Amount = data.Amount
	}
	if slices.Contains(updateFields, "Type") {
		transaction.Type = data.Type
	}
	if slices.Contains(updateFields, "Date") {
		transaction.Date = data.Date
	}
	if slices.Contains(updateFields, "Note") {
		transaction.Note = data.Note
	}

	if err := models.DB.Save(&transaction).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Security		BearerAuth
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, ok := getTransaction(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

func getTransaction(c *gin.Context) (models.Transaction, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return models.Transaction{}, false
	}

	var transaction models.Transaction
	err := models.DB.Where("id = ? AND user_id = ?", uri.ID.UUID, auth.UserID(c)).First(&transaction).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Transaction{}, false
	}

	return transaction, true
}
