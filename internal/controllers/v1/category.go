package v1

import (
	"net/http"

	"github.com/fintrack-api/backend/internal/auth"
	"github.com/fintrack-api/backend/internal/httputil"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

type CategoryCreate struct {
	Name  string      `json:"name" binding:"required" example:"Food"`                         // Name of the category, unique per user
	Type  models.Kind `json:"type" binding:"required,oneof=income expense" example:"expense"` // Type of the category
	Color string      `json:"color" example:"#ff7f50"`                                        // Color for display
	Icon  string      `json:"icon" example:"utensils"`                                        // Icon for display
}

// CategoryEditable are the fields that can be updated. Only fields
// that are present in the request body are changed.
type CategoryEditable struct {
	Name  string      `json:"name" example:"Groceries"`
	Type  models.Kind `json:"type" example:"expense"`
	Color string      `json:"color" example:"#ff7f50"`
	Icon  string      `json:"icon" example:"basket"`
}

type CategoryQueryFilter struct {
	Type models.Kind `form:"type"` // Only return categories of this type
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PUT("/:id", UpdateCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	URIID	true	"ID formatted as string"
// @Router			/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/categories [post]
func CreateCategory(c *gin.Context) {
	var data CategoryCreate
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	category := models.Category{
		UserID: auth.UserID(c),
		Name:   data.Name,
		Type:   data.Type,
		Color:  data.Color,
		Icon:   data.Icon,
	}

	if err := models.DB.Create(&category).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary		Get categories
// @Description	Returns all categories of the authenticated user, ordered by name
// @Tags			Categories
// @Produce		json
// @Security		BearerAuth
// @Success		200		{array}		models.Category
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			type	query		string	false	"Filter by type"	Enums(income, expense)
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Where("user_id = ?", auth.UserID(c)).Order("name ASC")

	if slices.Contains(httputil.GetURLFields(c.Request.URL, filter), "Type") {
		if !filter.Type.Valid() {
			httputil.NewError(c, http.StatusBadRequest, models.ErrInvalidKind)
			return
		}
		q = q.Where("type = ?", filter.Type)
	}

	categories := make([]models.Category, 0)
	if err := q.Find(&categories).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	models.Category
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories/{id} [patch]
// @Router			/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var data CategoryEditable
	if err := httputil.BindData(c, &data); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		category.Name = data.Name
	}
	if slices.Contains(updateFields, "Type") {
		category.Type = data.Type
	}
	if slices.Contains(updateFields, "Color") {
		category.Color = data.Color
	}
	if slices.Contains(updateFields, "Icon") {
		category.Icon = data.Icon
	}

	if err := models.DB.Save(&category).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions of the category are kept and reported as uncategorized.
// @Tags			Categories
// @Security		BearerAuth
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	category, ok := getCategory(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&category).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// getCategory returns the category from the URI if it belongs to the
// authenticated user. If it does not, an error response is written.
func getCategory(c *gin.Context) (models.Category, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return models.Category{}, false
	}

	category, err := findCategory(auth.UserID(c), uri.ID.UUID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Category{}, false
	}

	return category, true
}

func findCategory(userID, id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := models.DB.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	return category, err
}
