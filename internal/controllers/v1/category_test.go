package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-api/backend/internal/controllers/v1"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/test"
	"github.com/google/uuid"
)

const categoriesURL = "http://example.com/api/categories"

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, categoriesURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, categoriesURL+"/"+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	user := suite.createTestUser()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Valid", v1.CategoryCreate{Name: "Food", Type: models.KindExpense, Color: "#ff7f50"}, http.StatusCreated},
		{"Income", v1.CategoryCreate{Name: "Salary", Type: models.KindIncome}, http.StatusCreated},
		{"Duplicate name", v1.CategoryCreate{Name: "Food", Type: models.KindExpense}, http.StatusBadRequest},
		{"No name", v1.CategoryCreate{Type: models.KindExpense}, http.StatusBadRequest},
		{"Invalid type", `{ "name": "Rent", "type": "transfer" }`, http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, categoriesURL, tt.body, test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			if tt.status != http.StatusCreated {
				suite.Assert().NotEmpty(test.DecodeError(suite.T(), &r))
				return
			}

			var category models.Category
			test.DecodeResponse(suite.T(), &r, &category)
			suite.Assert().Equal(user.ID, category.UserID)
			suite.Assert().NotEqual(uuid.Nil, category.ID)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetList() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestCategory(user, "Salary", models.KindIncome)
	suite.createTestCategory(user, "Food", models.KindExpense)
	suite.createTestCategory(user, "Rent", models.KindExpense)
	suite.createTestCategory(other, "Hidden", models.KindExpense)

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All, sorted by name", "", []string{"Food", "Rent", "Salary"}},
		{"Expenses", "?type=expense", []string{"Food", "Rent"}},
		{"Income", "?type=income", []string{"Salary"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, categoriesURL+tt.query, "", test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var categories []models.Category
			test.DecodeResponse(suite.T(), &r, &categories)

			names := make([]string, 0, len(categories))
			for _, c := range categories {
				names = append(names, c.Name)
			}
			suite.Assert().Equal(tt.names, names)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, categoriesURL+"?type=transfer", "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesGetListEmpty() {
	user := suite.createTestUser()

	r := test.Request(suite.T(), http.MethodGet, categoriesURL, "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user, "Food", models.KindExpense)
	foreign := suite.createTestCategory(other, "Food", models.KindExpense)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Own", category.ID.String(), http.StatusOK},
		{"Other user", foreign.ID.String(), http.StatusNotFound},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, categoriesURL+"/"+tt.id, "", test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			if tt.status == http.StatusOK {
				var c models.Category
				test.DecodeResponse(suite.T(), &r, &c)
				suite.Assert().Equal(category.ID, c.ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user, "Food", models.KindExpense)
	suite.createTestCategory(user, "Rent", models.KindExpense)

	url := categoriesURL + "/" + category.ID.String()

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"name": "Groceries"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Category
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Groceries", updated.Name)
	suite.Assert().Equal(models.KindExpense, updated.Type, "Fields not in the body must not change")
	suite.Assert().Equal("#00ff00", updated.Color)

	// Updating to an existing name fails
	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"name": "Rent"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrCategoryNameNotUnique.Error(), test.DecodeError(suite.T(), &r))

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"type": "transfer"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, url, `{ "name": 2 }`, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, url, "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, categoriesURL+"/"+uuid.NewString(), map[string]any{"name": "X"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesUpdatePut() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user, "Food", models.KindExpense)

	url := categoriesURL + "/" + category.ID.String()

	r := test.Request(suite.T(), http.MethodPut, url, map[string]any{"name": "Groceries", "color": "#ff7f50"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Category
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Groceries", updated.Name)
	suite.Assert().Equal("#ff7f50", updated.Color)
	suite.Assert().Equal(models.KindExpense, updated.Type)

	r = test.Request(suite.T(), http.MethodPut, url, map[string]any{"name": "Groceries"}, test.Bearer(suite.T(), other))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPut, url, "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	category := suite.createTestCategory(user, "Food", models.KindExpense)
	foreign := suite.createTestCategory(other, "Food", models.KindExpense)

	r := test.Request(suite.T(), http.MethodDelete, categoriesURL+"/"+foreign.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, categoriesURL+"/"+category.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Category deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodGet, categoriesURL+"/"+category.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	user := suite.createTestUser()
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, categoriesURL, "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), &r))
}

func (suite *TestSuiteStandard) TestCategoriesUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, categoriesURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodGet, categoriesURL, "", map[string]string{"Authorization": "Bearer nonsense"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
