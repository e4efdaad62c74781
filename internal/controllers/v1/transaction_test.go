package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/fintrack-api/backend/internal/controllers/v1"
	"github.com/fintrack-api/backend/internal/models"
	"github.com/fintrack-api/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionsURL = "http://example.com/api/transactions"

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	foreign := suite.createTestCategory(other, "Food", models.KindExpense)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Valid", map[string]any{"categoryId": food.ID, "amount": 14.03, "type": "expense", "date": "2025-01-13T18:43:00Z", "note": "Lunch"}, http.StatusCreated},
		{"Amount zero", map[string]any{"categoryId": food.ID, "amount": 0, "type": "expense"}, http.StatusCreated},
		{"No amount", map[string]any{"categoryId": food.ID, "type": "expense"}, http.StatusBadRequest},
		{"Negative amount", map[string]any{"categoryId": food.ID, "amount": -3, "type": "expense"}, http.StatusBadRequest},
		{"Invalid type", map[string]any{"categoryId": food.ID, "amount": 3, "type": "transfer"}, http.StatusBadRequest},
		{"No category", map[string]any{"amount": 3, "type": "expense"}, http.StatusBadRequest},
		{"Category of other user", map[string]any{"categoryId": foreign.ID, "amount": 3, "type": "expense"}, http.StatusNotFound},
		{"Category does not exist", map[string]any{"categoryId": uuid.New(), "amount": 3, "type": "expense"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, transactionsURL, tt.body, test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, tt.status)

			if tt.status != http.StatusCreated {
				suite.Assert().NotEmpty(test.DecodeError(suite.T(), &r))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultDate() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)

	before := time.Now().UTC()
	r := test.Request(suite.T(), http.MethodPost, transactionsURL, map[string]any{"categoryId": food.ID, "amount": "12.5", "type": "expense"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var transaction models.Transaction
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Assert().False(transaction.Date.Before(before.Add(-time.Second)), "Date must default to now, is %s", transaction.Date)
	suite.Assert().True(transaction.Amount.Equal(decimal.RequireFromString("12.5")))
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	salary := suite.createTestCategory(user, "Salary", models.KindIncome)
	foreign := suite.createTestCategory(other, "Food", models.KindExpense)

	suite.createTestTransaction(user, food, "10", time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), "Lunch with Bob")
	suite.createTestTransaction(user, food, "20", time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC), "Groceries")
	suite.createTestTransaction(user, food, "30", time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), "Lunch")
	suite.createTestTransaction(user, salary, "1000", time.Date(2025, 1, 25, 9, 0, 0, 0, time.UTC), "January salary")
	suite.createTestTransaction(other, foreign, "99", time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), "Lunch")

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Expenses", "type=expense", 3},
		{"Income", "type=income", 1},
		{"Category", "category=" + salary.ID.String(), 1},
		{"From date", "fromDate=2025-01-31", 2},
		{"Until date, inclusive", "untilDate=2025-01-31", 3},
		{"Date range", "fromDate=2025-01-06&untilDate=2025-01-31", 2},
		{"Note glob", "note=Lunch*", 2},
		{"Note glob middle", "note=*salary*", 1},
		{"Note no match", "note=Dinner", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=3", 1},
		{"Offset and limit", "offset=1&limit=2", 2},
		{"Offset beyond", "offset=10", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, transactionsURL+"?"+tt.query, "", test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var transactions []models.Transaction
			test.DecodeResponse(suite.T(), &r, &transactions)
			suite.Assert().Len(transactions, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))

			for _, t := range transactions {
				suite.Assert().Equal(user.ID, t.UserID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetListOrder() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)

	old := suite.createTestTransaction(user, food, "10", time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), "")
	recent := suite.createTestTransaction(user, food, "20", time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC), "")

	r := test.Request(suite.T(), http.MethodGet, transactionsURL, "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(recent.ID, transactions[0].ID)
	suite.Assert().Equal(old.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetListInvalidFilter() {
	user := suite.createTestUser()

	for _, query := range []string{
		"type=transfer",
		"category=not-a-uuid",
		"fromDate=2025-13-01",
		"fromDate=2025-02-01&untilDate=2025-01-01",
		"offset=-1",
	} {
		suite.Run(query, func() {
			r := test.Request(suite.T(), http.MethodGet, transactionsURL+"?"+query, "", test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	transaction := suite.createTestTransaction(user, food, "10", time.Now(), "Lunch")

	r := test.Request(suite.T(), http.MethodGet, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got models.Transaction
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Equal("Lunch", got.Note)

	r = test.Request(suite.T(), http.MethodGet, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), other))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, transactionsURL+"/not-a-uuid", "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	rent := suite.createTestCategory(user, "Rent", models.KindExpense)
	foreign := suite.createTestCategory(other, "Food", models.KindExpense)
	transaction := suite.createTestTransaction(user, food, "10", time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), "Lunch")

	url := transactionsURL + "/" + transaction.ID.String()

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"amount": "12.75", "categoryId": rent.ID}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.Amount.Equal(decimal.RequireFromString("12.75")))
	suite.Assert().Equal(rent.ID, updated.CategoryID)
	suite.Assert().Equal("Lunch", updated.Note)
	suite.Assert().Equal(time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), updated.Date)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Category of other user", map[string]any{"categoryId": foreign.ID}, http.StatusNotFound},
		{"Negative amount", map[string]any{"amount": "-1"}, http.StatusBadRequest},
		{"Invalid type", map[string]any{"type": "transfer"}, http.StatusBadRequest},
		{"Broken body", `{ "note": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPatch, url, tt.body, test.Bearer(suite.T(), user))
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	r = test.Request(suite.T(), http.MethodPut, url, map[string]any{"note": "Dinner"}, test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Dinner", updated.Note)
	suite.Assert().True(updated.Amount.Equal(decimal.RequireFromString("12.75")))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	transaction := suite.createTestTransaction(user, food, "10", time.Now(), "")

	r := test.Request(suite.T(), http.MethodDelete, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), other))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MessageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Transaction deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodDelete, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// Deleting a category keeps its transactions.
func (suite *TestSuiteStandard) TestTransactionsKeptAfterCategoryDelete() {
	user := suite.createTestUser()
	food := suite.createTestCategory(user, "Food", models.KindExpense)
	transaction := suite.createTestTransaction(user, food, "10", time.Now(), "")

	r := test.Request(suite.T(), http.MethodDelete, categoriesURL+"/"+food.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, transactionsURL+"/"+transaction.ID.String(), "", test.Bearer(suite.T(), user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got models.Transaction
	test.DecodeResponse(suite.T(), &r, &got)
	suite.Assert().Equal(food.ID, got.CategoryID)
}
