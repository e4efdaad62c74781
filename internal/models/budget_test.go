package models_test

import (
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetBeforeSave() {
	user := suite.createTestUser()
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food", Type: models.KindExpense})

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 6, 0)

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"Default period", models.Budget{Amount: decimal.NewFromInt(300), StartDate: start}, nil},
		{"Yearly with end", models.Budget{Amount: decimal.NewFromInt(300), Period: models.PeriodYearly, StartDate: start, EndDate: &after}, nil},
		{"Invalid period", models.Budget{Amount: decimal.NewFromInt(300), Period: "weekly"}, models.ErrInvalidPeriod},
		{"Negative amount", models.Budget{Amount: decimal.NewFromInt(-5)}, models.ErrAmountNegative},
		{"End before start", models.Budget{Amount: decimal.NewFromInt(5), StartDate: start, EndDate: &before}, models.ErrBudgetEndBeforeStart},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.budget.UserID = user.ID
			tt.budget.CategoryID = category.ID

			err := models.DB.Create(&tt.budget).Error
			suite.Assert().ErrorIs(err, tt.err)

			if tt.err == nil {
				suite.Assert().NotEmpty(tt.budget.Period)
			}
		})
	}
}
