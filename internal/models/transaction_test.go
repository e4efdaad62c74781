package models_test

import (
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	user := suite.createTestUser()

	tests := []struct {
		name   string
		amount decimal.Decimal
		kind   models.Kind
		err    error
	}{
		{"Expense", decimal.NewFromFloat(12.5), models.KindExpense, nil},
		{"Income", decimal.Zero, models.KindIncome, nil},
		{"Negative", decimal.NewFromFloat(-1), models.KindExpense, models.ErrAmountNegative},
		{"Unknown kind", decimal.NewFromFloat(1), "refund", models.ErrInvalidKind},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transaction := models.Transaction{
				UserID:     user.ID,
				CategoryID: uuid.New(),
				Amount:     tt.amount,
				Type:       tt.kind,
			}

			err := models.DB.Create(&transaction).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	user := suite.createTestUser()
	tz := time.FixedZone("UTC+2", 2*3600)

	transaction := models.Transaction{
		UserID:     user.ID,
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromInt(3),
		Type:       models.KindExpense,
		Date:       time.Date(2025, 4, 1, 1, 0, 0, 0, tz),
		Note:       "  coffee ",
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", transaction.ID).Error)

	suite.Assert().Equal(time.UTC, stored.Date.Location())
	suite.Assert().True(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC).Equal(stored.Date), "date is %s", stored.Date)
	suite.Assert().Equal("coffee", stored.Note)
	suite.Assert().True(decimal.NewFromInt(3).Equal(stored.Amount))
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	user := suite.createTestUser()

	transaction := models.Transaction{UserID: user.ID, CategoryID: uuid.New(), Amount: decimal.NewFromInt(1), Type: models.KindIncome}
	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().WithinDuration(time.Now(), transaction.Date, time.Minute)
}
