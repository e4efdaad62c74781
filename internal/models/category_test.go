package models_test

import (
	"github.com/fintrack-api/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryBeforeSave() {
	user := suite.createTestUser()

	tests := []struct {
		name     string
		category models.Category
		err      error
	}{
		{"Valid", models.Category{UserID: user.ID, Name: " Food ", Type: models.KindExpense}, nil},
		{"Empty name", models.Category{UserID: user.ID, Name: "  ", Type: models.KindExpense}, models.ErrCategoryNameEmpty},
		{"Invalid type", models.Category{UserID: user.ID, Name: "Rent", Type: "transfer"}, models.ErrInvalidKind},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.category).Error
			if tt.err == nil {
				suite.Assert().Nil(err)
				suite.Assert().Equal("Food", tt.category.Name)
				return
			}
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food", Type: models.KindExpense})

	// Same name for another user is fine
	suite.createTestCategory(models.Category{UserID: other.ID, Name: "Food", Type: models.KindExpense})

	duplicate := models.Category{UserID: user.ID, Name: "Food", Type: models.KindIncome}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNotFound() {
	var category models.Category
	err := models.DB.First(&category, "id = ?", "does-not-exist").Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "category")
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	var categories []models.Category
	err := models.DB.Find(&categories).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
