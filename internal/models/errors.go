package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrUserNotUnique         = errors.New("a user for this identity already exists")
	ErrInvalidKind           = errors.New("the type must be either 'income' or 'expense'")
	ErrAmountNegative        = errors.New("the amount must not be negative")
	ErrInvalidPeriod         = errors.New("the period must be either 'monthly' or 'yearly'")
	ErrBudgetEndBeforeStart  = errors.New("the end date of a budget must not be before its start date")
)
