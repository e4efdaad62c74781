package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Period is the recurrence of a budget.
//
// swagger:enum Period
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Budget is a planned spending limit for a category.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"type:uuid;index"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"type:uuid"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Period     Period          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"`
}

func (b *Budget) AfterFind(tx *gorm.DB) (err error) {
	err = b.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	b.StartDate = b.StartDate.In(time.UTC)
	if b.EndDate != nil {
		end := b.EndDate.In(time.UTC)
		b.EndDate = &end
	}
	return nil
}

// BeforeSave validates amount, period and date range.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	if b.Period != PeriodMonthly && b.Period != PeriodYearly {
		return ErrInvalidPeriod
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if b.StartDate.IsZero() {
		b.StartDate = time.Now().In(time.UTC)
	} else {
		b.StartDate = b.StartDate.In(time.UTC)
	}

	if b.EndDate != nil {
		end := b.EndDate.In(time.UTC)
		if end.Before(b.StartDate) {
			return ErrBudgetEndBeforeStart
		}
		b.EndDate = &end
	}

	return nil
}
