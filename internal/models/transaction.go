package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single income or expense of a user.
//
// CategoryID is not a foreign key: categories can be deleted while
// transactions still reference them.
type Transaction struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"type:uuid;index:idx_transaction_user_date"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"type:uuid"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Type       Kind            `json:"type"`
	Date       time.Time       `json:"date" gorm:"index:idx_transaction_user_date"`
	Note       string          `json:"note"`
}

// AfterFind enforces UTC for all times.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC, defaulting it to now
//   - trims whitespace from the note
//   - validates the amount and the type
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !t.Type.Valid() {
		return ErrInvalidKind
	}

	return nil
}
