package report_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
)

// fakeStore is an in-memory report.Store.
type fakeStore struct {
	transactions []models.Transaction
	categories   []models.Category

	transactionsErr error
	categoriesErr   error

	// block makes the store wait for the context to be done
	block bool

	calls atomic.Int32
}

func (f *fakeStore) TransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	f.calls.Add(1)

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if f.transactionsErr != nil {
		return nil, f.transactionsErr
	}

	var result []models.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID && !t.Date.Before(start) && t.Date.Before(end) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeStore) Categories(_ context.Context, userID uuid.UUID) (map[uuid.UUID]models.Category, error) {
	f.calls.Add(1)

	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}

	result := make(map[uuid.UUID]models.Category)
	for _, c := range f.categories {
		if c.UserID == userID {
			result[c.ID] = c
		}
	}
	return result, nil
}

func category(userID uuid.UUID, name string, kind models.Kind) models.Category {
	return models.Category{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		UserID:       userID,
		Name:         name,
		Type:         kind,
		Color:        "#000000",
	}
}

func transaction(userID, categoryID uuid.UUID, amount string, kind models.Kind, date time.Time) models.Transaction {
	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		UserID:       userID,
		CategoryID:   categoryID,
		Amount:       decimalFromString(amount),
		Type:         kind,
		Date:         date,
	}
}
