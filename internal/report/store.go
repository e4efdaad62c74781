package report

import (
	"context"
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is read access to the ledger of a user.
type Store interface {
	// TransactionsInRange returns the transactions of the user with
	// start <= date < end.
	TransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)

	// Categories returns the categories of the user by ID.
	Categories(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]models.Category, error)
}

// GormStore reads transactions and categories with gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) GormStore {
	return GormStore{db: db}
}

func (s GormStore) TransactionsInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.UTC(), end.UTC()).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (s GormStore) Categories(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]models.Category, error) {
	var categories []models.Category

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	lookup := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}

	return lookup, nil
}
