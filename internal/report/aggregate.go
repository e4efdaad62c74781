package report

import (
	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bucket keys for transactions that can not be attributed to a category
// of the user.
const (
	UncategorizedID = "uncategorized"
	UnclassifiedID  = "unclassified"
)

// Bucket is the activity of one category.
type Bucket struct {
	Total decimal.Decimal
	Count int
}

// Aggregation is the result of Aggregate.
type Aggregation struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	TotalUnclassified decimal.Decimal

	// Buckets are keyed by category ID, UncategorizedID or UnclassifiedID.
	Buckets map[string]*Bucket

	// Integrity lists the transactions that went into the unclassified bucket.
	Integrity []DataIntegrityError
}

// Aggregate sums up transactions by kind and by category.
//
// Amounts are rounded to cents before they are added. Transactions
// referencing a category that is not in categories are collected in
// the uncategorized bucket. Transactions of an unknown kind go into the
// unclassified bucket and are not part of the income or expense totals.
//
// The sum of all bucket totals always equals the sum of the three totals.
func Aggregate(transactions []models.Transaction, categories map[uuid.UUID]models.Category) Aggregation {
	agg := Aggregation{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		TotalUnclassified: decimal.Zero,
		Buckets:           make(map[string]*Bucket),
	}

	for _, t := range transactions {
		amount := t.Amount.Round(2)

		var key string
		switch t.Type {
		case models.KindIncome:
			agg.TotalIncome = agg.TotalIncome.Add(amount)
			key = categoryKey(t.CategoryID, categories)
		case models.KindExpense:
			agg.TotalExpenses = agg.TotalExpenses.Add(amount)
			key = categoryKey(t.CategoryID, categories)
		default:
			agg.TotalUnclassified = agg.TotalUnclassified.Add(amount)
			agg.Integrity = append(agg.Integrity, DataIntegrityError{TransactionID: t.ID, Kind: t.Type})
			key = UnclassifiedID
		}

		b, ok := agg.Buckets[key]
		if !ok {
			b = &Bucket{Total: decimal.Zero}
			agg.Buckets[key] = b
		}
		b.Total = b.Total.Add(amount)
		b.Count++
	}

	return agg
}

func categoryKey(id uuid.UUID, categories map[uuid.UUID]models.Category) string {
	if _, ok := categories[id]; !ok {
		return UncategorizedID
	}
	return id.String()
}
