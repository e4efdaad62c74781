package report

import (
	"strings"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
)

// Money is a decimal that is encoded as a JSON number with two decimal places at most.
type Money struct {
	decimal.Decimal
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Round(2).String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// CategorySummary is the activity of one category in a report.
type CategorySummary struct {
	CategoryID string `json:"categoryId" example:"5bd9c7c0-d1f8-4b5c-b4a6-ad0d9a5f1cbd"`
	Name       string `json:"name" example:"Food"`
	Type       string `json:"type" example:"expense"`
	Color      string `json:"color" example:"#ff0000"`
	Total      Money  `json:"total" swaggertype:"number" example:"50"`
	Count      int    `json:"count" example:"1"`
}

// Monthly is the financial summary of one month.
type Monthly struct {
	Month             string            `json:"month" example:"2025-01"`
	TotalIncome       Money             `json:"total_income" swaggertype:"number" example:"1000"`
	TotalExpenses     Money             `json:"total_expenses" swaggertype:"number" example:"50"`
	TotalUnclassified *Money            `json:"total_unclassified,omitempty" swaggertype:"number"` // Only set when transactions of unknown type exist
	Categories        []CategorySummary `json:"categories"`
}

// Assemble builds the report for the range from the aggregation.
//
// Categories are sorted by total, largest first. Ties are ordered by
// name, ignoring case. With includeEmpty, categories without activity
// are listed with a total of zero.
func Assemble(r Range, agg Aggregation, categories map[uuid.UUID]models.Category, includeEmpty bool) Monthly {
	summaries := make([]CategorySummary, 0, len(agg.Buckets))

	for key, b := range agg.Buckets {
		s := CategorySummary{
			CategoryID: key,
			Total:      Money{b.Total},
			Count:      b.Count,
		}

		switch key {
		case UncategorizedID:
			s.Name = "Uncategorized"
		case UnclassifiedID:
			s.Name = "Unclassified"
		default:
			c := categories[uuid.MustParse(key)]
			s.Name = c.Name
			s.Type = string(c.Type)
			s.Color = c.Color
		}

		summaries = append(summaries, s)
	}

	if includeEmpty {
		for id, c := range categories {
			if _, ok := agg.Buckets[id.String()]; ok {
				continue
			}

			summaries = append(summaries, CategorySummary{
				CategoryID: id.String(),
				Name:       c.Name,
				Type:       string(c.Type),
				Color:      c.Color,
				Total:      Money{decimal.Zero},
			})
		}
	}

	fold := cases.Fold()
	slices.SortStableFunc(summaries, func(a, b CategorySummary) int {
		if c := b.Total.Cmp(a.Total.Decimal); c != 0 {
			return c
		}

		if c := strings.Compare(fold.String(a.Name), fold.String(b.Name)); c != 0 {
			return c
		}

		return strings.Compare(a.CategoryID, b.CategoryID)
	})

	report := Monthly{
		Month:         r.Label,
		TotalIncome:   Money{agg.TotalIncome},
		TotalExpenses: Money{agg.TotalExpenses},
		Categories:    summaries,
	}

	if !agg.TotalUnclassified.IsZero() {
		report.TotalUnclassified = &Money{agg.TotalUnclassified}
	}

	return report
}
