// Package report builds monthly financial reports from the transactions
// and categories of a user.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack-api/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultTimeout = 10 * time.Second

// Service builds reports.
type Service struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
}

type Option func(*Service)

// WithTimeout limits the time the data for one report may take to load.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithClock sets the clock used to determine the current month.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		timeout: DefaultTimeout,
		now:     time.Now,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Monthly returns the report of the user for the month in token. See
// ParseRange for the handling of token.
//
// An invalid token returns a ValidationError before any data is read.
// If loading the data fails, the returned error wraps ErrStorage and no
// report is returned.
func (s *Service) Monthly(ctx context.Context, userID uuid.UUID, token *string, includeEmpty bool) (Monthly, error) {
	r, err := ParseRange(token, s.now())
	if err != nil {
		return Monthly{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		transactions []models.Transaction
		categories   map[uuid.UUID]models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.store.TransactionsInRange(gctx, userID, r.Start, r.End)
		if err != nil {
			return fmt.Errorf("fetching transactions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = s.store.Categories(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Monthly{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	agg := Aggregate(transactions, categories)
	for _, e := range agg.Integrity {
		log.Warn().Str("user", userID.String()).Str("transaction", e.TransactionID.String()).Str("type", string(e.Kind)).Msg("transaction with unknown type in report")
	}

	return Assemble(r, agg, categories, includeEmpty), nil
}
