package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

// PeriodSummary is the finance view model for one side over one period
type PeriodSummary struct {
	Side     domain.Side
	Interval period.Interval
	Totals   Totals

	// Goal figures prorated from the monthly baseline, per amount mode
	GoalNet   decimal.Decimal
	GoalGross decimal.Decimal

	RemainingNet   decimal.Decimal
	RemainingGross decimal.Decimal

	ProgressNet   decimal.Decimal // clamped [0, 1]
	ProgressGross decimal.Decimal

	Breakdown []CategoryTotals
}

// Service assembles period summaries from the ledger, goal and category stores
type Service struct {
	EntryRepo    domain.LedgerEntryRepository
	GoalRepo     domain.GoalRepository
	CategoryRepo domain.CategoryRepository
}

// NewService creates a new finance Service instance
func NewService(
	entryRepo domain.LedgerEntryRepository,
	goalRepo domain.GoalRepository,
	categoryRepo domain.CategoryRepository,
) *Service {
	return &Service{
		EntryRepo:    entryRepo,
		GoalRepo:     goalRepo,
		CategoryRepo: categoryRepo,
	}
}

// PeriodSummary computes totals, prorated goals and the category breakdown
// for one side over the requested period.
// Logic:
//  1. Resolve the interval for the period kind
//  2. Fetch entries pre-filtered to the interval
//  3. Sum with Aggregate, prorate the monthly goal, derive progress metrics
//  4. Break totals down per category (unknown categories excluded)
//
// A missing goal is not an error: targets degrade to zero, which yields zero
// progress and zero remaining.
func (s *Service) PeriodSummary(
	ctx context.Context,
	side domain.Side,
	kind period.Kind,
	ref time.Time,
	custom *period.CustomRange,
) (*PeriodSummary, error) {
	interval, err := period.Resolve(kind, ref, custom)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	entries, err := s.EntryRepo.ListBetween(ctx, interval.Start, interval.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	totals := Aggregate(entries, side, interval)

	goalNet, goalGross := decimal.Zero, decimal.Zero
	goal, err := s.GoalRepo.GetBySide(ctx, side)
	switch {
	case err == nil:
		goalNet = ProrateGoal(goal.NetTarget, kind, ref, interval)
		goalGross = ProrateGoal(goal.GrossTarget, kind, ref, interval)
	case errors.Is(err, domain.ErrNotFound):
		// No goal configured yet, keep zero targets
	default:
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	categories, err := s.CategoryRepo.List(ctx, side)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &PeriodSummary{
		Side:           side,
		Interval:       interval,
		Totals:         totals,
		GoalNet:        goalNet,
		GoalGross:      goalGross,
		RemainingNet:   Remaining(goalNet, totals.Net),
		RemainingGross: Remaining(goalGross, totals.Gross),
		ProgressNet:    ProgressRatio(goalNet, totals.Net),
		ProgressGross:  ProgressRatio(goalGross, totals.Gross),
		Breakdown:      BreakdownByCategory(entries, side, interval, categories),
	}, nil
}
