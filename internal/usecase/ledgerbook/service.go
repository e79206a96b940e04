// Package ledgerbook is the data-entry boundary of the ledger: it validates
// and stores entries, categories and monthly goals. The finance package then
// aggregates whatever this boundary let through.
package ledgerbook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// Service handles ledger entry, category and goal persistence
type Service struct {
	EntryRepo    domain.LedgerEntryRepository
	CategoryRepo domain.CategoryRepository
	GoalRepo     domain.GoalRepository
}

// NewService creates a new ledgerbook Service instance
func NewService(
	entryRepo domain.LedgerEntryRepository,
	categoryRepo domain.CategoryRepository,
	goalRepo domain.GoalRepository,
) *Service {
	return &Service{
		EntryRepo:    entryRepo,
		CategoryRepo: categoryRepo,
		GoalRepo:     goalRepo,
	}
}

// RecordEntryInput represents the input for recording a ledger entry
type RecordEntryInput struct {
	Side        domain.Side
	NetAmount   decimal.Decimal // HT
	GrossAmount decimal.Decimal // TTC
	CategoryID  uuid.UUID
	OccurredAt  time.Time
	Description string
}

// RecordEntry validates and stores one financial movement.
// Logic:
//  1. The category must exist and sit on the same side as the entry
//  2. Amounts are checked here (gross >= net >= 0) because the aggregation
//     layer deliberately sums without validating
//  3. Save
func (s *Service) RecordEntry(ctx context.Context, input RecordEntryInput) (*domain.LedgerEntry, error) {
	category, err := s.CategoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: category does not exist", domain.ErrValidation)
		}
		return nil, err
	}

	if category.Side != input.Side {
		return nil, fmt.Errorf("%w: category %s is not a %s category", domain.ErrValidation, category.Name, input.Side)
	}

	entry := &domain.LedgerEntry{
		ID:          uuid.New(),
		Side:        input.Side,
		NetAmount:   input.NetAmount,
		GrossAmount: input.GrossAmount,
		CategoryID:  input.CategoryID,
		OccurredAt:  input.OccurredAt,
		Description: input.Description,
	}

	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.EntryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListEntries retrieves entries with occurred_at inside [start, end]
func (s *Service) ListEntries(ctx context.Context, start, end time.Time) ([]*domain.LedgerEntry, error) {
	return s.EntryRepo.ListBetween(ctx, start, end)
}

// DeleteEntry removes a ledger entry
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.EntryRepo.Delete(ctx, id)
}

// CreateCategory adds a new ledger category
func (s *Service) CreateCategory(ctx context.Context, name string, side domain.Side) (*domain.Category, error) {
	category := &domain.Category{
		ID:   uuid.New(),
		Name: name,
		Side: side,
	}

	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.CategoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories retrieves categories, optionally filtered by side
func (s *Service) ListCategories(ctx context.Context, sideFilter domain.Side) ([]*domain.Category, error) {
	return s.CategoryRepo.List(ctx, sideFilter)
}

// SetGoal stores the monthly goal for one side, replacing the previous value
func (s *Service) SetGoal(ctx context.Context, side domain.Side, netTarget, grossTarget decimal.Decimal) (*domain.MonthlyGoal, error) {
	goal := &domain.MonthlyGoal{
		Side:        side,
		NetTarget:   netTarget,
		GrossTarget: grossTarget,
	}

	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.GoalRepo.Set(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// GetGoal retrieves the current monthly goal for a side
func (s *Service) GetGoal(ctx context.Context, side domain.Side) (*domain.MonthlyGoal, error) {
	return s.GoalRepo.GetBySide(ctx, side)
}
