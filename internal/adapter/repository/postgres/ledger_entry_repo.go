package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// ledgerEntryRepository implements domain.LedgerEntryRepository
type ledgerEntryRepository struct {
	db *DB
}

// NewLedgerEntryRepository creates a new ledger entry repository
func NewLedgerEntryRepository(db *DB) domain.LedgerEntryRepository {
	return &ledgerEntryRepository{db: db}
}

// Create creates a new ledger entry
func (r *ledgerEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, side, net_amount, gross_amount, category_id, occurred_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Side),
		entry.NetAmount.String(),
		entry.GrossAmount.String(),
		entry.CategoryID,
		entry.OccurredAt,
		entry.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}

// GetByID retrieves a ledger entry by its ID
func (r *ledgerEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	query := `
		SELECT id, side, net_amount, gross_amount, category_id, occurred_at, description
		FROM ledger_entries
		WHERE id = $1
	`

	entry, err := scanLedgerEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry by ID: %w", err)
	}

	return entry, nil
}

// ListBetween retrieves all entries with start <= occurred_at <= end
func (r *ledgerEntryRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT id, side, net_amount, gross_amount, category_id, occurred_at, description
		FROM ledger_entries
		WHERE occurred_at >= $1 AND occurred_at <= $2
		ORDER BY occurred_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}

// Delete removes a ledger entry
func (r *ledgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanLedgerEntry(s scanner) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	var side string
	var netStr, grossStr string

	err := s.Scan(
		&entry.ID,
		&side,
		&netStr,
		&grossStr,
		&entry.CategoryID,
		&entry.OccurredAt,
		&entry.Description,
	)
	if err != nil {
		return nil, err
	}

	entry.Side = domain.Side(side)

	net, err := decimal.NewFromString(netStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse net_amount: %w", err)
	}
	entry.NetAmount = net

	gross, err := decimal.NewFromString(grossStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gross_amount: %w", err)
	}
	entry.GrossAmount = gross

	return &entry, nil
}
