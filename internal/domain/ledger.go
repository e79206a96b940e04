package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side represents which side of the ledger an entry belongs to
type Side string

const (
	SideRevenue Side = "REVENUE"
	SideExpense Side = "EXPENSE"
)

// ParseSide converts a raw string into a Side
// Returns an error if the value is not REVENUE or EXPENSE
func ParseSide(raw string) (Side, error) {
	switch Side(raw) {
	case SideRevenue:
		return SideRevenue, nil
	case SideExpense:
		return SideExpense, nil
	default:
		return "", errors.New("side must be REVENUE or EXPENSE")
	}
}

// LedgerEntry represents a single financial movement in the domain layer.
// NetAmount is the amount excluding VAT ("HT"), GrossAmount includes VAT ("TTC").
type LedgerEntry struct {
	ID          uuid.UUID
	Side        Side
	NetAmount   decimal.Decimal // HT
	GrossAmount decimal.Decimal // TTC
	CategoryID  uuid.UUID
	OccurredAt  time.Time
	Description string
}

// Validate ensures the entry adheres to domain rules at the data-entry boundary.
// The aggregation layer deliberately does NOT re-validate: it sums whatever it
// is given, so malformed amounts must be rejected here.
func (e *LedgerEntry) Validate() error {
	if e.Side != SideRevenue && e.Side != SideExpense {
		return errors.New("entry side must be REVENUE or EXPENSE")
	}

	if e.NetAmount.IsNegative() {
		return errors.New("net amount cannot be negative")
	}

	// Gross includes VAT, so it can never be below the net amount
	if e.GrossAmount.LessThan(e.NetAmount) {
		return errors.New("gross amount cannot be less than net amount")
	}

	if e.CategoryID == uuid.Nil {
		return errors.New("entry must reference a category")
	}

	if e.OccurredAt.IsZero() {
		return errors.New("entry must have an occurrence date")
	}

	return nil
}
