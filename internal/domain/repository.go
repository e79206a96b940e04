package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerEntryRepository defines the interface for ledger entry persistence operations
type LedgerEntryRepository interface {
	// Create creates a new ledger entry
	Create(ctx context.Context, entry *LedgerEntry) error

	// GetByID retrieves a ledger entry by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)

	// ListBetween retrieves all entries with start <= occurred_at <= end,
	// ordered ascending by occurrence date. The aggregation layer applies the
	// same closed-inclusive filter again, so a coarser pre-filter is also fine.
	ListBetween(ctx context.Context, start, end time.Time) ([]*LedgerEntry, error)

	// Delete removes a ledger entry
	// Returns ErrNotFound if no entry matches the ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines the interface for monthly goal persistence operations
type GoalRepository interface {
	// Set stores the monthly goal for its side, replacing any previous value
	Set(ctx context.Context, goal *MonthlyGoal) error

	// GetBySide retrieves the current monthly goal for a side
	// Returns ErrNotFound if no goal has been set yet
	GetBySide(ctx context.Context, side Side) (*MonthlyGoal, error)
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// List retrieves categories, optionally filtered by side
	// If sideFilter is empty, returns all categories
	List(ctx context.Context, sideFilter Side) ([]*Category, error)
}

// ClientRepository defines the interface for client persistence operations
type ClientRepository interface {
	// Create creates a new client
	Create(ctx context.Context, client *Client) error

	// GetByID retrieves a client by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// List retrieves a paginated list of clients ordered by name
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Update updates an existing client
	Update(ctx context.Context, client *Client) error

	// Delete removes a client
	// Returns ErrNotFound if no client matches the ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationRepository defines the interface for reservation persistence operations
type ReservationRepository interface {
	// Create creates a new reservation
	Create(ctx context.Context, reservation *Reservation) error

	// GetByID retrieves a reservation by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// ListBetween retrieves all reservations with start <= start_at <= end,
	// ordered ascending by start time
	ListBetween(ctx context.Context, start, end time.Time) ([]*Reservation, error)

	// Update updates an existing reservation
	Update(ctx context.Context, reservation *Reservation) error

	// Delete removes a reservation
	// Returns ErrNotFound if no reservation matches the ID
	Delete(ctx context.Context, id uuid.UUID) error
}
