// Package reservation handles the ride booking lifecycle.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/planner"
)

// Service handles reservation CRUD and status transitions
type Service struct {
	ReservationRepo domain.ReservationRepository
	ClientRepo      domain.ClientRepository
}

// NewService creates a new reservation Service instance
func NewService(reservationRepo domain.ReservationRepository, clientRepo domain.ClientRepository) *Service {
	return &Service{
		ReservationRepo: reservationRepo,
		ClientRepo:      clientRepo,
	}
}

// BookInput represents the input for booking a reservation
type BookInput struct {
	ClientID        *uuid.UUID // optional: walk-ins only carry a name
	ClientName      string
	PickupLabel     string
	DropoffLabel    string
	StartAt         time.Time
	DurationMinutes float64
	Price           decimal.Decimal
}

// Book creates a new reservation in PENDING state.
// Logic:
//  1. If a client ID is given, the client must exist; an empty display name
//     falls back to the client's registered name
//  2. An unknown duration (zero) gets the default-duration policy applied
//  3. Validate and save
func (s *Service) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	clientName := input.ClientName

	if input.ClientID != nil {
		client, err := s.ClientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: client does not exist", domain.ErrValidation)
			}
			return nil, err
		}
		if clientName == "" {
			clientName = client.Name
		}
	}

	duration := input.DurationMinutes
	if duration == 0 {
		duration = planner.DefaultDurationMinutes
	}

	reservation := &domain.Reservation{
		ID:              uuid.New(),
		ClientID:        input.ClientID,
		ClientName:      clientName,
		PickupLabel:     input.PickupLabel,
		DropoffLabel:    input.DropoffLabel,
		StartAt:         input.StartAt,
		DurationMinutes: duration,
		Price:           input.Price,
		Status:          domain.ReservationStatusPending,
	}

	if err := reservation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.ReservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// UpdateInput represents the editable fields of a reservation
type UpdateInput struct {
	ClientName      string
	PickupLabel     string
	DropoffLabel    string
	StartAt         time.Time
	DurationMinutes float64
	Price           decimal.Decimal
}

// Update edits the details of an existing reservation. Status is not touched
// here; use ChangeStatus for lifecycle transitions.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reservation.ClientName = input.ClientName
	reservation.PickupLabel = input.PickupLabel
	reservation.DropoffLabel = input.DropoffLabel
	reservation.StartAt = input.StartAt
	reservation.DurationMinutes = input.DurationMinutes
	reservation.Price = input.Price

	if reservation.DurationMinutes == 0 {
		reservation.DurationMinutes = planner.DefaultDurationMinutes
	}

	if err := reservation.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	if err := s.ReservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// ChangeStatus applies a lifecycle transition to a reservation
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, target domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := s.ReservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateStatusTransition(reservation.Status, target); err != nil {
		return nil, fmt.Errorf("%w: cannot move %s to %s", err, reservation.Status, target)
	}

	reservation.Status = target
	if err := s.ReservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// GetByID retrieves a single reservation
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	return s.ReservationRepo.GetByID(ctx, id)
}

// ListBetween retrieves reservations whose start falls inside [start, end]
func (s *Service) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	return s.ReservationRepo.ListBetween(ctx, start, end)
}

// Delete removes a reservation
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ReservationRepo.Delete(ctx, id)
}
