package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCanceled  ReservationStatus = "CANCELED"
)

// ErrInvalidStatusTransition indicates a reservation status change not allowed
var ErrInvalidStatusTransition = errors.New("reservation status transition invalid")

// Reservation represents one planned ride.
// ClientID is optional: walk-in rides only carry a free-form client name.
// DurationMinutes of zero means the duration is unknown; the reservation
// service applies the default-duration policy before persisting.
type Reservation struct {
	ID              uuid.UUID
	ClientID        *uuid.UUID
	ClientName      string
	PickupLabel     string
	DropoffLabel    string
	StartAt         time.Time
	DurationMinutes float64
	Price           decimal.Decimal // TTC
	Status          ReservationStatus
}

// Validate ensures the reservation adheres to domain rules
func (r *Reservation) Validate() error {
	if r.StartAt.IsZero() {
		return errors.New("reservation must have a start time")
	}

	if r.DurationMinutes < 0 {
		return errors.New("reservation duration cannot be negative")
	}

	if r.Price.IsNegative() {
		return errors.New("reservation price cannot be negative")
	}

	switch r.Status {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCompleted, ReservationStatusCanceled:
	default:
		return errors.New("reservation status must be PENDING, CONFIRMED, COMPLETED or CANCELED")
	}

	return nil
}

// ValidateStatusTransition checks reservation status changes according to policy.
// COMPLETED and CANCELED are terminal.
func ValidateStatusTransition(current, target ReservationStatus) error {
	if current == target {
		return nil
	}
	switch current {
	case ReservationStatusPending:
		if target == ReservationStatusConfirmed || target == ReservationStatusCanceled {
			return nil
		}
	case ReservationStatusConfirmed:
		if target == ReservationStatusCompleted || target == ReservationStatusCanceled {
			return nil
		}
	}
	return ErrInvalidStatusTransition
}
