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

// reservationRepository implements domain.ReservationRepository
type reservationRepository struct {
	db *DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *DB) domain.ReservationRepository {
	return &reservationRepository{db: db}
}

// Create creates a new reservation
func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (id, client_id, client_name, pickup_label, dropoff_label, start_at, duration_minutes, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var clientID interface{}
	if reservation.ClientID != nil {
		clientID = *reservation.ClientID
	}

	_, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		clientID,
		reservation.ClientName,
		reservation.PickupLabel,
		reservation.DropoffLabel,
		reservation.StartAt,
		reservation.DurationMinutes,
		reservation.Price.String(),
		string(reservation.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// GetByID retrieves a reservation by its ID
func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `
		SELECT id, client_id, client_name, pickup_label, dropoff_label, start_at, duration_minutes, price, status
		FROM reservations
		WHERE id = $1
	`

	reservation, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation by ID: %w", err)
	}

	return reservation, nil
}

// ListBetween retrieves all reservations with start <= start_at <= end
func (r *reservationRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	query := `
		SELECT id, client_id, client_name, pickup_label, dropoff_label, start_at, duration_minutes, price, status
		FROM reservations
		WHERE start_at >= $1 AND start_at <= $2
		ORDER BY start_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}

// Update updates an existing reservation
func (r *reservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET client_id = $2, client_name = $3, pickup_label = $4, dropoff_label = $5,
		    start_at = $6, duration_minutes = $7, price = $8, status = $9
		WHERE id = $1
	`

	var clientID interface{}
	if reservation.ClientID != nil {
		clientID = *reservation.ClientID
	}

	result, err := r.db.ExecContext(ctx, query,
		reservation.ID,
		clientID,
		reservation.ClientName,
		reservation.PickupLabel,
		reservation.DropoffLabel,
		reservation.StartAt,
		reservation.DurationMinutes,
		reservation.Price.String(),
		string(reservation.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
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

// Delete removes a reservation
func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
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

func scanReservation(s scanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var clientID sql.NullString
	var priceStr, status string

	err := s.Scan(
		&reservation.ID,
		&clientID,
		&reservation.ClientName,
		&reservation.PickupLabel,
		&reservation.DropoffLabel,
		&reservation.StartAt,
		&reservation.DurationMinutes,
		&priceStr,
		&status,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		parsed, err := uuid.Parse(clientID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse client_id: %w", err)
		}
		reservation.ClientID = &parsed
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price: %w", err)
	}
	reservation.Price = price
	reservation.Status = domain.ReservationStatus(status)

	return &reservation, nil
}
