package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

// Service assembles day and week planning views from the reservation store
type Service struct {
	ReservationRepo domain.ReservationRepository
}

// NewService creates a new planner Service instance
func NewService(reservationRepo domain.ReservationRepository) *Service {
	return &Service{ReservationRepo: reservationRepo}
}

// DayView is the planning view model for one day
type DayView struct {
	Day    period.Interval
	Blocks []Block
}

// WeekView is the planning view model for one week
type WeekView struct {
	Week    period.Interval
	Buckets map[string][]*domain.Reservation
}

// DayTimeline fetches the day's reservations and lays them out on a
// timeline of hoursVisible hours at hourHeightPx per hour.
func (s *Service) DayTimeline(ctx context.Context, ref time.Time, hourHeightPx float64, hoursVisible int) (*DayView, error) {
	day := period.DayBounds(ref)

	reservations, err := s.ReservationRepo.ListBetween(ctx, day.Start, day.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return &DayView{
		Day:    day,
		Blocks: LayoutDay(day.Start, reservations, hourHeightPx, hoursVisible),
	}, nil
}

// WeekPlanning fetches the week's reservations bucketed per calendar day,
// Monday through Sunday, empty days included.
func (s *Service) WeekPlanning(ctx context.Context, ref time.Time) (*WeekView, error) {
	week := period.WeekBounds(ref)

	reservations, err := s.ReservationRepo.ListBetween(ctx, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return &WeekView{
		Week:    week,
		Buckets: BucketByDay(week.Start, reservations),
	}, nil
}
