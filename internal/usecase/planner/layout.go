// Package planner turns a day's or week's reservations into renderable
// timeline geometry and per-day buckets.
package planner

import (
	"sort"
	"time"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

const (
	// DefaultDurationMinutes is applied by the reservation service when a
	// ride has no known duration. The layout engine never invents it.
	DefaultDurationMinutes = 45

	// MinBlockHeightPx keeps zero/short-duration rides tappable
	MinBlockHeightPx = 48.0

	// DayKeyFormat is the stable per-day bucket key
	DayKeyFormat = "2006-01-02"
)

// Block is the renderable geometry for one reservation on the day timeline
type Block struct {
	Reservation *domain.Reservation
	TopPx       float64
	HeightPx    float64
}

// LayoutDay converts a day's reservations into absolutely-positioned blocks.
// Logic per event:
//  1. top = max(0, minutesFromDayStart/60 * hourHeight)
//  2. height = duration/60 * hourHeight, floored at MinBlockHeightPx
//  3. height clipped so the block never renders past the visible bottom
//
// Overlapping reservations render as overlapping blocks; there is no lane
// assignment.
func LayoutDay(dayStart time.Time, reservations []*domain.Reservation, hourHeightPx float64, hoursVisible int) []Block {
	timelineHeight := float64(hoursVisible) * hourHeightPx

	blocks := make([]Block, 0, len(reservations))
	for _, reservation := range reservations {
		minutesFromStart := reservation.StartAt.Sub(dayStart).Minutes()

		top := (minutesFromStart / 60) * hourHeightPx
		if top < 0 {
			top = 0
		}

		height := (reservation.DurationMinutes / 60) * hourHeightPx
		if height < MinBlockHeightPx {
			height = MinBlockHeightPx
		}
		if top+height > timelineHeight {
			height = timelineHeight - top
		}

		blocks = append(blocks, Block{
			Reservation: reservation,
			TopPx:       top,
			HeightPx:    height,
		})
	}

	return blocks
}

// BucketByDay groups a week's reservations under YYYY-MM-DD keys.
// All 7 days Monday..Sunday of the week containing weekStart are present,
// empty days included, so the UI can render "no reservation" placeholders.
// Events within each bucket are sorted ascending by start time.
func BucketByDay(weekStart time.Time, reservations []*domain.Reservation) map[string][]*domain.Reservation {
	week := period.WeekBounds(weekStart)

	buckets := make(map[string][]*domain.Reservation, 7)
	for i := 0; i < 7; i++ {
		day := week.Start.AddDate(0, 0, i)
		buckets[day.Format(DayKeyFormat)] = []*domain.Reservation{}
	}

	for _, reservation := range reservations {
		key := reservation.StartAt.Format(DayKeyFormat)
		if _, ok := buckets[key]; !ok {
			// Outside the week, skip
			continue
		}
		buckets[key] = append(buckets[key], reservation)
	}

	for key := range buckets {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].StartAt.Before(bucket[j].StartAt)
		})
	}

	return buckets
}
