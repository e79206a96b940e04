package http

import (
	"net/http"
	"strconv"
)

const (
	defaultHourHeightPx = 60.0
	defaultHoursVisible = 24
)

type blockResponse struct {
	Reservation reservationResponse `json:"reservation"`
	TopPx       float64             `json:"top_px"`
	HeightPx    float64             `json:"height_px"`
}

type dayViewResponse struct {
	Date   string          `json:"date"`
	Blocks []blockResponse `json:"blocks"`
}

type weekViewResponse struct {
	WeekStart string                           `json:"week_start"`
	WeekEnd   string                           `json:"week_end"`
	Days      map[string][]reservationResponse `json:"days"`
}

// handlePlanningDay serves GET /planning/day?date=&hour_height=&hours_visible=.
// Geometry parameters default to a 24h timeline at 60px per hour.
func (s *Server) handlePlanningDay(w http.ResponseWriter, r *http.Request) {
	ref, err := queryDate(r, "date")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
		return
	}

	hourHeight := defaultHourHeightPx
	if raw := r.URL.Query().Get("hour_height"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Parameter", "hour_height must be a positive number")
			return
		}
		hourHeight = parsed
	}

	hoursVisible := defaultHoursVisible
	if raw := r.URL.Query().Get("hours_visible"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid Parameter", "hours_visible must be a positive integer")
			return
		}
		hoursVisible = parsed
	}

	view, err := s.planner.DayTimeline(r.Context(), ref, hourHeight, hoursVisible)
	if err != nil {
		respondError(w, err)
		return
	}

	blocks := make([]blockResponse, 0, len(view.Blocks))
	for _, block := range view.Blocks {
		blocks = append(blocks, blockResponse{
			Reservation: toReservationResponse(block.Reservation),
			TopPx:       block.TopPx,
			HeightPx:    block.HeightPx,
		})
	}

	writeJSON(w, http.StatusOK, dayViewResponse{
		Date:   view.Day.Start.Format(dateLayout),
		Blocks: blocks,
	})
}

// handlePlanningWeek serves GET /planning/week?ref=
func (s *Server) handlePlanningWeek(w http.ResponseWriter, r *http.Request) {
	ref, err := queryDate(r, "ref")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
		return
	}

	view, err := s.planner.WeekPlanning(r.Context(), ref)
	if err != nil {
		respondError(w, err)
		return
	}

	days := make(map[string][]reservationResponse, len(view.Buckets))
	for key, bucket := range view.Buckets {
		out := make([]reservationResponse, 0, len(bucket))
		for _, res := range bucket {
			out = append(out, toReservationResponse(res))
		}
		days[key] = out
	}

	writeJSON(w, http.StatusOK, weekViewResponse{
		WeekStart: view.Week.Start.Format(dateLayout),
		WeekEnd:   view.Week.End.Format(dateLayout),
		Days:      days,
	})
}
