package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/reservation"
)

type bookReservationRequest struct {
	ClientID        *uuid.UUID      `json:"client_id"`
	ClientName      string          `json:"client_name"`
	PickupLabel     string          `json:"pickup_label"`
	DropoffLabel    string          `json:"dropoff_label"`
	StartAt         time.Time       `json:"start_at" validate:"required"`
	DurationMinutes float64         `json:"duration_minutes" validate:"gte=0"`
	Price           decimal.Decimal `json:"price"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELED"`
}

type reservationResponse struct {
	ID              uuid.UUID       `json:"id"`
	ClientID        *uuid.UUID      `json:"client_id,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	PickupLabel     string          `json:"pickup_label,omitempty"`
	DropoffLabel    string          `json:"dropoff_label,omitempty"`
	StartAt         time.Time       `json:"start_at"`
	DurationMinutes float64         `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status"`
}

func toReservationResponse(res *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:              res.ID,
		ClientID:        res.ClientID,
		ClientName:      res.ClientName,
		PickupLabel:     res.PickupLabel,
		DropoffLabel:    res.DropoffLabel,
		StartAt:         res.StartAt,
		DurationMinutes: res.DurationMinutes,
		Price:           res.Price,
		Status:          string(res.Status),
	}
}

func (s *Server) handleBookReservation(w http.ResponseWriter, r *http.Request) {
	var req bookReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	booked, err := s.reservations.Book(r.Context(), reservation.BookInput{
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		PickupLabel:     req.PickupLabel,
		DropoffLabel:    req.DropoffLabel,
		StartAt:         req.StartAt,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReservationResponse(booked))
}

// handleListReservations lists reservations starting inside [from, to].
// Missing bounds default to the current day.
func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
		return
	}

	reservations, err := s.reservations.ListBetween(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]reservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, toReservationResponse(res))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	found, err := s.reservations.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(found))
}

func (s *Server) handleUpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	var req bookReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	updated, err := s.reservations.Update(r.Context(), id, reservation.UpdateInput{
		ClientName:      req.ClientName,
		PickupLabel:     req.PickupLabel,
		DropoffLabel:    req.DropoffLabel,
		StartAt:         req.StartAt,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(updated))
}

func (s *Server) handleDeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	if err := s.reservations.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChangeReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	changed, err := s.reservations.ChangeStatus(r.Context(), id, domain.ReservationStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReservationResponse(changed))
}
