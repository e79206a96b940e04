package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/ledgerbook"
)

type recordEntryRequest struct {
	Side        string          `json:"side" validate:"required,oneof=REVENUE EXPENSE"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	OccurredAt  time.Time       `json:"occurred_at" validate:"required"`
	Description string          `json:"description"`
}

type entryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Side        string          `json:"side"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	CategoryID  uuid.UUID       `json:"category_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Description string          `json:"description,omitempty"`
}

func toEntryResponse(entry *domain.LedgerEntry) entryResponse {
	return entryResponse{
		ID:          entry.ID,
		Side:        string(entry.Side),
		NetAmount:   entry.NetAmount,
		GrossAmount: entry.GrossAmount,
		CategoryID:  entry.CategoryID,
		OccurredAt:  entry.OccurredAt,
		Description: entry.Description,
	}
}

func (s *Server) handleRecordEntry(w http.ResponseWriter, r *http.Request) {
	var req recordEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	entry, err := s.ledger.RecordEntry(r.Context(), ledgerbook.RecordEntryInput{
		Side:        domain.Side(req.Side),
		NetAmount:   req.NetAmount,
		GrossAmount: req.GrossAmount,
		CategoryID:  req.CategoryID,
		OccurredAt:  req.OccurredAt,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// handleListEntries lists entries occurring inside [from, to].
// Missing bounds default to the current day.
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
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

	entries, err := s.ledger.ListEntries(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntryResponse(entry))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", err.Error())
		return
	}

	if err := s.ledger.DeleteEntry(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Side string `json:"side" validate:"required,oneof=REVENUE EXPENSE"`
}

type categoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Side string    `json:"side"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	category, err := s.ledger.CreateCategory(r.Context(), req.Name, domain.Side(req.Side))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Side: string(category.Side),
	})
}

// handleListCategories lists categories, optionally filtered by ?side=
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	var sideFilter domain.Side
	if raw := r.URL.Query().Get("side"); raw != "" {
		side, err := domain.ParseSide(raw)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Side", err.Error())
			return
		}
		sideFilter = side
	}

	categories, err := s.ledger.ListCategories(r.Context(), sideFilter)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryResponse{
			ID:   category.ID,
			Name: category.Name,
			Side: string(category.Side),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type setGoalRequest struct {
	NetTarget   decimal.Decimal `json:"net_target"`
	GrossTarget decimal.Decimal `json:"gross_target"`
}

type goalResponse struct {
	Side        string          `json:"side"`
	NetTarget   decimal.Decimal `json:"net_target"`
	GrossTarget decimal.Decimal `json:"gross_target"`
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	side, err := domain.ParseSide(chi.URLParam(r, "side"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Side", err.Error())
		return
	}

	goal, err := s.ledger.GetGoal(r.Context(), side)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{
		Side:        string(goal.Side),
		NetTarget:   goal.NetTarget,
		GrossTarget: goal.GrossTarget,
	})
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	side, err := domain.ParseSide(chi.URLParam(r, "side"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Side", err.Error())
		return
	}

	var req setGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}

	goal, err := s.ledger.SetGoal(r.Context(), side, req.NetTarget, req.GrossTarget)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{
		Side:        string(goal.Side),
		NetTarget:   goal.NetTarget,
		GrossTarget: goal.GrossTarget,
	})
}
