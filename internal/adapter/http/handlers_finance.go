package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/period"
)

type categoryTotalsResponse struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Net          decimal.Decimal `json:"net"`
	Gross        decimal.Decimal `json:"gross"`
}

type summaryResponse struct {
	Side   string    `json:"side"`
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`

	Net   decimal.Decimal `json:"net"`
	Gross decimal.Decimal `json:"gross"`

	GoalNet   decimal.Decimal `json:"goal_net"`
	GoalGross decimal.Decimal `json:"goal_gross"`

	RemainingNet   decimal.Decimal `json:"remaining_net"`
	RemainingGross decimal.Decimal `json:"remaining_gross"`

	ProgressNet   decimal.Decimal `json:"progress_net"`
	ProgressGross decimal.Decimal `json:"progress_gross"`

	Breakdown []categoryTotalsResponse `json:"breakdown"`
}

// handleFinanceSummary serves GET /finance/summary?side=&period=&ref=&from=&to=.
// ref defaults to now; from/to are only read for CUSTOM periods.
func (s *Server) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	side, err := domain.ParseSide(r.URL.Query().Get("side"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Side", err.Error())
		return
	}

	kind, err := period.ParseKind(r.URL.Query().Get("period"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}

	ref, err := queryDate(r, "ref")
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
		return
	}

	var custom *period.CustomRange
	if kind == period.KindCustomRange {
		fromRaw := r.URL.Query().Get("from")
		toRaw := r.URL.Query().Get("to")
		if fromRaw != "" && toRaw != "" {
			from, err := parseDate(fromRaw)
			if err != nil {
				writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
				return
			}
			to, err := parseDate(toRaw)
			if err != nil {
				writeProblem(w, http.StatusBadRequest, "Invalid Date", err.Error())
				return
			}
			custom = &period.CustomRange{From: from, To: to}
		}
	}

	summary, err := s.finance.PeriodSummary(r.Context(), side, kind, ref, custom)
	if err != nil {
		respondError(w, err)
		return
	}

	breakdown := make([]categoryTotalsResponse, 0, len(summary.Breakdown))
	for _, totals := range summary.Breakdown {
		breakdown = append(breakdown, categoryTotalsResponse{
			CategoryID:   totals.CategoryID,
			CategoryName: totals.CategoryName,
			Net:          totals.Net,
			Gross:        totals.Gross,
		})
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Side:           string(summary.Side),
		Period:         string(kind),
		From:           summary.Interval.Start,
		To:             summary.Interval.End,
		Net:            summary.Totals.Net,
		Gross:          summary.Totals.Gross,
		GoalNet:        summary.GoalNet,
		GoalGross:      summary.GoalGross,
		RemainingNet:   summary.RemainingNet,
		RemainingGross: summary.RemainingGross,
		ProgressNet:    summary.ProgressNet,
		ProgressGross:  summary.ProgressGross,
		Breakdown:      breakdown,
	})
}
