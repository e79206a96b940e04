package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/courseflow/courseflow-backend/internal/usecase/vat"
)

type vatConvertRequest struct {
	Amount    decimal.Decimal  `json:"amount"`
	Rate      decimal.Decimal  `json:"rate"`
	Direction string           `json:"direction" validate:"required_without=Steps,omitempty,oneof=NET_TO_GROSS GROSS_TO_NET"`
	Steps     []vatStepRequest `json:"steps" validate:"omitempty,dive"`
}

type vatStepRequest struct {
	Kind  string          `json:"kind" validate:"required,oneof=ADD SUBTRACT ADD_VAT REMOVE_VAT"`
	Value decimal.Decimal `json:"value"`
}

type vatStepResponse struct {
	Kind   string          `json:"kind"`
	Value  decimal.Decimal `json:"value"`
	Result decimal.Decimal `json:"result"`
}

type vatConvertResponse struct {
	Net   decimal.Decimal `json:"net"`
	Gross decimal.Decimal `json:"gross"`
	VAT   decimal.Decimal `json:"vat"`
}

type vatCalculatorResponse struct {
	Result decimal.Decimal   `json:"result"`
	Steps  []vatStepResponse `json:"steps"`
}

// handleVATConvert converts one amount between HT and TTC. When a steps list
// is given it runs the chained calculator from the amount instead and returns
// the step history along with the final total.
func (s *Server) handleVATConvert(w http.ResponseWriter, r *http.Request) {
	var req vatConvertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	if len(req.Steps) > 0 {
		calc := vat.NewCalculator(req.Amount)
		for _, step := range req.Steps {
			switch vat.StepKind(step.Kind) {
			case vat.StepAdd:
				calc.Add(step.Value)
			case vat.StepSubtract:
				calc.Subtract(step.Value)
			case vat.StepAddVAT:
				calc.AddVAT(step.Value)
			case vat.StepRemoveVAT:
				calc.RemoveVAT(step.Value)
			}
		}

		steps := make([]vatStepResponse, 0, len(calc.Steps()))
		for _, step := range calc.Steps() {
			steps = append(steps, vatStepResponse{
				Kind:   string(step.Kind),
				Value:  step.Value,
				Result: vat.Round2(step.Result),
			})
		}

		writeJSON(w, http.StatusOK, vatCalculatorResponse{
			Result: vat.Round2(calc.Result()),
			Steps:  steps,
		})
		return
	}

	var (
		breakdown vat.Breakdown
		err       error
	)
	if req.Direction == "GROSS_TO_NET" {
		breakdown, err = vat.FromGross(req.Amount, req.Rate)
	} else {
		breakdown, err = vat.FromNet(req.Amount, req.Rate)
	}
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, vatConvertResponse{
		Net:   vat.Round2(breakdown.Net),
		Gross: vat.Round2(breakdown.Gross),
		VAT:   vat.Round2(breakdown.VAT),
	})
}
