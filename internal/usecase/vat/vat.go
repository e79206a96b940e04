// Package vat converts between HT (net) and TTC (gross) amounts and runs the
// chained calculator behind the driver's TVA tool.
package vat

import (
	"errors"

	"github.com/shopspring/decimal"
)

// French VAT rates as percentages
var (
	RateStandard     = decimal.NewFromInt(20)
	RateIntermediate = decimal.NewFromInt(10)
	RateReduced      = decimal.RequireFromString("5.5")
	RateSuperReduced = decimal.RequireFromString("2.1")
)

var hundred = decimal.NewFromInt(100)

// ErrInvalidRate indicates a negative VAT rate
var ErrInvalidRate = errors.New("vat rate cannot be negative")

// GrossFromNet returns the TTC amount for a net (HT) amount at the given rate
func GrossFromNet(net, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	return net.Mul(hundred.Add(rate)).Div(hundred), nil
}

// NetFromGross returns the HT amount for a gross (TTC) amount at the given rate
func NetFromGross(gross, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	return gross.Mul(hundred).Div(hundred.Add(rate)), nil
}

// Breakdown holds the three figures of one VAT computation
type Breakdown struct {
	Net   decimal.Decimal // HT
	Gross decimal.Decimal // TTC
	VAT   decimal.Decimal
}

// FromNet computes the full breakdown starting from a net amount
func FromNet(net, rate decimal.Decimal) (Breakdown, error) {
	gross, err := GrossFromNet(net, rate)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Net: net, Gross: gross, VAT: gross.Sub(net)}, nil
}

// FromGross computes the full breakdown starting from a gross amount
func FromGross(gross, rate decimal.Decimal) (Breakdown, error) {
	net, err := NetFromGross(gross, rate)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Net: net, Gross: gross, VAT: gross.Sub(net)}, nil
}

// Round2 rounds an amount to 2 decimal places for display
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// StepKind represents one operation of the chained calculator
type StepKind string

const (
	StepAdd       StepKind = "ADD"
	StepSubtract  StepKind = "SUBTRACT"
	StepAddVAT    StepKind = "ADD_VAT"
	StepRemoveVAT StepKind = "REMOVE_VAT"
)

// Step records one applied operation and the running amount after it
type Step struct {
	Kind   StepKind
	Value  decimal.Decimal // operand: amount for ADD/SUBTRACT, rate for the VAT steps
	Result decimal.Decimal
}

// Calculator chains arithmetic over a running amount, keeping the step
// history for display. The zero value starts at zero.
type Calculator struct {
	current decimal.Decimal
	steps   []Step
}

// NewCalculator starts a chained computation from an initial amount
func NewCalculator(initial decimal.Decimal) *Calculator {
	return &Calculator{current: initial}
}

// Add adds an amount to the running total
func (c *Calculator) Add(amount decimal.Decimal) *Calculator {
	c.current = c.current.Add(amount)
	c.steps = append(c.steps, Step{Kind: StepAdd, Value: amount, Result: c.current})
	return c
}

// Subtract subtracts an amount from the running total
func (c *Calculator) Subtract(amount decimal.Decimal) *Calculator {
	c.current = c.current.Sub(amount)
	c.steps = append(c.steps, Step{Kind: StepSubtract, Value: amount, Result: c.current})
	return c
}

// AddVAT treats the running total as HT and converts it to TTC at the rate.
// A negative rate leaves the total unchanged.
func (c *Calculator) AddVAT(rate decimal.Decimal) *Calculator {
	gross, err := GrossFromNet(c.current, rate)
	if err != nil {
		return c
	}
	c.current = gross
	c.steps = append(c.steps, Step{Kind: StepAddVAT, Value: rate, Result: c.current})
	return c
}

// RemoveVAT treats the running total as TTC and converts it back to HT.
// A negative rate leaves the total unchanged.
func (c *Calculator) RemoveVAT(rate decimal.Decimal) *Calculator {
	net, err := NetFromGross(c.current, rate)
	if err != nil {
		return c
	}
	c.current = net
	c.steps = append(c.steps, Step{Kind: StepRemoveVAT, Value: rate, Result: c.current})
	return c
}

// Result returns the current running total
func (c *Calculator) Result() decimal.Decimal {
	return c.current
}

// Steps returns the applied operations in order
func (c *Calculator) Steps() []Step {
	return c.steps
}
