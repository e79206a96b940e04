package vat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrossFromNet(t *testing.T) {
	gross, err := GrossFromNet(decimal.NewFromInt(100), RateStandard)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120).Equal(gross), "got %s", gross)

	gross, err = GrossFromNet(decimal.NewFromInt(200), RateReduced)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(211).Equal(gross), "got %s", gross)

	_, err = GrossFromNet(decimal.NewFromInt(100), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestNetFromGross(t *testing.T) {
	net, err := NetFromGross(decimal.NewFromInt(120), RateStandard)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(net), "got %s", net)

	net, err = NetFromGross(decimal.NewFromInt(110), RateIntermediate)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(net), "got %s", net)
}

func TestNetGrossRoundTrip(t *testing.T) {
	for _, rate := range []decimal.Decimal{RateStandard, RateIntermediate, RateReduced, RateSuperReduced} {
		net := decimal.RequireFromString("123.45")
		gross, err := GrossFromNet(net, rate)
		require.NoError(t, err)
		back, err := NetFromGross(gross, rate)
		require.NoError(t, err)
		assert.True(t, net.Equal(back.Round(10)), "rate %s: %s != %s", rate, net, back)
	}
}

func TestFromNet_Breakdown(t *testing.T) {
	breakdown, err := FromNet(decimal.NewFromInt(100), RateStandard)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(100).Equal(breakdown.Net))
	assert.True(t, decimal.NewFromInt(120).Equal(breakdown.Gross))
	assert.True(t, decimal.NewFromInt(20).Equal(breakdown.VAT))
}

func TestFromGross_Breakdown(t *testing.T) {
	breakdown, err := FromGross(decimal.NewFromInt(121), RateIntermediate)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(110).Equal(breakdown.Net))
	assert.True(t, decimal.NewFromInt(11).Equal(breakdown.VAT))
}

func TestCalculator_ChainedOperations(t *testing.T) {
	// 100 + 50 = 150 HT, to TTC at 20% = 180, minus 30 = 150
	result := NewCalculator(decimal.NewFromInt(100)).
		Add(decimal.NewFromInt(50)).
		AddVAT(RateStandard).
		Subtract(decimal.NewFromInt(30)).
		Result()

	assert.True(t, decimal.NewFromInt(150).Equal(result), "got %s", result)
}

func TestCalculator_KeepsStepHistory(t *testing.T) {
	calc := NewCalculator(decimal.Zero).
		Add(decimal.NewFromInt(240)).
		RemoveVAT(RateStandard)

	steps := calc.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, StepAdd, steps[0].Kind)
	assert.Equal(t, StepRemoveVAT, steps[1].Kind)
	assert.True(t, decimal.NewFromInt(200).Equal(steps[1].Result))
}

func TestCalculator_NegativeRateIsIgnored(t *testing.T) {
	result := NewCalculator(decimal.NewFromInt(100)).
		AddVAT(decimal.NewFromInt(-5)).
		Result()

	assert.True(t, decimal.NewFromInt(100).Equal(result))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "123.46", Round2(decimal.RequireFromString("123.456")).String())
	assert.Equal(t, "123.45", Round2(decimal.RequireFromString("123.454")).String())
}
