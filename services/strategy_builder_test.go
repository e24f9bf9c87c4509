package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

func TestBuildCoveredCallLegs(t *testing.T) {
	params := map[string]any{
		"futuresPrice":   18000.0,
		"callStrike":     18500.0,
		"premium":        200.0,
		"futuresLotSize": 50.0,
		"callLotSize":    50.0,
	}

	legs, err := BuildStrategyLegs("covered-call", params, 18000)
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.Equal(t, interfaces.InstrumentFuture, legs[0].InstrumentKind)
	assert.Equal(t, interfaces.DirectionLong, legs[0].Direction)
	assert.Equal(t, 18000.0, legs[0].ReferencePrice)

	assert.Equal(t, interfaces.InstrumentCall, legs[1].InstrumentKind)
	assert.Equal(t, interfaces.DirectionShort, legs[1].Direction)
	assert.Equal(t, 18500.0, legs[1].StrikePrice)
	assert.Equal(t, 200.0, legs[1].Premium)
}

func TestBuildLegsCoercesStringParameters(t *testing.T) {
	params := map[string]any{
		"futuresPrice": "18000",
		"callStrike":   "18500",
		"premium":      "200",
	}

	legs, err := BuildStrategyLegs("covered-call", params, 17000)
	require.NoError(t, err)

	assert.Equal(t, 18000.0, legs[0].ReferencePrice)
	assert.Equal(t, 18500.0, legs[1].StrikePrice)
	assert.Equal(t, 200.0, legs[1].Premium)
}

func TestBuildLegsDefaultsAnchorOnUnderlying(t *testing.T) {
	legs, err := BuildStrategyLegs("long-straddle", nil, 20000)
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.Equal(t, 20000.0, legs[0].StrikePrice)
	assert.Equal(t, 20000.0, legs[1].StrikePrice)
	assert.Equal(t, interfaces.InstrumentCall, legs[0].InstrumentKind)
	assert.Equal(t, interfaces.InstrumentPut, legs[1].InstrumentKind)
}

// The condor bag carries a single net premium; the leg construction
// must reproduce the piecewise net-premium formula at every price.
func TestIronCondorMatchesNetPremiumFormula(t *testing.T) {
	params := map[string]any{
		"putBuyStrike":   17000.0,
		"putSellStrike":  17500.0,
		"callSellStrike": 18500.0,
		"callBuyStrike":  19000.0,
		"netPremium":     100.0,
		"lotSize":        50.0,
	}

	legs, err := BuildStrategyLegs("iron-condor", params, 18000)
	require.NoError(t, err)
	require.Len(t, legs, 4)

	reference := func(price float64) float64 {
		pnl := 100.0
		if price < 17000 {
			pnl -= (17000 - price) - (17500 - price)
		} else if price < 17500 {
			pnl -= 17500 - price
		}
		if price > 19000 {
			pnl -= (price - 19000) - (price - 18500)
		} else if price > 18500 {
			pnl -= price - 18500
		}
		return pnl * 50
	}

	for _, price := range []float64{16000, 17000, 17200, 17500, 18000, 18500, 18800, 19000, 20000} {
		assert.InDelta(t, reference(price), totalPnL(legs, price), 1e-9, "price %v", price)
	}
}

func TestButterflyDoublesMiddleLeg(t *testing.T) {
	legs, err := BuildStrategyLegs("butterfly-spread", map[string]any{"lotSize": 50.0}, 18000)
	require.NoError(t, err)
	require.Len(t, legs, 3)

	assert.Equal(t, interfaces.DirectionShort, legs[1].Direction)
	assert.Equal(t, 100.0, legs[1].ContractSize)
	assert.Equal(t, 50.0, legs[0].ContractSize)
	assert.Equal(t, 50.0, legs[2].ContractSize)
}

func TestCollarLegs(t *testing.T) {
	legs, err := BuildStrategyLegs("collar", map[string]any{
		"futuresPrice": 18000.0,
		"putStrike":    17500.0,
		"putPremium":   150.0,
		"callStrike":   18500.0,
		"callPremium":  150.0,
		"lotSize":      50.0,
	}, 18000)
	require.NoError(t, err)
	require.Len(t, legs, 3)

	// Downside is floored by the long put...
	downside := totalPnL(legs, 15000)
	assert.InDelta(t, totalPnL(legs, 16000), downside, 1e-9)

	// ...and upside is capped by the short call
	upside := totalPnL(legs, 20000)
	assert.InDelta(t, totalPnL(legs, 21000), upside, 1e-9)
	assert.Greater(t, upside, downside)
}

func TestBearPutSpread(t *testing.T) {
	legs, err := BuildStrategyLegs("bear-put-spread", map[string]any{
		"longPutStrike":   18000.0,
		"shortPutStrike":  17000.0,
		"longPutPremium":  300.0,
		"shortPutPremium": 150.0,
		"lotSize":         50.0,
	}, 18000)
	require.NoError(t, err)

	// Max profit when the market falls through both strikes:
	// (strike width - net debit) * lot
	maxProfit := totalPnL(legs, 16000)
	assert.InDelta(t, (1000-(300-150))*50, maxProfit, 1e-9)
	// Max loss above the long strike is the net debit
	assert.InDelta(t, (150-300)*50, totalPnL(legs, 19000), 1e-9)
}

func TestUnknownStrategyType(t *testing.T) {
	_, err := BuildStrategyLegs("calendar-spread", nil, 18000)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParamBagFallbacks(t *testing.T) {
	p := paramBag{values: map[string]any{
		"number":  42.5,
		"integer": 7,
		"text":    "12.25",
		"junk":    "not-a-number",
		"nothing": nil,
	}}

	assert.Equal(t, 42.5, p.float("number", 1))
	assert.Equal(t, 7.0, p.float("integer", 1))
	assert.Equal(t, 12.25, p.float("text", 1))
	assert.Equal(t, 1.0, p.float("junk", 1))
	assert.Equal(t, 1.0, p.float("nothing", 1))
	assert.Equal(t, 1.0, p.float("missing", 1))
}

func TestBullCallSpreadMatchesOriginalFormula(t *testing.T) {
	legs, err := BuildStrategyLegs("bull-call-spread", map[string]any{
		"longCallStrike":   18000.0,
		"shortCallStrike":  19000.0,
		"longCallPremium":  300.0,
		"shortCallPremium": 150.0,
		"lotSize":          50.0,
	}, 18000)
	require.NoError(t, err)

	reference := func(price float64) float64 {
		long := math.Max(0, price-18000) - 300
		short := 150 - math.Max(0, price-19000)
		return (long + short) * 50
	}

	for _, price := range []float64{17000, 18000, 18150, 18500, 19000, 20000} {
		assert.InDelta(t, reference(price), totalPnL(legs, price), 1e-9, "price %v", price)
	}
}
