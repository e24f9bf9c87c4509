package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// EvaluateLeg returns the signed P&L contribution of one leg at a
// hypothetical settlement price. Intrinsic value only: no time value,
// no volatility. Zeroed fields contribute zero rather than erroring.
func EvaluateLeg(leg interfaces.Leg, price float64) float64 {
	switch leg.InstrumentKind {
	case interfaces.InstrumentFuture:
		pnl := (price - leg.ReferencePrice) * leg.ContractSize
		if leg.Direction == interfaces.DirectionShort {
			pnl = -pnl
		}
		return pnl

	case interfaces.InstrumentCall:
		intrinsic := math.Max(0, price-leg.StrikePrice)
		return optionPnL(leg, intrinsic)

	case interfaces.InstrumentPut:
		intrinsic := math.Max(0, leg.StrikePrice-price)
		return optionPnL(leg, intrinsic)
	}
	return 0
}

func optionPnL(leg interfaces.Leg, intrinsic float64) float64 {
	if leg.Direction == interfaces.DirectionShort {
		return (leg.Premium - intrinsic) * leg.ContractSize
	}
	return (intrinsic - leg.Premium) * leg.ContractSize
}

// BuildCurve samples the grid inclusively of its end, sums leg
// contributions at each price, and rounds both coordinates to the
// configured precision. Sample prices are rounded before evaluation so
// step accumulation can never produce duplicate or jittery ticks; any
// sample that rounds onto its predecessor is dropped, keeping the
// price sequence strictly increasing.
func BuildCurve(legs []interfaces.Leg, grid PriceGrid, cfg GridConfig) interfaces.PayoffCurve {
	if grid.Degenerate() {
		return interfaces.PayoffCurve{Points: []interfaces.PayoffPoint{
			{Price: roundTo(grid.Start, cfg.Precision), PnL: 0},
		}}
	}

	points := make([]interfaces.PayoffPoint, 0, cfg.TargetPoints+1)
	for i := 0; ; i++ {
		price := grid.Start + grid.Step*float64(i)
		if price > grid.End {
			break
		}
		if len(points) >= cfg.MaxPoints {
			break
		}

		price = roundTo(price, cfg.Precision)
		if n := len(points); n > 0 && price <= points[n-1].Price {
			continue
		}

		total := 0.0
		for _, leg := range legs {
			total += EvaluateLeg(leg, price)
		}
		points = append(points, interfaces.PayoffPoint{
			Price: price,
			PnL:   roundTo(total, cfg.Precision),
		})
	}

	// Close the window on its end price even when the step does not
	// land there exactly.
	endPrice := roundTo(grid.End, cfg.Precision)
	if n := len(points); n < cfg.MaxPoints && (n == 0 || points[n-1].Price < endPrice) {
		total := 0.0
		for _, leg := range legs {
			total += EvaluateLeg(leg, endPrice)
		}
		points = append(points, interfaces.PayoffPoint{
			Price: endPrice,
			PnL:   roundTo(total, cfg.Precision),
		})
	}

	return interfaces.PayoffCurve{Points: points}
}

// roundTo rounds half away from zero at the given decimal precision.
// Going through decimal avoids the drift a pure float round picks up
// on accumulated steps.
func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
