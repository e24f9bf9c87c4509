package services

import (
	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// AnalyzeCurve scans a built curve for break-even prices and the P&L
// extremes over the sampled window. A break-even is recorded whenever
// the pnl changes sign or touches zero between consecutive points;
// flat segments (equal pnl on both ends) record nothing. Crossings are
// linearly interpolated, so a break-even is not necessarily a sampled
// price.
func AnalyzeCurve(curve interfaces.PayoffCurve, cfg GridConfig) interfaces.CurveAnalysis {
	analysis := interfaces.CurveAnalysis{BreakEvens: []float64{}}
	if len(curve.Points) == 0 {
		return analysis
	}

	analysis.MaxProfit = curve.Points[0].PnL
	analysis.MaxLoss = curve.Points[0].PnL
	for _, p := range curve.Points[1:] {
		if p.PnL > analysis.MaxProfit {
			analysis.MaxProfit = p.PnL
		}
		if p.PnL < analysis.MaxLoss {
			analysis.MaxLoss = p.PnL
		}
	}

	record := func(price float64) {
		price = roundTo(price, cfg.Precision)
		if n := len(analysis.BreakEvens); n > 0 && analysis.BreakEvens[n-1] == price {
			// Adjacent segments can land on the same sampled price;
			// keep one.
			return
		}
		analysis.BreakEvens = append(analysis.BreakEvens, price)
	}

	for i := 0; i < len(curve.Points)-1; i++ {
		p1, p2 := curve.Points[i], curve.Points[i+1]
		y1, y2 := p1.PnL, p2.PnL

		switch {
		case y1 == y2:
			// Zero slope: no crossing here.
		case y1 == 0:
			record(p1.Price)
		case y2 == 0:
			record(p2.Price)
		case (y1 < 0) != (y2 < 0):
			record(p1.Price - y1*(p2.Price-p1.Price)/(y2-y1))
		}
	}

	return analysis
}
