package services

import (
	"math"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// GridConfig holds the tunables for scan-window generation. The same
// config drives both the anchor-derived path and the explicit
// center/range override path, so every curve goes through the same
// point-count ceiling.
type GridConfig struct {
	// TargetPoints is the point count the step size aims for before
	// nice-increment snapping.
	TargetPoints int
	// MaxPoints is the hard ceiling on sampled points. This is the
	// only defense against anchors spread across many orders of
	// magnitude, so it must never be disabled.
	MaxPoints int
	// Precision is the decimal precision prices and pnl values are
	// rounded to.
	Precision int32
	// FallbackPrice anchors the degenerate single-point grid used
	// when no leg carries a positive strike or reference price.
	FallbackPrice float64
	// SingleAnchorSpread widens a zero-width anchor range (all legs
	// at one price) to this fraction of that price.
	SingleAnchorSpread float64
	// OverridePoints is the fixed sample count of the center/range
	// override window.
	OverridePoints int
}

// DefaultGridConfig returns the production grid settings.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		TargetPoints:       110,
		MaxPoints:          500,
		Precision:          2,
		FallbackPrice:      100,
		SingleAnchorSpread: 0.10,
		OverridePoints:     50,
	}
}

// PriceGrid is a bounded settlement-price scan window. A Step of zero
// marks the degenerate single-point grid.
type PriceGrid struct {
	Start float64
	End   float64
	Step  float64
}

// Degenerate reports whether the grid collapses to a single sample.
func (g PriceGrid) Degenerate() bool {
	return g.Step <= 0 || g.End <= g.Start
}

// GridOverride lets a caller pin the scan window to an explicit
// center price and percentage range instead of deriving it from the
// legs' prices.
type GridOverride struct {
	CenterPrice  float64
	RangePercent float64
}

// GenerateGrid derives the scan window from the legs' anchor prices:
// strikes for options, reference prices for futures. The window covers
// every anchor with a magnitude-tiered buffer, starts and ends on
// human-readable ticks, and its step is snapped to a 1/5/10-scaled
// increment.
func GenerateGrid(legs []interfaces.Leg, cfg GridConfig) PriceGrid {
	minAnchor, maxAnchor, found := anchorRange(legs)
	if !found {
		return PriceGrid{Start: cfg.FallbackPrice, End: cfg.FallbackPrice}
	}

	rawRange := maxAnchor - minAnchor
	if rawRange == 0 {
		// Single-strike strategies still need a visible curve.
		rawRange = maxAnchor * cfg.SingleAnchorSpread
	}

	buffer := rawRange * bufferFraction(maxAnchor)
	if floor := maxAnchor * 0.05; buffer < floor {
		buffer = floor
	}

	unit := roundingUnit(maxAnchor)
	start := math.Floor((minAnchor-buffer)/unit) * unit
	if start < unit {
		start = unit
	}
	end := math.Ceil((maxAnchor+buffer)/unit) * unit
	if end <= start {
		end = start + unit
	}

	step := niceStep((end - start) / float64(cfg.TargetPoints))
	if maxStep := (end - start) / float64(cfg.MaxPoints-1); step < maxStep {
		step = niceStep(maxStep)
	}

	return PriceGrid{Start: start, End: end, Step: step}
}

// GenerateOverrideGrid builds the window centered on an explicit
// price, spanning ±rangePercent, with a fixed sample count. Matches
// the slider-driven interactive variants.
func GenerateOverrideGrid(override GridOverride, cfg GridConfig) PriceGrid {
	if override.CenterPrice <= 0 {
		return PriceGrid{Start: cfg.FallbackPrice, End: cfg.FallbackPrice}
	}

	pct := override.RangePercent
	if pct <= 0 {
		pct = 30
	}

	start := override.CenterPrice * (1 - pct/100)
	end := override.CenterPrice * (1 + pct/100)
	if start <= 0 {
		start = end / float64(cfg.OverridePoints)
	}

	points := cfg.OverridePoints
	if points < 2 {
		points = 2
	}
	if points > cfg.MaxPoints {
		points = cfg.MaxPoints
	}

	return PriceGrid{Start: start, End: end, Step: (end - start) / float64(points-1)}
}

// anchorRange collects the positive strike/reference prices across the
// legs. Strikes count for options, reference prices for futures; a leg
// without a usable price contributes nothing.
func anchorRange(legs []interfaces.Leg) (minAnchor, maxAnchor float64, found bool) {
	collect := func(price float64) {
		if price <= 0 {
			return
		}
		if !found || price < minAnchor {
			minAnchor = price
		}
		if !found || price > maxAnchor {
			maxAnchor = price
		}
		found = true
	}

	for _, leg := range legs {
		switch leg.InstrumentKind {
		case interfaces.InstrumentCall, interfaces.InstrumentPut:
			collect(leg.StrikePrice)
		case interfaces.InstrumentFuture:
			collect(leg.ReferencePrice)
		}
	}
	return minAnchor, maxAnchor, found
}

// bufferFraction widens low-priced instruments more than high-priced
// ones, keeping the visible wings proportionate.
func bufferFraction(price float64) float64 {
	switch {
	case price < 100:
		return 0.50
	case price < 1000:
		return 0.30
	case price < 10000:
		return 0.20
	default:
		return 0.10
	}
}

// roundingUnit picks the tick the window edges snap to, scaled so the
// resulting bounds stay human-readable at any price magnitude.
func roundingUnit(price float64) float64 {
	switch {
	case price < 1:
		return 0.01
	case price < 10:
		return 0.1
	case price < 100:
		return 1
	case price < 1000:
		return 5
	case price < 10000:
		return 10
	case price < 100000:
		return 50
	default:
		return 100
	}
}

// niceStep snaps a raw step up to the nearest 1/5/10-scaled increment.
// Snapping up only ever reduces the point count, so the ceiling holds.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	magnitude := math.Pow(10, exp)
	base := raw / magnitude

	switch {
	case base <= 1:
		return magnitude
	case base <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}
