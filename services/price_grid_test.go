package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

func gridPointCount(g PriceGrid) int {
	if g.Degenerate() {
		return 1
	}
	return int(math.Floor((g.End-g.Start)/g.Step+1e-9)) + 1
}

func TestGenerateGridCoversAnchors(t *testing.T) {
	cfg := DefaultGridConfig()
	legs := []interfaces.Leg{
		{InstrumentKind: interfaces.InstrumentPut, Direction: interfaces.DirectionLong, StrikePrice: 17000},
		{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionShort, StrikePrice: 19000},
		{InstrumentKind: interfaces.InstrumentFuture, Direction: interfaces.DirectionLong, ReferencePrice: 18000},
	}

	grid := GenerateGrid(legs, cfg)

	require.False(t, grid.Degenerate())
	assert.Less(t, grid.Start, 17000.0)
	assert.Greater(t, grid.End, 19000.0)
	assert.Positive(t, grid.Step)
	assert.LessOrEqual(t, gridPointCount(grid), cfg.MaxPoints)
}

func TestGenerateGridSingleAnchor(t *testing.T) {
	cfg := DefaultGridConfig()
	legs := []interfaces.Leg{
		{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionLong, StrikePrice: 18000},
		{InstrumentKind: interfaces.InstrumentPut, Direction: interfaces.DirectionLong, StrikePrice: 18000},
	}

	grid := GenerateGrid(legs, cfg)

	// A one-strike strategy still gets a visible window
	require.False(t, grid.Degenerate())
	assert.Less(t, grid.Start, 18000.0)
	assert.Greater(t, grid.End, 18000.0)
}

func TestGenerateGridNoUsableAnchors(t *testing.T) {
	cfg := DefaultGridConfig()

	for name, legs := range map[string][]interfaces.Leg{
		"no legs":     nil,
		"zero prices": {{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionLong, Premium: 100}},
	} {
		t.Run(name, func(t *testing.T) {
			grid := GenerateGrid(legs, cfg)
			assert.True(t, grid.Degenerate())
			assert.Equal(t, cfg.FallbackPrice, grid.Start)
		})
	}
}

func TestGenerateGridPathologicalSpread(t *testing.T) {
	cfg := DefaultGridConfig()
	legs := []interfaces.Leg{
		{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionLong, StrikePrice: 0.5},
		{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionShort, StrikePrice: 50000000},
	}

	grid := GenerateGrid(legs, cfg)

	require.False(t, grid.Degenerate())
	assert.LessOrEqual(t, gridPointCount(grid), cfg.MaxPoints)
	assert.Positive(t, grid.Start)
}

func TestGenerateGridLowPricedInstrument(t *testing.T) {
	cfg := DefaultGridConfig()
	legs := []interfaces.Leg{
		{InstrumentKind: interfaces.InstrumentCall, Direction: interfaces.DirectionLong, StrikePrice: 1.5},
		{InstrumentKind: interfaces.InstrumentPut, Direction: interfaces.DirectionLong, StrikePrice: 2.5},
	}

	grid := GenerateGrid(legs, cfg)

	require.False(t, grid.Degenerate())
	assert.Positive(t, grid.Start)
	assert.Less(t, grid.Start, 1.5)
	assert.Greater(t, grid.End, 2.5)
	assert.LessOrEqual(t, gridPointCount(grid), cfg.MaxPoints)
}

func TestGenerateOverrideGrid(t *testing.T) {
	cfg := DefaultGridConfig()

	grid := GenerateOverrideGrid(GridOverride{CenterPrice: 18000, RangePercent: 30}, cfg)

	require.False(t, grid.Degenerate())
	assert.InDelta(t, 12600, grid.Start, 1e-9)
	assert.InDelta(t, 23400, grid.End, 1e-9)
	assert.Equal(t, cfg.OverridePoints, gridPointCount(grid))
}

func TestGenerateOverrideGridDefaultRange(t *testing.T) {
	cfg := DefaultGridConfig()

	grid := GenerateOverrideGrid(GridOverride{CenterPrice: 1000}, cfg)

	// Range percent falls back to 30
	assert.InDelta(t, 700, grid.Start, 1e-9)
	assert.InDelta(t, 1300, grid.End, 1e-9)
}

func TestGenerateOverrideGridInvalidCenter(t *testing.T) {
	cfg := DefaultGridConfig()

	grid := GenerateOverrideGrid(GridOverride{CenterPrice: 0, RangePercent: 30}, cfg)

	assert.True(t, grid.Degenerate())
	assert.Equal(t, cfg.FallbackPrice, grid.Start)
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.3, 0.5},
		{1, 1},
		{3.2, 5},
		{7.27, 10},
		{12, 50},
		{42, 50},
		{80, 100},
		{19999, 50000},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, niceStep(tt.raw), 1e-9, "niceStep(%v)", tt.raw)
	}
}
