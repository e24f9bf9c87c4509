package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// DefaultUnderlyingPrice anchors named-strategy defaults when the
// caller supplies neither a price nor a symbol to quote.
const DefaultUnderlyingPrice = 18000

// PayoffRequest is a strategy descriptor: either a named strategy with
// a parameter bag, or an explicit custom leg list. Date fields are
// inert pass-through. Supplying an underlying price (or a symbol to
// resolve one from) switches the scan window to the explicit
// center/range override; otherwise the window is derived from the
// legs' own prices.
type PayoffRequest struct {
	StrategyType      string           `json:"strategy_type" binding:"required"`
	EntryDate         string           `json:"entry_date,omitempty"`
	ExpiryDate        string           `json:"expiry_date,omitempty"`
	Parameters        map[string]any   `json:"parameters,omitempty"`
	CustomLegs        []interfaces.Leg `json:"custom_legs,omitempty"`
	Symbol            string           `json:"symbol,omitempty"`
	UnderlyingPrice   float64          `json:"underlying_price,omitempty"`
	PriceRangePercent float64          `json:"price_range_percent,omitempty"`
}

// PayoffResponse carries everything the chart needs: the ordered
// curve, interpolated break-evens, window extremes, and the realized
// exit report when any leg carries exit data.
type PayoffResponse struct {
	StrategyType string                    `json:"strategy_type"`
	Points       []interfaces.PayoffPoint  `json:"points"`
	BreakEvens   []float64                 `json:"break_evens"`
	MaxProfit    float64                   `json:"max_profit"`
	MaxLoss      float64                   `json:"max_loss"`
	ExitReport   *interfaces.ExitPnLReport `json:"exit_report,omitempty"`
}

// PayoffService turns strategy descriptors into payoff curves. The
// calculation itself is pure and stateless; the service only adds
// underlying-price resolution and logging around it.
type PayoffService struct {
	grid   GridConfig
	quotes interfaces.QuoteService
	logger *logrus.Logger
}

// NewPayoffService creates a payoff service. The quote service may be
// nil; symbol resolution is then unavailable.
func NewPayoffService(quotes interfaces.QuoteService) *PayoffService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &PayoffService{
		grid:   DefaultGridConfig(),
		quotes: quotes,
		logger: logger,
	}
}

// GridConfig exposes the grid settings the service calculates with.
func (ps *PayoffService) GridConfig() GridConfig {
	return ps.grid
}

// Calculate builds the payoff curve, break-evens, and optional exit
// report for one strategy descriptor.
func (ps *PayoffService) Calculate(ctx context.Context, req *PayoffRequest) (*PayoffResponse, error) {
	center, err := ps.resolveCenter(ctx, req)
	if err != nil {
		return nil, err
	}

	var legs []interfaces.Leg
	if req.StrategyType == StrategyTypeCustom {
		legs = req.CustomLegs
	} else {
		underlying := center
		if underlying <= 0 {
			underlying = DefaultUnderlyingPrice
		}
		legs, err = BuildStrategyLegs(req.StrategyType, req.Parameters, underlying)
		if err != nil {
			return nil, err
		}
	}

	var grid PriceGrid
	if center > 0 {
		grid = GenerateOverrideGrid(GridOverride{
			CenterPrice:  center,
			RangePercent: req.PriceRangePercent,
		}, ps.grid)
	} else {
		grid = GenerateGrid(legs, ps.grid)
	}

	curve := BuildCurve(legs, grid, ps.grid)
	analysis := AnalyzeCurve(curve, ps.grid)

	resp := &PayoffResponse{
		StrategyType: req.StrategyType,
		Points:       curve.Points,
		BreakEvens:   analysis.BreakEvens,
		MaxProfit:    analysis.MaxProfit,
		MaxLoss:      analysis.MaxLoss,
	}

	if exit := ComputeExitPnL(legs, ps.grid); len(exit.Legs) > 0 {
		resp.ExitReport = &exit
	}

	ps.logger.WithFields(logrus.Fields{
		"strategy_type": req.StrategyType,
		"legs":          len(legs),
		"points":        len(resp.Points),
		"break_evens":   len(resp.BreakEvens),
	}).Info("Payoff curve calculated")

	return resp, nil
}

// resolveCenter picks the override center price: an explicit price
// wins, then a quoted symbol, then zero (no override).
func (ps *PayoffService) resolveCenter(ctx context.Context, req *PayoffRequest) (float64, error) {
	if req.UnderlyingPrice > 0 {
		return req.UnderlyingPrice, nil
	}
	if req.Symbol == "" {
		return 0, nil
	}
	if ps.quotes == nil {
		return 0, fmt.Errorf("no quote service configured for symbol %s", req.Symbol)
	}

	price, err := ps.quotes.LatestPrice(ctx, req.Symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve underlying price for %s: %w", req.Symbol, err)
	}
	return price, nil
}
