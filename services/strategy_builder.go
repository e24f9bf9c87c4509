package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// StrategyTypeCustom marks a request carrying an explicit leg list
// instead of a named-strategy parameter bag.
const StrategyTypeCustom = "custom-strategy"

// ErrUnknownStrategy is returned for a strategy type the builder has
// no construction for.
var ErrUnknownStrategy = errors.New("unknown strategy type")

// BuildStrategyLegs translates a named strategy's parameter bag into
// the equivalent leg list. Named strategies are nothing but canned leg
// constructions: once built, they flow through exactly the same
// evaluation as a custom leg list. Parameter defaults are anchored on
// the caller's underlying price, matching the interactive defaults.
func BuildStrategyLegs(strategyType string, params map[string]any, underlying float64) ([]interfaces.Leg, error) {
	p := paramBag{values: params}

	switch strategyType {
	case "covered-call":
		return []interfaces.Leg{
			futureLeg("futures", interfaces.DirectionLong,
				p.float("futuresPrice", underlying), p.float("futuresLotSize", 50)),
			optionLeg("short-call", interfaces.InstrumentCall, interfaces.DirectionShort,
				p.float("callStrike", underlying+500), p.float("premium", 200), p.float("callLotSize", 50)),
		}, nil

	case "protective-put":
		lot := p.float("lotSize", 50)
		return []interfaces.Leg{
			futureLeg("stock", interfaces.DirectionLong, p.float("stockPrice", underlying), lot),
			optionLeg("long-put", interfaces.InstrumentPut, interfaces.DirectionLong,
				p.float("putStrike", underlying-500), p.float("putPremium", 200), lot),
		}, nil

	case "bull-call-spread":
		lot := p.float("lotSize", 50)
		return []interfaces.Leg{
			optionLeg("long-call", interfaces.InstrumentCall, interfaces.DirectionLong,
				p.float("longCallStrike", underlying), p.float("longCallPremium", 300), lot),
			optionLeg("short-call", interfaces.InstrumentCall, interfaces.DirectionShort,
				p.float("shortCallStrike", underlying+1000), p.float("shortCallPremium", 150), lot),
		}, nil

	case "bear-put-spread":
		lot := p.float("lotSize", 50)
		return []interfaces.Leg{
			optionLeg("long-put", interfaces.InstrumentPut, interfaces.DirectionLong,
				p.float("longPutStrike", underlying), p.float("longPutPremium", 300), lot),
			optionLeg("short-put", interfaces.InstrumentPut, interfaces.DirectionShort,
				p.float("shortPutStrike", underlying-1000), p.float("shortPutPremium", 150), lot),
		}, nil

	case "long-straddle":
		lot := p.float("lotSize", 50)
		strike := p.float("strike", underlying)
		return []interfaces.Leg{
			optionLeg("long-call", interfaces.InstrumentCall, interfaces.DirectionLong,
				strike, p.float("callPremium", 300), lot),
			optionLeg("long-put", interfaces.InstrumentPut, interfaces.DirectionLong,
				strike, p.float("putPremium", 300), lot),
		}, nil

	case "iron-condor":
		lot := p.float("lotSize", 50)
		// The bag exposes one net premium for the whole structure; it
		// rides on the short call leg and the other premiums stay
		// zero, which sums to the same P&L at every price.
		return []interfaces.Leg{
			optionLeg("put-buy", interfaces.InstrumentPut, interfaces.DirectionLong,
				p.float("putBuyStrike", underlying-1000), 0, lot),
			optionLeg("put-sell", interfaces.InstrumentPut, interfaces.DirectionShort,
				p.float("putSellStrike", underlying-500), 0, lot),
			optionLeg("call-sell", interfaces.InstrumentCall, interfaces.DirectionShort,
				p.float("callSellStrike", underlying+500), p.float("netPremium", 100), lot),
			optionLeg("call-buy", interfaces.InstrumentCall, interfaces.DirectionLong,
				p.float("callBuyStrike", underlying+1000), 0, lot),
		}, nil

	case "butterfly-spread":
		lot := p.float("lotSize", 50)
		return []interfaces.Leg{
			optionLeg("lower-call", interfaces.InstrumentCall, interfaces.DirectionLong,
				p.float("lowerStrike", underlying-500), p.float("lowerPremium", 300), lot),
			optionLeg("middle-calls", interfaces.InstrumentCall, interfaces.DirectionShort,
				p.float("middleStrike", underlying), p.float("middlePremium", 200), 2*lot),
			optionLeg("upper-call", interfaces.InstrumentCall, interfaces.DirectionLong,
				p.float("upperStrike", underlying+500), p.float("upperPremium", 100), lot),
		}, nil

	case "collar":
		lot := p.float("lotSize", 50)
		return []interfaces.Leg{
			futureLeg("futures", interfaces.DirectionLong, p.float("futuresPrice", underlying), lot),
			optionLeg("long-put", interfaces.InstrumentPut, interfaces.DirectionLong,
				p.float("putStrike", underlying-500), p.float("putPremium", 150), lot),
			optionLeg("short-call", interfaces.InstrumentCall, interfaces.DirectionShort,
				p.float("callStrike", underlying+500), p.float("callPremium", 150), lot),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategyType)
}

func futureLeg(id string, dir interfaces.Direction, reference, size float64) interfaces.Leg {
	return interfaces.Leg{
		ID:             id,
		InstrumentKind: interfaces.InstrumentFuture,
		Direction:      dir,
		ReferencePrice: reference,
		ContractSize:   size,
	}
}

func optionLeg(id string, kind interfaces.InstrumentKind, dir interfaces.Direction, strike, premium, size float64) interfaces.Leg {
	return interfaces.Leg{
		ID:             id,
		InstrumentKind: kind,
		Direction:      dir,
		StrikePrice:    strike,
		Premium:        premium,
		ContractSize:   size,
	}
}

// paramBag reads numeric values out of a loosely-typed parameter map.
// Values arrive as JSON numbers or numeric strings depending on the
// client; both coerce, anything else falls back.
type paramBag struct {
	values map[string]any
}

func (p paramBag) float(key string, fallback float64) float64 {
	raw, ok := p.values[key]
	if !ok || raw == nil {
		return fallback
	}

	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
