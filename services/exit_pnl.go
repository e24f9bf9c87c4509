package services

import (
	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// ComputeExitPnL builds the realized-P&L report from the legs' exit
// prices. Only legs with a defined, nonzero exit price contribute;
// everything else is excluded so partial exits come out naturally.
//
// Exit-price semantics differ by instrument kind and the difference is
// load-bearing: for futures the exit price is the underlying price the
// position was closed at, for options it is the option's own market
// premium at exit. Never collapse the two.
func ComputeExitPnL(legs []interfaces.Leg, cfg GridConfig) interfaces.ExitPnLReport {
	report := interfaces.ExitPnLReport{Legs: []interfaces.LegExitPnL{}}

	total := 0.0
	for _, leg := range legs {
		if leg.ExitPrice == nil || *leg.ExitPrice == 0 {
			continue
		}
		exit := *leg.ExitPrice

		var pnl float64
		switch leg.InstrumentKind {
		case interfaces.InstrumentFuture:
			pnl = (exit - leg.ReferencePrice) * leg.ContractSize
			if leg.Direction == interfaces.DirectionShort {
				pnl = -pnl
			}
		case interfaces.InstrumentCall, interfaces.InstrumentPut:
			if leg.Direction == interfaces.DirectionShort {
				pnl = (leg.Premium - exit) * leg.ContractSize
			} else {
				pnl = (exit - leg.Premium) * leg.ContractSize
			}
		default:
			continue
		}

		pnl = roundTo(pnl, cfg.Precision)
		total += pnl
		report.Legs = append(report.Legs, interfaces.LegExitPnL{
			LegID:     leg.ID,
			ExitPrice: exit,
			PnL:       pnl,
		})
	}

	report.TotalPnL = roundTo(total, cfg.Precision)
	return report
}
