package interfaces

// InstrumentKind identifies what a leg trades
type InstrumentKind string

const (
	InstrumentCall   InstrumentKind = "CALL"
	InstrumentPut    InstrumentKind = "PUT"
	InstrumentFuture InstrumentKind = "FUTURE"
)

// Direction is the side of a leg
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Leg represents one option or futures position within a strategy.
// Numeric fields are permissive: a missing field is zero and the leg
// simply contributes nothing through it. Required-field validation
// belongs to the controllers, not here.
type Leg struct {
	ID             string         `json:"id,omitempty"`
	InstrumentKind InstrumentKind `json:"instrument_kind"`
	Direction      Direction      `json:"direction"`

	// Options fields
	StrikePrice float64 `json:"strike_price,omitempty"`
	Premium     float64 `json:"premium,omitempty"`

	// Futures entry price
	ReferencePrice float64 `json:"reference_price,omitempty"`

	ContractSize float64 `json:"contract_size,omitempty"`

	// Optional exit data; ExitDate is opaque pass-through and never
	// read by any calculation
	ExitPrice *float64 `json:"exit_price,omitempty"`
	ExitDate  string   `json:"exit_date,omitempty"`
}

// PayoffPoint is one sampled (settlement price, total pnl) pair
type PayoffPoint struct {
	Price float64 `json:"price"`
	PnL   float64 `json:"pnl"`
}

// PayoffCurve is an ordered series of points with strictly increasing
// prices and bounded length
type PayoffCurve struct {
	Points []PayoffPoint `json:"points"`
}

// CurveAnalysis summarizes a built curve: interpolated break-even
// prices plus the extremes over the sampled window
type CurveAnalysis struct {
	BreakEvens []float64 `json:"break_evens"`
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
}

// LegExitPnL is the realized result of closing a single leg
type LegExitPnL struct {
	LegID     string  `json:"leg_id,omitempty"`
	ExitPrice float64 `json:"exit_price"`
	PnL       float64 `json:"pnl"`
}

// ExitPnLReport holds realized P&L for every leg that carries a
// nonzero exit price; legs without one are absent entirely
type ExitPnLReport struct {
	Legs     []LegExitPnL `json:"legs"`
	TotalPnL float64      `json:"total_pnl"`
}

// SavedStrategy is a persisted strategy definition. Parameters and
// CustomLegs are stored as-is and only interpreted when the strategy
// is replayed through the payoff calculation.
type SavedStrategy struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	StrategyType string         `json:"strategy_type"`
	EntryDate    string         `json:"entry_date"`
	ExpiryDate   string         `json:"expiry_date"`
	Parameters   map[string]any `json:"parameters"`
	CustomLegs   []Leg          `json:"custom_legs,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
}
