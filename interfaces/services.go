package interfaces

import "context"

// StorageService defines the interface for strategy persistence
type StorageService interface {
	SaveStrategy(strategy *SavedStrategy) (*SavedStrategy, error)
	GetStrategy(id uint) (*SavedStrategy, error)
	ListStrategies(skip, limit int) ([]*SavedStrategy, error)
	UpdateStrategy(id uint, update *SavedStrategy) (*SavedStrategy, error)
	DeleteStrategy(id uint) error
}

// QuoteService resolves the latest traded price of an underlying.
// Used by the boundary layer when a request names a symbol instead of
// supplying an explicit underlying price; the engine itself only ever
// sees the resolved number.
type QuoteService interface {
	LatestPrice(ctx context.Context, symbol string) (float64, error)
}
