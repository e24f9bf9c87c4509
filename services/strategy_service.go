package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// CreateStrategyRequest carries a new strategy definition
type CreateStrategyRequest struct {
	Name         string           `json:"name" binding:"required"`
	StrategyType string           `json:"strategy_type" binding:"required"`
	EntryDate    string           `json:"entry_date"`
	ExpiryDate   string           `json:"expiry_date"`
	Parameters   map[string]any   `json:"parameters"`
	CustomLegs   []interfaces.Leg `json:"custom_legs,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// UpdateStrategyRequest carries a partial update; empty fields are
// left untouched
type UpdateStrategyRequest struct {
	Name         string           `json:"name,omitempty"`
	StrategyType string           `json:"strategy_type,omitempty"`
	EntryDate    string           `json:"entry_date,omitempty"`
	ExpiryDate   string           `json:"expiry_date,omitempty"`
	Parameters   map[string]any   `json:"parameters,omitempty"`
	CustomLegs   []interfaces.Leg `json:"custom_legs,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// StrategyService manages saved strategy definitions. Persistence is
// the storage layer's job; this service adds validation, pagination
// clamping, and logging.
type StrategyService struct {
	storage interfaces.StorageService
	logger  *logrus.Logger
}

// NewStrategyService creates a new strategy service
func NewStrategyService(storage interfaces.StorageService) *StrategyService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &StrategyService{
		storage: storage,
		logger:  logger,
	}
}

// CreateStrategy validates and persists a new strategy
func (ss *StrategyService) CreateStrategy(req *CreateStrategyRequest) (*interfaces.SavedStrategy, error) {
	if req.StrategyType != StrategyTypeCustom {
		// Unknown named types would only fail at calculation time;
		// reject them up front instead.
		if _, err := BuildStrategyLegs(req.StrategyType, req.Parameters, DefaultUnderlyingPrice); err != nil {
			return nil, err
		}
	}

	strategy, err := ss.storage.SaveStrategy(&interfaces.SavedStrategy{
		Name:         req.Name,
		StrategyType: req.StrategyType,
		EntryDate:    req.EntryDate,
		ExpiryDate:   req.ExpiryDate,
		Parameters:   req.Parameters,
		CustomLegs:   req.CustomLegs,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}

	ss.logger.WithFields(logrus.Fields{
		"id":   strategy.ID,
		"name": strategy.Name,
		"type": strategy.StrategyType,
	}).Info("Strategy created")

	return strategy, nil
}

// GetStrategy fetches one saved strategy
func (ss *StrategyService) GetStrategy(id uint) (*interfaces.SavedStrategy, error) {
	return ss.storage.GetStrategy(id)
}

// ListStrategies returns saved strategies with pagination
func (ss *StrategyService) ListStrategies(skip, limit int) ([]*interfaces.SavedStrategy, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return ss.storage.ListStrategies(skip, limit)
}

// UpdateStrategy applies a partial update to a saved strategy
func (ss *StrategyService) UpdateStrategy(id uint, req *UpdateStrategyRequest) (*interfaces.SavedStrategy, error) {
	strategy, err := ss.storage.UpdateStrategy(id, &interfaces.SavedStrategy{
		Name:         req.Name,
		StrategyType: req.StrategyType,
		EntryDate:    req.EntryDate,
		ExpiryDate:   req.ExpiryDate,
		Parameters:   req.Parameters,
		CustomLegs:   req.CustomLegs,
		Notes:        req.Notes,
	})
	if err != nil {
		return nil, err
	}

	ss.logger.WithField("id", id).Info("Strategy updated")
	return strategy, nil
}

// DeleteStrategy removes a saved strategy
func (ss *StrategyService) DeleteStrategy(id uint) error {
	if err := ss.storage.DeleteStrategy(id); err != nil {
		return err
	}

	ss.logger.WithField("id", id).Info("Strategy deleted")
	return nil
}
