package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
	"github.com/Vinith37/Option-Strategy-sub001/models"
)

// LocalStorage implements the StorageService interface using SQLite
type LocalStorage struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewLocalStorage creates a new local storage service
func NewLocalStorage(dbPath string) (*LocalStorage, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open SQLite database
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate schemas
	if err := db.AutoMigrate(&models.DBStrategy{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &LocalStorage{
		db:     db,
		logger: logger,
	}, nil
}

// SaveStrategy persists a new strategy
func (s *LocalStorage) SaveStrategy(strategy *interfaces.SavedStrategy) (*interfaces.SavedStrategy, error) {
	dbStrategy, err := toDBStrategy(strategy)
	if err != nil {
		return nil, err
	}

	if result := s.db.Create(dbStrategy); result.Error != nil {
		return nil, fmt.Errorf("failed to save strategy: %w", result.Error)
	}

	s.logger.WithFields(logrus.Fields{
		"id":   dbStrategy.ID,
		"name": dbStrategy.Name,
		"type": dbStrategy.StrategyType,
	}).Info("Strategy saved")

	return fromDBStrategy(dbStrategy)
}

// GetStrategy retrieves a strategy by ID
func (s *LocalStorage) GetStrategy(id uint) (*interfaces.SavedStrategy, error) {
	var dbStrategy models.DBStrategy

	if result := s.db.First(&dbStrategy, id); result.Error != nil {
		return nil, fmt.Errorf("failed to get strategy: %w", result.Error)
	}

	return fromDBStrategy(&dbStrategy)
}

// ListStrategies retrieves strategies with pagination
func (s *LocalStorage) ListStrategies(skip, limit int) ([]*interfaces.SavedStrategy, error) {
	var dbStrategies []*models.DBStrategy

	result := s.db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&dbStrategies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", result.Error)
	}

	strategies := make([]*interfaces.SavedStrategy, 0, len(dbStrategies))
	for _, dbStrategy := range dbStrategies {
		strategy, err := fromDBStrategy(dbStrategy)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}

	return strategies, nil
}

// UpdateStrategy updates the provided fields of an existing strategy
func (s *LocalStorage) UpdateStrategy(id uint, update *interfaces.SavedStrategy) (*interfaces.SavedStrategy, error) {
	var dbStrategy models.DBStrategy

	if result := s.db.First(&dbStrategy, id); result.Error != nil {
		return nil, fmt.Errorf("failed to get strategy: %w", result.Error)
	}

	if update.Name != "" {
		dbStrategy.Name = update.Name
	}
	if update.StrategyType != "" {
		dbStrategy.StrategyType = update.StrategyType
	}
	if update.EntryDate != "" {
		dbStrategy.EntryDate = update.EntryDate
	}
	if update.ExpiryDate != "" {
		dbStrategy.ExpiryDate = update.ExpiryDate
	}
	if update.Notes != "" {
		dbStrategy.Notes = update.Notes
	}
	if update.Parameters != nil {
		raw, err := json.Marshal(update.Parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameters: %w", err)
		}
		dbStrategy.Parameters = string(raw)
	}
	if update.CustomLegs != nil {
		raw, err := json.Marshal(update.CustomLegs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode custom legs: %w", err)
		}
		dbStrategy.CustomLegs = string(raw)
	}

	if result := s.db.Save(&dbStrategy); result.Error != nil {
		return nil, fmt.Errorf("failed to update strategy: %w", result.Error)
	}

	return fromDBStrategy(&dbStrategy)
}

// DeleteStrategy deletes a strategy by ID
func (s *LocalStorage) DeleteStrategy(id uint) error {
	var dbStrategy models.DBStrategy

	if result := s.db.First(&dbStrategy, id); result.Error != nil {
		return fmt.Errorf("failed to get strategy: %w", result.Error)
	}

	if result := s.db.Delete(&dbStrategy); result.Error != nil {
		return fmt.Errorf("failed to delete strategy: %w", result.Error)
	}

	return nil
}

// Close closes the database connection
func (s *LocalStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toDBStrategy(strategy *interfaces.SavedStrategy) (*models.DBStrategy, error) {
	parameters := "{}"
	if strategy.Parameters != nil {
		raw, err := json.Marshal(strategy.Parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameters: %w", err)
		}
		parameters = string(raw)
	}

	customLegs := "[]"
	if strategy.CustomLegs != nil {
		raw, err := json.Marshal(strategy.CustomLegs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode custom legs: %w", err)
		}
		customLegs = string(raw)
	}

	return &models.DBStrategy{
		Name:         strategy.Name,
		StrategyType: strategy.StrategyType,
		EntryDate:    strategy.EntryDate,
		ExpiryDate:   strategy.ExpiryDate,
		Parameters:   parameters,
		CustomLegs:   customLegs,
		Notes:        strategy.Notes,
	}, nil
}

func fromDBStrategy(dbStrategy *models.DBStrategy) (*interfaces.SavedStrategy, error) {
	strategy := &interfaces.SavedStrategy{
		ID:           dbStrategy.ID,
		Name:         dbStrategy.Name,
		StrategyType: dbStrategy.StrategyType,
		EntryDate:    dbStrategy.EntryDate,
		ExpiryDate:   dbStrategy.ExpiryDate,
		Notes:        dbStrategy.Notes,
		CreatedAt:    dbStrategy.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    dbStrategy.UpdatedAt.Format(time.RFC3339),
	}

	if dbStrategy.Parameters != "" {
		if err := json.Unmarshal([]byte(dbStrategy.Parameters), &strategy.Parameters); err != nil {
			return nil, fmt.Errorf("failed to decode parameters: %w", err)
		}
	}
	if dbStrategy.CustomLegs != "" {
		if err := json.Unmarshal([]byte(dbStrategy.CustomLegs), &strategy.CustomLegs); err != nil {
			return nil, fmt.Errorf("failed to decode custom legs: %w", err)
		}
	}

	return strategy, nil
}
