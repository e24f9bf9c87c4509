package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vinith37/Option-Strategy-sub001/services"
)

// StrategyController handles saved-strategy CRUD operations
type StrategyController struct {
	strategyService *services.StrategyService
}

// NewStrategyController creates a new strategy controller
func NewStrategyController(strategyService *services.StrategyService) *StrategyController {
	return &StrategyController{
		strategyService: strategyService,
	}
}

// HandleCreateStrategy saves a new strategy
// POST /api/v1/strategies
func (sc *StrategyController) HandleCreateStrategy(c *gin.Context) {
	var req services.CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	strategy, err := sc.strategyService.CreateStrategy(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStrategy) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Unknown strategy type",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create strategy",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Strategy created successfully",
		"strategy": strategy,
	})
}

// HandleListStrategies lists saved strategies
// GET /api/v1/strategies?skip=0&limit=100
func (sc *StrategyController) HandleListStrategies(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	strategies, err := sc.strategyService.ListStrategies(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to retrieve strategies",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(strategies),
		"strategies": strategies,
	})
}

// HandleGetStrategy retrieves a specific strategy
// GET /api/v1/strategies/:id
func (sc *StrategyController) HandleGetStrategy(c *gin.Context) {
	id, ok := sc.strategyID(c)
	if !ok {
		return
	}

	strategy, err := sc.strategyService.GetStrategy(id)
	if err != nil {
		sc.notFoundOrError(c, err)
		return
	}

	c.JSON(http.StatusOK, strategy)
}

// HandleUpdateStrategy applies a partial update to a strategy
// PUT /api/v1/strategies/:id
func (sc *StrategyController) HandleUpdateStrategy(c *gin.Context) {
	id, ok := sc.strategyID(c)
	if !ok {
		return
	}

	var req services.UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	strategy, err := sc.strategyService.UpdateStrategy(id, &req)
	if err != nil {
		sc.notFoundOrError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Strategy updated successfully",
		"strategy": strategy,
	})
}

// HandleDeleteStrategy deletes a strategy
// DELETE /api/v1/strategies/:id
func (sc *StrategyController) HandleDeleteStrategy(c *gin.Context) {
	id, ok := sc.strategyID(c)
	if !ok {
		return
	}

	if err := sc.strategyService.DeleteStrategy(id); err != nil {
		sc.notFoundOrError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Strategy deleted successfully",
	})
}

func (sc *StrategyController) strategyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "strategy ID must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

func (sc *StrategyController) notFoundOrError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Strategy not found",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Strategy operation failed",
		"details": err.Error(),
	})
}
