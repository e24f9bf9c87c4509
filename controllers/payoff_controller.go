package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Vinith37/Option-Strategy-sub001/services"
)

// PayoffController handles payoff calculation requests
type PayoffController struct {
	payoffService *services.PayoffService
	logger        *logrus.Logger
}

// NewPayoffController creates a new payoff controller
func NewPayoffController(payoffService *services.PayoffService) *PayoffController {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &PayoffController{
		payoffService: payoffService,
		logger:        logger,
	}
}

// HandleCalculatePayoff calculates the payoff curve for a strategy
// POST /api/v1/payoff/calculate
func (pc *PayoffController) HandleCalculatePayoff(c *gin.Context) {
	var req services.PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	resp, err := pc.payoffService.Calculate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStrategy) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Unknown strategy type",
				"details": err.Error(),
			})
			return
		}

		pc.logger.WithError(err).Error("Payoff calculation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to calculate payoff",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
