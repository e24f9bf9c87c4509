package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
)

// QuoteController exposes underlying-price lookups
type QuoteController struct {
	quoteService interfaces.QuoteService
}

// NewQuoteController creates a new quote controller. The quote
// service may be nil when no market-data credentials are configured.
func NewQuoteController(quoteService interfaces.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
	}
}

// HandleLatestQuote returns the latest trade price for a symbol
// GET /api/v1/quotes/:symbol
func (qc *QuoteController) HandleLatestQuote(c *gin.Context) {
	if qc.quoteService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "No quote provider configured",
		})
		return
	}

	symbol := c.Param("symbol")
	price, err := qc.quoteService.LatestPrice(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to fetch quote",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol": symbol,
		"price":  price,
	})
}
