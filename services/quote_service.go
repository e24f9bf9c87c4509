package services

import (
	"context"
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/sirupsen/logrus"
)

// AlpacaQuoteService resolves underlying prices from Alpaca market
// data. It backs the optional symbol field on payoff requests; the
// engine itself never talks to it.
type AlpacaQuoteService struct {
	client *marketdata.Client
	logger *logrus.Logger
}

// NewAlpacaQuoteService creates a quote service with the given API
// credentials.
func NewAlpacaQuoteService(apiKey, secretKey string) *AlpacaQuoteService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &AlpacaQuoteService{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: secretKey,
		}),
		logger: logger,
	}
}

// LatestPrice returns the symbol's latest trade price.
func (qs *AlpacaQuoteService) LatestPrice(ctx context.Context, symbol string) (float64, error) {
	trade, err := qs.client.GetLatestTrade(symbol, marketdata.GetLatestTradeRequest{})
	if err != nil {
		return 0, fmt.Errorf("failed to get latest trade for %s: %w", symbol, err)
	}

	qs.logger.WithFields(logrus.Fields{
		"symbol": symbol,
		"price":  trade.Price,
	}).Info("Resolved underlying price")

	return trade.Price, nil
}
