package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Vinith37/Option-Strategy-sub001/controllers"
	"github.com/Vinith37/Option-Strategy-sub001/database"
	"github.com/Vinith37/Option-Strategy-sub001/interfaces"
	"github.com/Vinith37/Option-Strategy-sub001/services"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	dbPath := getEnv("DB_PATH", "data/strategies.db")
	storage, err := database.NewLocalStorage(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}
	defer storage.Close()

	var quoteService interfaces.QuoteService
	apiKey := os.Getenv("ALPACA_API_KEY")
	secretKey := os.Getenv("ALPACA_SECRET_KEY")
	if apiKey != "" && secretKey != "" {
		quoteService = services.NewAlpacaQuoteService(apiKey, secretKey)
		logger.Info("Alpaca quote service configured")
	} else {
		logger.Info("No Alpaca credentials, symbol quotes disabled")
	}

	payoffService := services.NewPayoffService(quoteService)
	strategyService := services.NewStrategyService(storage)

	payoffController := controllers.NewPayoffController(payoffService)
	strategyController := controllers.NewStrategyController(strategyService)
	quoteController := controllers.NewQuoteController(quoteService)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "option-strategy-visualizer",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/payoff/calculate", payoffController.HandleCalculatePayoff)

		v1.POST("/strategies", strategyController.HandleCreateStrategy)
		v1.GET("/strategies", strategyController.HandleListStrategies)
		v1.GET("/strategies/:id", strategyController.HandleGetStrategy)
		v1.PUT("/strategies/:id", strategyController.HandleUpdateStrategy)
		v1.DELETE("/strategies/:id", strategyController.HandleDeleteStrategy)

		v1.GET("/quotes/:symbol", quoteController.HandleLatestQuote)
	}

	port := getEnv("PORT", "8000")
	logger.WithField("port", port).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
