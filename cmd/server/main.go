package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/ai"
	"github.com/jafarshop/storeconnect/internal/api"
	"github.com/jafarshop/storeconnect/internal/api/handlers"
	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/kvstore"
	"github.com/jafarshop/storeconnect/internal/messaging"
	"github.com/jafarshop/storeconnect/internal/orders"
	"github.com/jafarshop/storeconnect/internal/platform"
	"github.com/jafarshop/storeconnect/internal/platform/shopify"
	"github.com/jafarshop/storeconnect/internal/platform/woocommerce"
	"github.com/jafarshop/storeconnect/internal/settings"
	"github.com/jafarshop/storeconnect/internal/template"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Persisted key-value store
	kv, err := kvstore.NewFileStore(afero.NewOsFs(), cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open data directory", zap.Error(err))
	}

	// Settings, templates, send history
	settingsSvc := settings.NewService(kv, cfg, logger)
	templateStore := template.NewStore(kv, logger)
	generator := template.NewGenerator(templateStore)
	sendLog := messaging.NewRecordLog(kv, logger)

	// Order sources. Demo mode swaps both storefronts for deterministic
	// fixtures so the dashboard works without real credentials.
	var sources []platform.OrderSource
	if cfg.Environment == "demo" {
		sources = []platform.OrderSource{
			platform.NewFixtureSource("shopify"),
			platform.NewFixtureSource("woocommerce"),
		}
	} else {
		sources = []platform.OrderSource{
			shopify.NewClient(settingsSvc.Shopify, logger),
			woocommerce.NewClient(settingsSvc.WooCommerce, logger),
		}
	}
	orderSvc := orders.NewService(sources, logger)

	// Messaging and AI
	senders := handlers.NotifySenders{
		Email: messaging.NewEmailSimulator(logger),
		SMS:   messaging.NewPushflowClient(settingsSvc.Pushflow, logger),
	}
	gemini := ai.NewGeminiClient(func() config.GeminiConfig { return cfg.Gemini }, logger)
	assistant := ai.NewAssistant(gemini, func() string { return settingsSvc.BrandVoice().Description }, logger)

	router := api.NewRouter(cfg, api.Deps{
		Orders:    orderSvc,
		Templates: templateStore,
		Generator: generator,
		Settings:  settingsSvc,
		Senders:   senders,
		SendLog:   sendLog,
		Assistant: assistant,
	}, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
