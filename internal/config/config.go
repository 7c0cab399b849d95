package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DataDir     string
	Shopify     ShopifyConfig
	WooCommerce WooCommerceConfig
	Pushflow    PushflowConfig
	Gemini      GeminiConfig
}

// ShopifyConfig holds Shopify Admin API credentials
type ShopifyConfig struct {
	ShopDomain  string `json:"shop_domain"`
	AccessToken string `json:"access_token"`
}

// IsConfigured reports whether both credentials are present
func (c ShopifyConfig) IsConfigured() bool {
	return c.ShopDomain != "" && c.AccessToken != ""
}

// WooCommerceConfig holds WooCommerce REST API credentials
type WooCommerceConfig struct {
	SiteURL        string `json:"site_url"`
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

func (c WooCommerceConfig) IsConfigured() bool {
	return c.SiteURL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}

// PushflowConfig holds the SMS gateway credentials
type PushflowConfig struct {
	BaseURL            string `json:"base_url"`
	InstanceID         string `json:"instance_id"`
	AccessToken        string `json:"access_token"`
	DefaultPhoneNumber string `json:"default_phone_number"`
}

func (c PushflowConfig) IsConfigured() bool {
	return c.InstanceID != "" && c.AccessToken != ""
}

// GeminiConfig holds the generative-text service credentials
type GeminiConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
}

func (c GeminiConfig) IsConfigured() bool {
	return c.APIKey != ""
}

// BrandVoiceConfig describes the brand voice prepended to AI prompts
type BrandVoiceConfig struct {
	Description string `json:"description"`
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PUSHFLOW_BASE_URL", "https://api.pushflow.io")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		DataDir:     getEnvOrViper("DATA_DIR", "./data"),
		Shopify: ShopifyConfig{
			ShopDomain:  getEnvOrViper("SHOPIFY_SHOP_DOMAIN", ""),
			AccessToken: getEnvOrViper("SHOPIFY_ACCESS_TOKEN", ""),
		},
		WooCommerce: WooCommerceConfig{
			SiteURL:        getEnvOrViper("WOOCOMMERCE_SITE_URL", ""),
			ConsumerKey:    getEnvOrViper("WOOCOMMERCE_CONSUMER_KEY", ""),
			ConsumerSecret: getEnvOrViper("WOOCOMMERCE_CONSUMER_SECRET", ""),
		},
		Pushflow: PushflowConfig{
			BaseURL:            getEnvOrViper("PUSHFLOW_BASE_URL", "https://api.pushflow.io"),
			InstanceID:         getEnvOrViper("PUSHFLOW_INSTANCE_ID", ""),
			AccessToken:        getEnvOrViper("PUSHFLOW_ACCESS_TOKEN", ""),
			DefaultPhoneNumber: getEnvOrViper("PUSHFLOW_DEFAULT_PHONE", ""),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnvOrViper("GEMINI_API_KEY", ""),
			Model:   getEnvOrViper("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL: getEnvOrViper("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
	}

	// Platform, messaging and AI credentials are deliberately optional at
	// boot: operations missing credentials report "not configured" at
	// runtime instead of refusing to start.
	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
