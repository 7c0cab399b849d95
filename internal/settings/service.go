package settings

import (
	"go.uber.org/zap"

	"github.com/jafarshop/storeconnect/internal/config"
	"github.com/jafarshop/storeconnect/internal/kvstore"
)

const (
	shopifyKey    = "shopifyConfig"
	wooKey        = "wooCommerceConfig"
	pushflowKey   = "pushflowConfig"
	brandVoiceKey = "brandVoice"
)

// Service owns the editable integration settings. Each section is an
// independently keyed JSON blob in the kvstore; environment values seed
// the initial state and stored edits win afterwards.
type Service struct {
	kv     kvstore.Store
	seed   *config.Config
	logger *zap.Logger
}

// NewService creates a settings service seeded from the boot configuration
func NewService(kv kvstore.Store, seed *config.Config, logger *zap.Logger) *Service {
	return &Service{
		kv:     kv,
		seed:   seed,
		logger: logger,
	}
}

// Shopify returns the current Shopify credentials
func (s *Service) Shopify() config.ShopifyConfig {
	var cfg config.ShopifyConfig
	if found, err := s.kv.Get(shopifyKey, &cfg); err != nil || !found {
		return s.seed.Shopify
	}
	return cfg
}

// SaveShopify persists new Shopify credentials
func (s *Service) SaveShopify(cfg config.ShopifyConfig) error {
	return s.kv.Put(shopifyKey, cfg)
}

// WooCommerce returns the current WooCommerce credentials
func (s *Service) WooCommerce() config.WooCommerceConfig {
	var cfg config.WooCommerceConfig
	if found, err := s.kv.Get(wooKey, &cfg); err != nil || !found {
		return s.seed.WooCommerce
	}
	return cfg
}

// SaveWooCommerce persists new WooCommerce credentials
func (s *Service) SaveWooCommerce(cfg config.WooCommerceConfig) error {
	return s.kv.Put(wooKey, cfg)
}

// Pushflow returns the current SMS gateway settings
func (s *Service) Pushflow() config.PushflowConfig {
	var cfg config.PushflowConfig
	if found, err := s.kv.Get(pushflowKey, &cfg); err != nil || !found {
		return s.seed.Pushflow
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = s.seed.Pushflow.BaseURL
	}
	return cfg
}

// SavePushflow persists new SMS gateway settings
func (s *Service) SavePushflow(cfg config.PushflowConfig) error {
	return s.kv.Put(pushflowKey, cfg)
}

// BrandVoice returns the stored brand voice description, if any
func (s *Service) BrandVoice() config.BrandVoiceConfig {
	var cfg config.BrandVoiceConfig
	if found, err := s.kv.Get(brandVoiceKey, &cfg); err != nil || !found {
		return config.BrandVoiceConfig{}
	}
	return cfg
}

// SaveBrandVoice persists the brand voice description
func (s *Service) SaveBrandVoice(cfg config.BrandVoiceConfig) error {
	return s.kv.Put(brandVoiceKey, cfg)
}
