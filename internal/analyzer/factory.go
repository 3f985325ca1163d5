package analyzer

import (
	"fmt"

	"moim/internal/config"
	"moim/internal/port"
)

// ProviderFactory is a function that creates a ChatAnalyzer from the
// analyzer config.
type ProviderFactory func(cfg *config.AnalyzerConfig) (port.ChatAnalyzer, error)

// registry of analyzer provider factories, populated explicitly via
// RegisterProvider at process start.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an analyzer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates a ChatAnalyzer from config using the registered factory.
func New(cfg *config.AnalyzerConfig) (port.ChatAnalyzer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
