package providers

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry holds the configured name-repair providers.
// It supports config-driven instantiation, hot-reload, and thread-safe access.
type Registry struct {
	mu        sync.RWMutex
	repairers map[string]NameRepairer
	logger    *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		repairers: make(map[string]NameRepairer),
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register registers a name repairer by name.
func (r *Registry) Register(name string, p NameRepairer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.repairers[name] = p
	if r.logger != nil {
		r.logger.Info("registered repair provider", "name", name)
	}
}

// Unregister removes a name repairer by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.repairers, name)
	if r.logger != nil {
		r.logger.Info("unregistered repair provider", "name", name)
	}
}

// Get returns a name repairer by name.
func (r *Registry) Get(name string) (NameRepairer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.repairers[name]
	if !ok {
		return nil, fmt.Errorf("repair provider not found: %s", name)
	}
	return p, nil
}

// Has checks if a name repairer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.repairers[name]
	return ok
}

// List returns all registered provider names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.repairers))
	for name := range r.repairers {
		names = append(names, name)
	}
	return names
}

// RegistryConfig defines the providers to instantiate from config.
type RegistryConfig struct {
	// Repairers maps provider names to their config.
	Repairers map[string]RepairProviderConfig
}

// RepairProviderConfig holds one provider's settings with a resolved API key.
type RepairProviderConfig struct {
	Type       string  // "openai"
	Model      string  // Model name
	APIKey     string  // Resolved API key
	RateLimit  float64 // Requests per second
	MaxRetries int
	Enabled    bool
}

// NewRegistryFromConfig creates a registry with providers based on
// configuration. Only enabled providers with API keys are registered.
func NewRegistryFromConfig(cfg RegistryConfig) *Registry {
	r := NewRegistry()
	for name, provCfg := range cfg.Repairers {
		if !provCfg.Enabled || provCfg.APIKey == "" {
			continue
		}
		p := createRepairer(provCfg)
		if p != nil {
			r.repairers[name] = p
		}
	}
	return r
}

// Reload updates the registry based on new configuration. Providers no
// longer configured are unregistered; providers with changed settings are
// recreated.
func (r *Registry) Reload(cfg RegistryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := make(map[string]bool)

	for name, provCfg := range cfg.Repairers {
		if !provCfg.Enabled || provCfg.APIKey == "" {
			continue
		}
		want[name] = true

		existing, hasExisting := r.repairers[name]
		if !hasExisting || needsUpdate(existing, provCfg) {
			p := createRepairer(provCfg)
			if p != nil {
				r.repairers[name] = p
				if r.logger != nil {
					if hasExisting {
						r.logger.Info("updated repair provider", "name", name, "type", provCfg.Type)
					} else {
						r.logger.Info("registered repair provider", "name", name, "type", provCfg.Type)
					}
				}
			}
		}
	}

	for name := range r.repairers {
		if !want[name] {
			delete(r.repairers, name)
			if r.logger != nil {
				r.logger.Info("unregistered repair provider", "name", name)
			}
		}
	}
}

// createRepairer creates a repairer based on provider type.
func createRepairer(cfg RepairProviderConfig) NameRepairer {
	switch cfg.Type {
	case "openai":
		return NewOpenAIRepairer(OpenAIConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			RateLimit:  cfg.RateLimit,
			MaxRetries: cfg.MaxRetries,
		})
	default:
		return nil
	}
}

// needsUpdate checks if a repairer must be recreated for new settings.
// Comparison goes through the provider's own config matcher so zero
// config values compare against the defaults the constructor fills in.
func needsUpdate(p NameRepairer, cfg RepairProviderConfig) bool {
	switch c := p.(type) {
	case *OpenAIRepairer:
		return !c.matchesConfig(cfg)
	default:
		return true
	}
}
