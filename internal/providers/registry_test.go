package providers

import (
	"testing"
)

func TestRegistry_RegisterGet(t *testing.T) {
	reg := NewRegistry()

	if reg.Has("mock") {
		t.Error("empty registry should not have mock")
	}

	mock := NewMockRepairer()
	reg.Register("mock", mock)

	if !reg.Has("mock") {
		t.Error("registry should have mock after Register")
	}

	got, err := reg.Get("mock")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != mock {
		t.Error("Get returned a different provider")
	}

	if _, err := reg.Get("nope"); err == nil {
		t.Error("Get for unknown provider should fail")
	}

	reg.Unregister("mock")
	if reg.Has("mock") {
		t.Error("registry should not have mock after Unregister")
	}
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", NewMockRepairer())
	reg.Register("b", NewMockRepairer())

	names := reg.List()
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %d", len(names))
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	cfg := RegistryConfig{
		Repairers: map[string]RepairProviderConfig{
			"openai": {
				Type:      "openai",
				Model:     "gpt-4o-mini",
				APIKey:    "sk-test",
				RateLimit: 2.0,
				Enabled:   true,
			},
			"disabled": {
				Type:    "openai",
				APIKey:  "sk-test",
				Enabled: false,
			},
			"no-key": {
				Type:    "openai",
				Enabled: true,
			},
			"unknown-type": {
				Type:    "quantum",
				APIKey:  "sk-test",
				Enabled: true,
			},
		},
	}

	reg := NewRegistryFromConfig(cfg)

	if !reg.Has("openai") {
		t.Error("enabled provider with key should be registered")
	}
	if reg.Has("disabled") {
		t.Error("disabled provider should not be registered")
	}
	if reg.Has("no-key") {
		t.Error("provider without API key should not be registered")
	}
	if reg.Has("unknown-type") {
		t.Error("unknown provider type should not be registered")
	}
}

func TestRegistry_Reload(t *testing.T) {
	reg := NewRegistryFromConfig(RegistryConfig{
		Repairers: map[string]RepairProviderConfig{
			"openai": {Type: "openai", APIKey: "sk-one", Model: "gpt-4o-mini", Enabled: true},
		},
	})

	first, err := reg.Get("openai")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	t.Run("unchanged settings keep the client", func(t *testing.T) {
		reg.Reload(RegistryConfig{
			Repairers: map[string]RepairProviderConfig{
				"openai": {Type: "openai", APIKey: "sk-one", Model: "gpt-4o-mini", Enabled: true},
			},
		})

		got, _ := reg.Get("openai")
		if got != first {
			t.Error("reload with identical settings should not recreate the client")
		}
	})

	t.Run("defaulted fields do not force recreation", func(t *testing.T) {
		// Model/rate/retries omitted from config compare against the
		// defaults the constructor applied, not the zero values.
		reg.Reload(RegistryConfig{
			Repairers: map[string]RepairProviderConfig{
				"openai": {Type: "openai", APIKey: "sk-one", Enabled: true},
			},
		})

		got, _ := reg.Get("openai")
		if got != first {
			t.Error("zero optional fields should not recreate the client")
		}
	})

	t.Run("changed key recreates the client", func(t *testing.T) {
		reg.Reload(RegistryConfig{
			Repairers: map[string]RepairProviderConfig{
				"openai": {Type: "openai", APIKey: "sk-two", Model: "gpt-4o-mini", Enabled: true},
			},
		})

		got, _ := reg.Get("openai")
		if got == first {
			t.Error("reload with changed key should recreate the client")
		}
	})

	t.Run("removed provider is unregistered", func(t *testing.T) {
		reg.Reload(RegistryConfig{})
		if reg.Has("openai") {
			t.Error("provider removed from config should be unregistered")
		}
	})
}
