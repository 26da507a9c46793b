package config

import (
	"path/filepath"
	"testing"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	cfg := normalize(Config{})

	if cfg.UUID == "" {
		t.Error("expected UUID to be assigned")
	}
	if cfg.Title != defaultConfig.Title {
		t.Errorf("expected title %q, got %q", defaultConfig.Title, cfg.Title)
	}
	if cfg.URL != defaultConfig.URL {
		t.Errorf("expected url %q, got %q", defaultConfig.URL, cfg.URL)
	}
	if cfg.Width != defaultConfig.Width || cfg.Height != defaultConfig.Height {
		t.Errorf("expected %dx%d, got %dx%d", defaultConfig.Width, defaultConfig.Height, cfg.Width, cfg.Height)
	}
	if cfg.BandHeight != defaultConfig.BandHeight {
		t.Errorf("expected band height %d, got %d", defaultConfig.BandHeight, cfg.BandHeight)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	in := Config{
		UUID:       "11111111-2222-3333-4444-555555555555",
		Title:      "Shell",
		URL:        "https://example.com",
		Width:      1024,
		Height:     400,
		Opacity:    0.5,
		BandHeight: 48,
	}

	out := normalize(in)
	if out != in {
		t.Errorf("expected config to be unchanged, got %+v", out)
	}
}

func TestNormalize_Opacity(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, defaultConfig.Opacity},
		{-1, defaultConfig.Opacity},
		{1.5, defaultConfig.Opacity},
		{0.85, 0.85},
		{1, 1},
	}

	for _, test := range tests {
		cfg := normalize(Config{Opacity: test.in})
		if cfg.Opacity != test.expected {
			t.Errorf("normalize opacity %v = %v, expected %v", test.in, cfg.Opacity, test.expected)
		}
	}
}

func TestStore_WritesDefaultsWhenMissing(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := NewStore(NewYAML(filePath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := store.GetConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != defaultConfig {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestStore_NormalizePersists(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := NewStore(NewYAML(filePath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Normalize(&store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := store.GetConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.UUID == "" {
		t.Fatal("expected UUID to be assigned")
	}

	if err := Normalize(&store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := store.GetConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.UUID != first.UUID {
		t.Errorf("expected UUID to be stable, got %q then %q", first.UUID, second.UUID)
	}
}
