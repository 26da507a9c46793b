package config

import (
	"github.com/google/uuid"
)

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return Store{}, err
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (s *Store) GetConfig() (Config, error) {
	return s.driver.Read()
}

func (s *Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := s.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return s.driver.Write(cfg)
}

// Normalize fills in missing fields and persists the result. Zero
// values fall back to the defaults so a hand edited config file cannot
// produce a degenerate window.
func Normalize(store *Store) error {
	return store.UpdateConfig(func(cfg Config) (Config, error) {
		return normalize(cfg), nil
	})
}

func normalize(cfg Config) Config {
	if cfg.UUID == "" {
		cfg.UUID = uuid.NewString()
	}
	if cfg.Title == "" {
		cfg.Title = defaultConfig.Title
	}
	if cfg.URL == "" {
		cfg.URL = defaultConfig.URL
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultConfig.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultConfig.Height
	}
	if cfg.Opacity <= 0 || cfg.Opacity > 1 {
		cfg.Opacity = defaultConfig.Opacity
	}
	if cfg.BandHeight <= 0 {
		cfg.BandHeight = defaultConfig.BandHeight
	}
	return cfg
}
