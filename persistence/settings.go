package persistence

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena-fighter/config"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsStore persists the player-adjustable subset of the config
type SettingsStore struct {
	store Store
}

func NewSettingsStore(store Store) *SettingsStore {
	return &SettingsStore{store: store}
}

// Apply overlays saved settings onto cfg
// Nothing saved is not an error; unreadable data is logged and ignored
func (s *SettingsStore) Apply(cfg *config.Config) error {
	data, ok, err := s.store.Load(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return nil
	}
	if err := cfg.ApplyYAML(data); err != nil {
		log.Printf("[Settings] ignoring saved settings: %v", err)
		return nil
	}
	cfg.Normalize()
	log.Printf("[Settings] applied saved settings")
	return nil
}

// Save writes the adjustable settings of cfg
func (s *SettingsStore) Save(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg.ToFile())
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := s.store.Save(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
