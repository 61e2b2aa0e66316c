package tomlcfg

import "github.com/bnema/peon-ping-cli/internal/domain"

const currentSchemaVersion = 1

// fileSchema mirrors config.toml. Optional scalars are pointers so a missing
// field can be told apart from an explicit zero (a real volume of 0 or
// enabled=false must survive a round trip).
type fileSchema struct {
	Version              int             `toml:"version"`
	Volume               *float64        `toml:"volume"`
	ActivePack           string          `toml:"active_pack"`
	PackRotation         []string        `toml:"pack_rotation,omitempty"`
	Enabled              *bool           `toml:"enabled"`
	AnnoyedThreshold     *int            `toml:"annoyed_threshold"`
	AnnoyedWindowSeconds *float64        `toml:"annoyed_window_seconds"`
	Categories           map[string]bool `toml:"categories,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func toSchema(cfg domain.Config) fileSchema {
	volume := cfg.Volume
	enabled := cfg.Enabled
	threshold := cfg.AnnoyedThreshold
	window := cfg.AnnoyedWindowSeconds

	return fileSchema{
		Version:              currentSchemaVersion,
		Volume:               &volume,
		ActivePack:           cfg.ActivePack,
		PackRotation:         cfg.PackRotation,
		Enabled:              &enabled,
		AnnoyedThreshold:     &threshold,
		AnnoyedWindowSeconds: &window,
		Categories:           cfg.Categories,
	}
}

func fromSchema(file fileSchema) domain.Config {
	cfg := domain.DefaultConfig()

	if file.Volume != nil {
		cfg.Volume = *file.Volume
	}
	if file.ActivePack != "" {
		cfg.ActivePack = file.ActivePack
	}
	if len(file.PackRotation) > 0 {
		cfg.PackRotation = file.PackRotation
	}
	if file.Enabled != nil {
		cfg.Enabled = *file.Enabled
	}
	if file.AnnoyedThreshold != nil {
		cfg.AnnoyedThreshold = *file.AnnoyedThreshold
	}
	if file.AnnoyedWindowSeconds != nil {
		cfg.AnnoyedWindowSeconds = *file.AnnoyedWindowSeconds
	}
	for category, enabled := range file.Categories {
		cfg.Categories[category] = enabled
	}

	return cfg
}
