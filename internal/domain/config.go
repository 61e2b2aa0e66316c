package domain

// Named defaults for every config field. Any field missing from the config
// file, or the whole file being missing or unreadable, resolves to these.
const (
	DefaultVolume               = 0.5
	DefaultActivePack           = "peon"
	DefaultEnabled              = true
	DefaultAnnoyedThreshold     = 3
	DefaultAnnoyedWindowSeconds = 10.0
)

// Config holds the user preferences, read-only during a hook invocation.
type Config struct {
	Volume               float64
	ActivePack           string
	PackRotation         []string
	Enabled              bool
	Categories           map[string]bool
	AnnoyedThreshold     int
	AnnoyedWindowSeconds float64
}

func DefaultConfig() Config {
	categories := make(map[string]bool, len(KnownCategories))
	for _, category := range KnownCategories {
		categories[category] = true
	}

	return Config{
		Volume:               DefaultVolume,
		ActivePack:           DefaultActivePack,
		Enabled:              DefaultEnabled,
		Categories:           categories,
		AnnoyedThreshold:     DefaultAnnoyedThreshold,
		AnnoyedWindowSeconds: DefaultAnnoyedWindowSeconds,
	}
}

// CategoryEnabled reports whether a category may produce sound. Categories
// absent from the map are enabled.
func (c Config) CategoryEnabled(category string) bool {
	enabled, ok := c.Categories[category]
	if !ok {
		return true
	}
	return enabled
}

// RotationContains reports whether pack is a current member of the rotation.
func (c Config) RotationContains(pack string) bool {
	for _, member := range c.PackRotation {
		if member == pack {
			return true
		}
	}
	return false
}
