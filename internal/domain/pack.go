package domain

// PackManifest describes one sound pack: a themed set of sound files grouped
// by category.
type PackManifest struct {
	Name        string
	DisplayName string
	Categories  map[string]PackCategory
}

type PackCategory struct {
	Sounds []PackSound
}

// PackSound is one playable file plus the voice line it contains.
type PackSound struct {
	File string
	Line string
}

// Display returns the human-readable pack name.
func (m PackManifest) Display() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

// ChooseSound picks one sound from the list, never repeating last when at
// least two files exist. A single-entry list always yields that entry, so
// selection never stalls. intn draws a uniform index in [0, n).
func ChooseSound(sounds []PackSound, last string, intn func(n int) int) (PackSound, bool) {
	if len(sounds) == 0 {
		return PackSound{}, false
	}

	candidates := sounds
	if len(sounds) > 1 {
		filtered := make([]PackSound, 0, len(sounds))
		for _, sound := range sounds {
			if sound.File != last {
				filtered = append(filtered, sound)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return candidates[intn(len(candidates))], true
}
