package application

import (
	"context"

	"github.com/bnema/peon-ping-cli/internal/domain"
)

// pickSound resolves the category's sound list from the pack manifest and
// draws one entry, avoiding an immediate repeat. A missing manifest, missing
// category, or empty list yields no sound and no state change.
func (d *Dispatcher) pickSound(ctx context.Context, pack, category string, state *domain.State) string {
	manifest, err := d.packs.Manifest(ctx, pack)
	if err != nil {
		return ""
	}

	sounds := manifest.Categories[category].Sounds
	chosen, ok := domain.ChooseSound(sounds, state.LastPlayedFile(category), d.rand.Intn)
	if !ok {
		return ""
	}

	state.RecordPlayed(category, chosen.File)
	return d.packs.SoundPath(pack, chosen.File)
}
