package ports

import (
	"context"

	"github.com/bnema/peon-ping-cli/internal/domain"
)

type ConfigRepository interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}

type StateRepository interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

type PackRepository interface {
	Manifest(ctx context.Context, name string) (domain.PackManifest, error)
	List(ctx context.Context) ([]domain.PackManifest, error)
	// SoundPath resolves a manifest file entry to an absolute path.
	SoundPath(pack, file string) string
}
