package packs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/bnema/peon-ping-cli/internal/ports"
)

const manifestFileName = "manifest.json"

// Repository reads sound pack manifests from <packsDir>/<pack>/manifest.json.
type Repository struct {
	packsDir string
}

var _ ports.PackRepository = (*Repository)(nil)

func NewRepository(packsDir string) *Repository {
	return &Repository{packsDir: packsDir}
}

type manifestSchema struct {
	Name        string                    `json:"name"`
	DisplayName string                    `json:"display_name"`
	Categories  map[string]categorySchema `json:"categories"`
}

type categorySchema struct {
	Sounds []soundSchema `json:"sounds"`
}

type soundSchema struct {
	File string `json:"file"`
	Line string `json:"line"`
}

func (r *Repository) Manifest(ctx context.Context, name string) (domain.PackManifest, error) {
	if err := ctx.Err(); err != nil {
		return domain.PackManifest{}, err
	}

	return r.readManifest(filepath.Join(r.packsDir, name, manifestFileName))
}

// List returns every pack with a readable manifest, sorted by name.
// Unreadable manifests are skipped.
func (r *Repository) List(ctx context.Context) ([]domain.PackManifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(r.packsDir, "*", manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("glob pack manifests: %w", err)
	}

	manifests := make([]domain.PackManifest, 0, len(matches))
	for _, match := range matches {
		manifest, err := r.readManifest(match)
		if err != nil {
			continue
		}
		manifests = append(manifests, manifest)
	}

	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].Name < manifests[j].Name
	})

	return manifests, nil
}

func (r *Repository) SoundPath(pack, file string) string {
	return filepath.Join(r.packsDir, pack, "sounds", file)
}

func (r *Repository) readManifest(path string) (domain.PackManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PackManifest{}, fmt.Errorf("read pack manifest: %w", err)
	}

	var file manifestSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.PackManifest{}, fmt.Errorf("decode pack manifest: %w", err)
	}

	manifest := domain.PackManifest{
		Name:        file.Name,
		DisplayName: file.DisplayName,
		Categories:  make(map[string]domain.PackCategory, len(file.Categories)),
	}
	if manifest.Name == "" {
		manifest.Name = filepath.Base(filepath.Dir(path))
	}
	for category, entry := range file.Categories {
		sounds := make([]domain.PackSound, 0, len(entry.Sounds))
		for _, sound := range entry.Sounds {
			sounds = append(sounds, domain.PackSound{File: sound.File, Line: sound.Line})
		}
		manifest.Categories[category] = domain.PackCategory{Sounds: sounds}
	}

	return manifest, nil
}
