package status

import (
	"fmt"
	"strings"

	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Info carries everything the status view shows.
type Info struct {
	Paused          bool
	Config          domain.Config
	UpdateAvailable string
}

// Render produces the `peon status` output.
func Render(info Info) string {
	s := newStyles()

	state := "peon-ping: active"
	if info.Paused {
		state = "peon-ping: paused"
	}

	lines := []string{
		s.title.Render(state),
		s.detail.Render(fmt.Sprintf("pack: %s", info.Config.ActivePack)),
		s.detail.Render(fmt.Sprintf("volume: %.2f", info.Config.Volume)),
	}

	if len(info.Config.PackRotation) > 0 {
		lines = append(lines, s.detail.Render(
			fmt.Sprintf("rotation: %s", strings.Join(info.Config.PackRotation, ", "))))
	}
	if !info.Config.Enabled {
		lines = append(lines, s.warning.Render("disabled in config"))
	}

	disabled := disabledCategories(info.Config)
	if len(disabled) > 0 {
		lines = append(lines, s.faint.Render(
			fmt.Sprintf("muted categories: %s", strings.Join(disabled, ", "))))
	}

	if info.UpdateAvailable != "" {
		lines = append(lines, s.warning.Render(
			fmt.Sprintf("update available: %s", info.UpdateAvailable)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderPacks produces the `peon packs` listing, marking the active pack.
func RenderPacks(manifests []domain.PackManifest, active string) string {
	s := newStyles()

	if len(manifests) == 0 {
		return s.empty.Render("No sound packs installed.")
	}

	lines := make([]string, 0, len(manifests))
	for _, manifest := range manifests {
		line := fmt.Sprintf("  %-24s %s", manifest.Name, manifest.Display())
		if manifest.Name == active {
			line = s.active.Render(line + " *")
		} else {
			line = s.detail.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func disabledCategories(cfg domain.Config) []string {
	var disabled []string
	for _, category := range domain.KnownCategories {
		if !cfg.CategoryEnabled(category) {
			disabled = append(disabled, category)
		}
	}
	return disabled
}
