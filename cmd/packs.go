package cmd

import (
	"fmt"
	"strings"

	statusrender "github.com/bnema/peon-ping-cli/internal/adapters/render/status"
	"github.com/bnema/peon-ping-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPacksCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: "List available sound packs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.configRepo.Load(cmd.Context())
			if err != nil {
				return err
			}

			manifests, err := app.packRepo.List(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), statusrender.RenderPacks(manifests, cfg.ActivePack))
			return nil
		},
	}
}

func newPackCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pack [name]",
		Short: "Switch to a specific pack, or cycle to the next one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.configRepo.Load(cmd.Context())
			if err != nil {
				return err
			}

			manifests, err := app.packRepo.List(cmd.Context())
			if err != nil || len(manifests) == 0 {
				return domain.ErrNoPacks
			}

			names := make([]string, 0, len(manifests))
			displays := make(map[string]string, len(manifests))
			for _, manifest := range manifests {
				names = append(names, manifest.Name)
				displays[manifest.Name] = manifest.Display()
			}

			var target string
			if len(args) == 1 {
				target = args[0]
				if !containsName(names, target) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Available packs: %s\n", strings.Join(names, ", "))
					return fmt.Errorf("%w: %q", domain.ErrPackNotFound, target)
				}
			} else {
				target = nextPack(names, cfg.ActivePack)
			}

			cfg.ActivePack = target
			if err := app.configRepo.Save(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "peon-ping: switched to %s (%s)\n", target, displays[target])
			return nil
		},
	}
}

// nextPack cycles alphabetically through the sorted pack list, wrapping
// around; an unknown active pack restarts at the first entry.
func nextPack(names []string, active string) string {
	for i, name := range names {
		if name == active {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func containsName(names []string, target string) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}
	return false
}
