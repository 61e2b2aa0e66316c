package cmd

import (
	"fmt"
	"os"

	statusrender "github.com/bnema/peon-ping-cli/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newPauseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Mute sounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.pause(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds paused")
			return nil
		},
	}
}

func newResumeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Unmute sounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.resume()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds resumed")
			return nil
		},
	}
}

func newToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle mute on/off",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.paused() {
				app.resume()
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds resumed")
				return nil
			}
			if err := app.pause(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: sounds paused")
			return nil
		},
	}
}

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show paused state and active configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.configRepo.Load(cmd.Context())
			if err != nil {
				return err
			}

			info := statusrender.Info{
				Paused: app.paused(),
				Config: cfg,
			}
			if version, ok := app.updates.Pending(); ok {
				info.UpdateAvailable = version
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), statusrender.Render(info))
			return nil
		},
	}
}

func (a *app) pause() error {
	f, err := os.Create(a.pausedPath())
	if err != nil {
		return fmt.Errorf("create pause marker: %w", err)
	}
	return f.Close()
}

func (a *app) resume() {
	_ = os.Remove(a.pausedPath())
}
