package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var local, remote string

			err := runUpdateCheckSpinner(cmd.Context(), cmd.OutOrStdout(), func() error {
				var checkErr error
				local, remote, checkErr = app.updates.CheckNow()
				return checkErr
			})
			if err != nil {
				return fmt.Errorf("check for updates: %w", err)
			}

			switch {
			case remote == "":
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "peon-ping: no published version found")
			case local == "":
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "peon-ping: latest release is %s (local version unknown)\n", remote)
			case local == remote:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "peon-ping: up to date (%s)\n", local)
			default:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "peon-ping: update available: %s → %s\n", local, remote)
			}
			return nil
		},
	}
}
