package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "peon",
		Short:         "peon-ping: sounds, notifications and tab titles for assistant sessions",
		Long:          "peon plays themed voice lines, updates the terminal tab title, and raises desktop notifications in response to coding-assistant hook events. Invoked with no subcommand it runs as the hook handler, reading one event from stdin.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runHook(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPauseCmd(app),
		newResumeCmd(app),
		newToggleCmd(app),
		newStatusCmd(app),
		newPacksCmd(app),
		newPackCmd(app),
		newUpdateCmd(app),
	)

	return rootCmd
}
