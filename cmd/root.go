package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "prefbot",
		Short:         "prefbot: communication preference roles over Discord buttons",
		Long:          "prefbot runs a Discord bot that lets members pick communication preference roles, either as packs or one by one, from a button menu in their DMs.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/prefbot/prefbot.toml or ./prefbot.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newCatalogCmd(app),
		newMenuCmd(app),
		newTokenCmd(app),
	)

	return rootCmd
}
