// Package cli wires the blog commands.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"blog/internal/config"
)

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blog",
		Short:         "blog — markdown to static HTML site generator",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default blog.yaml)")

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPreviewCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// loadConfig resolves configuration for commands that build the site.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(viper.New(), cfgPath)
}
