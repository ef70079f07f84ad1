package cli

import (
	"github.com/spf13/cobra"

	"blog/internal/site"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			b, err := site.New(cfg)
			if err != nil {
				return err
			}
			return b.Build()
		},
	}
}
