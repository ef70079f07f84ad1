package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"blog/internal/server"
	"blog/internal/site"
)

func newServeCmd() *cobra.Command {
	var addr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rebuild := func() error {
				// A fresh builder picks up template changes too.
				b, err := site.New(cfg)
				if err != nil {
					return err
				}
				return b.Build()
			}

			if err := rebuild(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch {
				dirs := []string{cfg.ContentDir, cfg.TemplatesDir, cfg.StaticDir}
				go func() {
					err := server.Watch(ctx, dirs, func() {
						slog.Info("change detected, rebuilding")
						if err := rebuild(); err != nil {
							slog.Error("rebuild failed", "error", err)
						}
					})
					if err != nil {
						slog.Error("watch failed", "error", err)
					}
				}()
			}

			if addr == "" {
				addr = cfg.Serve.Addr
			}
			slog.Info("serving site", "addr", addr, "dir", cfg.OutputDir)
			return server.Run(ctx, server.New(addr, cfg.OutputDir))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild when content, templates, or static files change")

	return cmd
}
