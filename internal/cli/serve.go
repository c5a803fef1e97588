package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindreel/mindreel/internal/config"
	"github.com/mindreel/mindreel/internal/logger"
	"github.com/mindreel/mindreel/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	cmd.Flags().String("media-dir", "", "Media directory (overrides MEDIA_DIR)")
	return cmd
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if dir, _ := cmd.Flags().GetString("media-dir"); dir != "" {
		cfg.MediaDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("listening", "port", cfg.Port, "media_dir", cfg.MediaDir)
	return srv.Run()
}
