package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"region-directory/internal/store"
	"region-directory/pkg/config"
	"region-directory/pkg/logger"
)

var (
	envFiles []string
	port     string

	cfg *config.Config
	log *zap.Logger
)

// Execute runs the api command tree; serve is the default action
func Execute() error {
	root := &cobra.Command{
		Use:          "api",
		Short:        "Region directory HTTP API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(envFiles...)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			log, err = logger.New(cfg.Environment, cfg.LogLevel)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")
	root.PersistentFlags().StringVar(&port, "port", "", "HTTP port, overrides PORT")

	root.AddCommand(serveCmd(), migrateCmd())
	return root.ExecuteContext(context.Background())
}

func storeConfig(c *config.Config) store.Config {
	return store.Config{
		Driver:       c.DatabaseDriver,
		DSN:          c.DatabaseURL,
		AutoMigrate:  c.AutoMigrate,
		MaxOpenConns: c.DatabaseMaxOpenConns,
	}
}
