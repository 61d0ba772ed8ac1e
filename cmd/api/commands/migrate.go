package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"region-directory/internal/store"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.DatabaseDriver == store.DriverMemory {
				return fmt.Errorf("nothing to migrate for the %s driver", store.DriverMemory)
			}

			db, err := store.Connect(cmd.Context(), storeConfig(cfg))
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("schema applied", zap.String("driver", cfg.DatabaseDriver))
			return nil
		},
	}
}
