package cli

import (
	"errors"

	"pet-wellness-web/internal/adapters/storage/postgres"
	"pet-wellness-web/internal/platform/config"

	"github.com/spf13/cobra"
)

var errNoDSN = errors.New("DB_DSN is required to run migrations")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run session store migrations (postgres)",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := migrationDSN(cmd)
		if err != nil {
			return err
		}
		return postgres.MigrateUp(dsn)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := migrationDSN(cmd)
		if err != nil {
			return err
		}
		return postgres.MigrateDown(dsn)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func migrationDSN(cmd *cobra.Command) (string, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return "", err
	}
	if cfg.Postgres.DSN == "" {
		return "", errNoDSN
	}
	return cfg.Postgres.DSN, nil
}
