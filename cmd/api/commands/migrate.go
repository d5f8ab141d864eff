package commands

import (
	"adboard/internal/database"
	"adboard/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		// ConnectDB applies migrations on connect
		db, err := database.ConnectDB(cfg, log)
		if err != nil {
			return err
		}
		defer db.CloseDB()

		count, err := repository.NewTablesRepository(db.DB).CountTablesDB(cmd.Context())
		if err != nil {
			return err
		}

		log.Info("migrations applied", zap.Int("tables", count))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
