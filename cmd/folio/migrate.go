package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       fmt.Sprintf("migrate [%s]", strings.Join(store.MigrationActionNames(), "|")),
	Short:     "Migrate the local history database",
	Long:      "Apply or roll back the schema of the local submission history database",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: store.MigrationActionNames(),
	RunE:      migrateSchema,
}

func migrateSchema(cmd *cobra.Command, args []string) error {
	action, errAction := store.ParseMigrationAction(args[0])
	if errAction != nil {
		return errors.Join(errAction, errApp)
	}

	_, _, logFile, errSetup := setup(nil)
	if errSetup != nil {
		return errSetup
	}
	defer closeLog(logFile)

	dbPath := config.Path(config.DefaultDBName)
	if err := migrateDatabase(cmd.Context(), dbPath, action); err != nil {
		return err
	}

	cmd.Printf("Migrated %s (%s)\n", dbPath, args[0])

	return nil
}

// migrateDatabase opens the database without the automatic upgrade so downgrades stick.
func migrateDatabase(ctx context.Context, dbPath string, action store.MigrationAction) error {
	database, errDB := store.Open(ctx, dbPath, false)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}
	defer closeDatabase(database)

	if err := store.Migrate(database, action); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
