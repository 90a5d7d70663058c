package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Database schema is at version %d", storage.ExpectedSchemaVersion)))
			return nil
		},
	}
}
