package main

import (
	"fmt"
	"os"

	"github.com/localnerve/gamesdb/data"
	"github.com/localnerve/gamesdb/internal/config"
	"github.com/localnerve/gamesdb/internal/database"
	"github.com/localnerve/gamesdb/internal/logging"
	"github.com/localnerve/gamesdb/internal/seed"
	"github.com/localnerve/gamesdb/internal/services"
	"github.com/localnerve/gamesdb/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	var envFilename string

	root := &cobra.Command{
		Use:           "gamesctl",
		Short:         "GamesDB catalogue administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&envFilename, "env-file", "f", "", "path to an optional .env file")

	// connect loads configuration and opens the configured database
	connect := func() (*gorm.DB, error) {
		cfg, err := config.LoadFile(envFilename)
		if err != nil {
			return nil, err
		}
		logging.Configure(cfg)
		return database.Connect(cfg)
	}

	root.AddCommand(newMigrateCmd(connect), newSeedCmd(connect), newSchemaCmd())
	return root
}

func newMigrateCmd(connect func() (*gorm.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalogue tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logrus.Info("Migration complete")
			return nil
		},
	}
}

func newSeedCmd(connect func() (*gorm.DB, error)) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a starter catalogue into an empty database",
		Long: "Creates genres, publishers, developers, platforms and games from a JSON seed document.\n" +
			"The embedded starter catalogue is used unless --file is given. Refuses to run when games exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := data.SeedCatalogue
			if file != "" {
				var err error
				if raw, err = os.ReadFile(file); err != nil {
					return err
				}
			}
			catalogue, err := seed.Parse(raw)
			if err != nil {
				return err
			}

			db, err := connect()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			st := store.New(db)
			result, err := seed.Apply(cmd.Context(), services.NewCatalogue(st), st, catalogue)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d genres, %d publishers, %d developers, %d platforms, %d games\n",
				result.Genres, result.Publishers, result.Developers, result.Platforms, result.Games)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "seed document to load instead of the embedded catalogue")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the SQLite DDL generated for the catalogue models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := database.SQLiteSchema()
			if err != nil {
				return err
			}
			for _, table := range tables {
				fmt.Fprintf(cmd.OutOrStdout(), "\n=== Table: %s ===\n%s\n", table.Name, table.SQL)
			}
			return nil
		},
	}
}
