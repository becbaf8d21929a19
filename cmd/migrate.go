package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/appconfig"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedDB bool

var migrateCmd = &cobra.Command{
	Use:   "init-db-migrate",
	Short: "Initialize tables and run database migrations",
	Long:  `This job ensures tables exist and then runs goose migrations. With --seed the demo records are inserted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Set the log level
		setLogging(logLevel)

		// Load the config file
		var err error
		appCfg, err = appconfig.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}

		if appCfg.Database.Driver != appconfig.DriverPostgres {
			log.Fatal().Str("driver", appCfg.Database.Driver).Msg("Migrations require the postgres driver")
		}

		err = os.Setenv("DATABASE_URL", appCfg.Database.Source)
		if err != nil {
			fmt.Println("Error setting environment variable:", err)
			os.Exit(1)
		}

		adminDB, err := openAdminDB()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize AdminDB")
		}

		// Set up the database
		defer adminDB.Close()

		// Run the migrations
		log.Info().Msgf("Running migrations...")
		if err := adminDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		if seedDB || appCfg.Database.Seed {
			log.Info().Msg("Seeding database...")
			if err := adminDB.SeedDB(context.Background(), db.SeedData()); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed database")
			}
		}

		log.Info().Msg("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&seedDB, "seed", false, "insert the demo records after migrating")
}
