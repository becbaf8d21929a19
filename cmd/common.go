package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/EO-DataHub/eodhp-admin-services/db"
	"github.com/EO-DataHub/eodhp-admin-services/internal/appconfig"
	awsclient "github.com/EO-DataHub/eodhp-admin-services/internal/aws"
	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/EO-DataHub/eodhp-admin-services/internal/onboarding"
	"github.com/rs/zerolog/log"
)

var (
	appCfg *appconfig.Config
	store  db.Store
)

// commonSetUp loads the config, sets up logging and opens the store.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err = openStore(appCfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", appCfg.Database.Driver).Msg("Failed to initialize store")
	}
}

func openStore(cfg appconfig.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case appconfig.DriverMemory:
		log.Warn().Msg("Using the in-memory store; changes are lost on exit")
		return db.NewMemoryStore(db.SeedData()), nil

	case appconfig.DriverPostgres:
		if err := os.Setenv("DATABASE_URL", cfg.Source); err != nil {
			return nil, fmt.Errorf("error setting DATABASE_URL: %w", err)
		}
		adminDB, err := openAdminDB()
		if err != nil {
			return nil, err
		}
		if cfg.Seed {
			if err := adminDB.SeedDB(context.Background(), db.SeedData()); err != nil {
				adminDB.Close()
				return nil, err
			}
		}
		return adminDB, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openAdminDB() (*db.AdminDB, error) {
	return db.NewAdminDB(&log.Logger)
}

// newNotifier publishes to Pulsar when a broker is configured and to the
// log otherwise.
func newNotifier() events.Notifier {
	if appCfg.Pulsar.URL == "" {
		return events.LogNotifier{Log: &log.Logger}
	}

	publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize event publisher")
	}
	return publisher
}

// newMailer returns nil when no sender address or region is configured.
func newMailer(ctx context.Context) onboarding.Mailer {
	if appCfg.AWS.Region == "" || appCfg.Accounts.ServiceAccountEmail == "" {
		log.Warn().Msg("Approval emails are disabled")
		return nil
	}

	awsCfg, err := awsclient.LoadAWSConfig(ctx, appCfg.AWS.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	log.Info().Str("region", appCfg.AWS.Region).Msg("Creating AWS SES client")
	return awsclient.NewApprovalMailer(awsclient.NewSESClient(awsCfg),
		appCfg.Accounts.ServiceAccountEmail, appCfg.Accounts.HelpdeskEmail)
}

func newWorkflow(notifier events.Notifier, mailer onboarding.Mailer) *onboarding.Workflow {
	catalog := onboarding.Catalog{
		Plans:      appCfg.Onboarding.Plans,
		Dashboards: appCfg.Onboarding.Dashboards,
	}

	workflow := onboarding.NewWorkflow(store, catalog, notifier, &log.Logger)
	workflow.Mailer = mailer
	workflow.AckDuration = appCfg.Onboarding.AckDuration
	return workflow
}

func newSyncManager(notifier events.Notifier) *datasync.Manager {
	opts := datasync.Options{
		Steps:        appCfg.Sync.Steps,
		StepInterval: appCfg.Sync.StepInterval,
		ItemDelay:    appCfg.Sync.ItemDelay,
		Retention:    appCfg.Sync.Retention,
		Log:          &log.Logger,
	}
	if appCfg.Sync.SuccessRate != nil {
		opts.Outcome = datasync.WeightedOutcome{SuccessRate: *appCfg.Sync.SuccessRate}
	}
	return datasync.NewManager(store, notifier, opts)
}
