package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/EO-DataHub/eodhp-admin-services/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer to process data source sync requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the store and set up logging
		commonSetUp()
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Initialize event consumer
		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		notifier := newNotifier()
		defer notifier.Close()

		syncManager := newSyncManager(notifier)
		defer syncManager.Shutdown()

		// Consume messages
		for {
			log.Debug().Msg("Waiting for messages...")
			msg, err := consumer.ReceiveMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Info().Msg("Consumer stopped")
					return
				}
				log.Error().Err(err).Msg("Error receiving message")
				continue
			}

			req, err := events.DecodeSyncRequest(msg.Payload())
			if err != nil {
				log.Error().Err(err).Msg("Discarding invalid sync request")
				consumer.Ack(msg)
				continue
			}

			var outcome datasync.Outcome
			if req.ForceSuccess {
				outcome = datasync.ForcedOutcome(true)
			}

			snap, err := syncManager.SyncAll(ctx, req.DataSourceIDs, outcome)
			if errors.Is(err, datasync.ErrBusy) {
				// Redeliver once the current run has finished
				log.Warn().Msg("Bulk sync already running")
				consumer.Nack(msg)
				continue
			}
			if err != nil {
				log.Error().Err(err).Msg("Failed to start bulk sync")
				consumer.Nack(msg)
				continue
			}

			log.Info().Int("total", snap.Total).Msg("Bulk sync started from request")
			consumer.Ack(msg)

			if bulk, ok := syncManager.Bulk(); ok {
				bulk.Wait()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
