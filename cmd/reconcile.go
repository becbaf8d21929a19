package cmd

import (
	"context"

	"github.com/EO-DataHub/eodhp-admin-services/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-derive the dashboard count of every client from its assigned dashboards",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the store and set up logging
		commonSetUp()
		defer store.Close()

		ctx := context.Background()

		clients, err := store.ListClients(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Error fetching clients")
		}

		log.Info().Msg("Starting reconciliation process...")

		fixed := 0
		for _, client := range clients {
			if client.DashboardCount == len(client.AssignedDashboards) {
				continue
			}

			log.Info().
				Str("client_id", client.ID.String()).
				Int("stored", client.DashboardCount).
				Int("assigned", len(client.AssignedDashboards)).
				Msg("Fixing dashboard count")

			// An empty update only re-derives the count
			if _, err := store.UpdateClient(ctx, client.ID, models.ClientUpdate{}); err != nil {
				log.Error().Err(err).Str("client_id", client.ID.String()).Msg("Failed to update client")
				continue
			}
			fixed++
		}

		log.Info().Int("checked", len(clients)).Int("fixed", fixed).Msg("Reconciliation process completed")
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
