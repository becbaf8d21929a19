package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EO-DataHub/eodhp-admin-services/internal/datasync"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	syncIDs          []string
	syncForceSuccess bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise data sources and print the progress",
	Long:  `Runs a bulk sync and exits non-zero when any data source failed.`,
	// Failures are reported by Execute once the deferred cleanup has run
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {

		ids, err := parseIDs(syncIDs)
		if err != nil {
			return err
		}

		// Load the config, initialize the store and set up logging
		commonSetUp()
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		notifier := newNotifier()
		defer notifier.Close()

		syncManager := newSyncManager(notifier)
		defer syncManager.Shutdown()

		var outcome datasync.Outcome
		if syncForceSuccess {
			outcome = datasync.ForcedOutcome(true)
		}

		return runSync(ctx, syncManager, ids, outcome, cmd.OutOrStdout(), 250*time.Millisecond)
	},
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid data source ID %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// runSync runs a bulk sync to completion, printing progress every interval.
// It returns an error when the run is interrupted or any item failed.
func runSync(ctx context.Context, manager *datasync.Manager, ids []uuid.UUID, outcome datasync.Outcome, out io.Writer, interval time.Duration) error {
	if _, err := manager.SyncAll(ctx, ids, outcome); err != nil {
		return fmt.Errorf("failed to start sync: %w", err)
	}
	bulk, _ := manager.Bulk()

	printProgress := func(s datasync.BulkSnapshot) {
		fmt.Fprintf(out, "\r%3d%%  %d/%d  ok=%d failed=%d", s.Percent, s.Processed, s.Total, s.SuccessCount, s.ErrorCount)
	}

	done := make(chan struct{})
	go func() {
		bulk.Wait()
		close(done)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

wait:
	for {
		select {
		case <-done:
			break wait
		case <-ticker.C:
			printProgress(bulk.Snapshot())
		case <-ctx.Done():
			fmt.Fprintln(out)
			log.Warn().Msg("Sync interrupted")
			return ctx.Err()
		}
	}

	snap := bulk.Snapshot()
	printProgress(snap)
	fmt.Fprintln(out)
	for _, item := range snap.Items {
		fmt.Fprintf(out, "%-8s %s %s\n", item.State, item.DataSourceID, item.Name)
	}
	if snap.ErrorCount > 0 {
		return fmt.Errorf("%d of %d data sources failed to sync", snap.ErrorCount, snap.Total)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringSliceVar(&syncIDs, "id", nil, "data source IDs to sync (default all)")
	syncCmd.Flags().BoolVar(&syncForceSuccess, "force-success", false, "make every sync succeed")
}
