package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"jalsetu/core/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotTenant string
	snapshotOut    string
)

// snapshotCmd groups snapshot maintenance commands.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export or inspect tenant snapshots",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch a fresh snapshot, archive it when healthy and write it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		snap := rt.loader.Fetch(cmd.Context(), snapshotTenant)
		if snap.IsDegraded() {
			rt.logger.Warn("Exported snapshot is degraded", zap.Any("collections", snap.Degraded))
		}
		return writeSnapshot(rt.logger, snap)
	},
}

var snapshotArchivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "Print the archived snapshot of a tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		snap, err := rt.loader.Archived(cmd.Context(), snapshotTenant)
		if err != nil {
			return fmt.Errorf("failed to read archived snapshot: %w", err)
		}
		return writeSnapshot(rt.logger, snap)
	},
}

func init() {
	snapshotCmd.PersistentFlags().StringVar(&snapshotTenant, "tenant", "", "Panchayat LGD code (required)")
	snapshotCmd.PersistentFlags().StringVar(&snapshotOut, "out", "", "Output file (default stdout)")
	_ = snapshotCmd.MarkPersistentFlagRequired("tenant")

	snapshotCmd.AddCommand(snapshotExportCmd, snapshotArchivedCmd)
	RootCmd.AddCommand(snapshotCmd)
}

func writeSnapshot(logg *zap.Logger, snap *snapshot.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if snapshotOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(snapshotOut, data, 0644); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	logg.Info("Snapshot saved",
		zap.String("file", snapshotOut),
		zap.Int("usage_periods", len(snap.Usage)),
		zap.Int("payments", len(snap.Payments)),
	)
	return nil
}
