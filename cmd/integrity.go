package cmd

import (
	"context"
	"fmt"
	"os"

	"jalsetu/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the record store schema and the snapshot archive",
	Long:  `Compares the record tables with the expected models and verifies the snapshot archive bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the record store schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// archiveCmd represents the integrity archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check and fix the snapshot archive",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, archiveCmd)

	archiveCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket or prefix")
}

func runIntegrityChecks(ctx context.Context, runSchema, runArchive bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(false)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Snapshot.Prefix, logg, rt.db)

	if runSchema {
		logg.Info("Checking record store schema...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Record store schema matches the models.")
		} else {
			logg.Warn("Record store schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if !runArchive {
		return
	}
	if rt.client == nil {
		logg.Error("Archive check skipped: object storage unavailable")
		return
	}

	logg.Info("Checking snapshot archive...", zap.String("bucket", rt.cfg.Storage.Bucket))
	report, err := svc.CheckArchive(ctx)
	if err != nil {
		logg.Fatal("Archive check failed", zap.Error(err))
	}

	if len(report.Unreadable) > 0 {
		logg.Warn("Unreadable snapshots detected", zap.Strings("objects", report.Unreadable))
	}
	if len(report.Missing) == 0 {
		logg.Info("Archive is intact.", zap.Int("snapshots", report.Snapshots))
		return
	}

	logg.Warn("Missing archive parts detected", zap.Strings("missing", report.Missing))
	if !fixFlag {
		logg.Info("Run with --fix to create the missing parts.")
		return
	}

	logg.Info("Fixing snapshot archive...")
	if err := svc.FixArchive(ctx, report.Missing); err != nil {
		logg.Fatal("Failed to fix archive", zap.Error(err))
	}
	logg.Info("Archive fixed successfully.")
}
