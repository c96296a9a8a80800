package cmd

import (
	"fmt"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/feature/overview"

	"github.com/spf13/cobra"
)

// summaryCmd prints the home dashboard cards of one Panchayat.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the overview dashboard of one Panchayat",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		svc := overview.NewService(rt.loader, rt.logger, rt.cfg.Server.Location())
		now, err := svc.EvaluationTime(summaryNow)
		if err != nil {
			return err
		}

		ov := svc.Overview(cmd.Context(), summaryTenant, now)

		fmt.Println("\n=== Panchayat Overview ===")
		fmt.Printf("Tenant: %s\n", ov.TenantID)
		fmt.Printf("Evaluated At: %s\n", ov.EvaluatedAt.Format(time.RFC3339))
		fmt.Printf("Households: %d\n", ov.Households)
		fmt.Printf("Bills: %d (paid %.1f%%, pending %.1f%%)\n", ov.Billing.TotalBills, ov.Share.PaidPercent, ov.Share.PendingPercent)
		fmt.Printf("Overdue Bills: %d\n", ov.Billing.OverdueCount)
		fmt.Printf("Revenue: %s\n", ov.Billing.TotalRevenue.StringFixed(2))
		fmt.Printf("Outstanding: %s\n", ov.Billing.Outstanding.StringFixed(2))
		fmt.Printf("Staff On Duty: %d / %d\n", ov.Duty[reconcile.OnDuty], ov.Duty[reconcile.OnDuty]+ov.Duty[reconcile.OffDuty])
		fmt.Printf("Tasks: %d (completed %d, unassigned %d)\n", ov.TaskTotal, ov.TaskStatus[reconcile.TaskCompleted], ov.UnassignedTasks)
		fmt.Printf("Complaints: %d (resolved %d, unassigned %d)\n", ov.ComplaintTotal, ov.ComplaintStatus[reconcile.ComplaintResolved], ov.UnassignedComplaints)
		if ov.Supply.Recorded {
			fmt.Printf("Water Used Today: %dL of %dL (%.0f%%)\n", ov.Supply.TotalUsed, ov.Supply.TotalAvailable, ov.Supply.UsedPercent)
		} else {
			fmt.Println("Water Used Today: not recorded")
		}
		for _, d := range ov.Weekly {
			fmt.Printf("  %s %s: %dL\n", d.Weekday, d.Date, d.TotalUsed)
		}
		if ov.Tank.Recorded {
			fmt.Printf("Tank Last Cleaned: %s (%d days ago)\n", ov.Tank.LastCleaned.Format(time.DateOnly), ov.Tank.DaysSinceCleaning)
			fmt.Printf("Tank Next Cleaning: %s (overdue: %t)\n", ov.Tank.NextCleaning.Format(time.DateOnly), ov.Tank.Overdue)
		}
		printDegraded(ov.Degraded)

		if summaryJSON {
			return saveReport(rt.logger, "summary", summaryTenant, ov)
		}
		return nil
	},
}

var (
	summaryTenant string
	summaryNow    string
	summaryJSON   bool
)

func init() {
	summaryCmd.Flags().StringVar(&summaryTenant, "tenant", "", "Panchayat LGD code (required)")
	summaryCmd.Flags().StringVar(&summaryNow, "now", "", "Evaluation time (RFC3339 or YYYY-MM-DD)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Save the overview as a JSON file")
	_ = summaryCmd.MarkFlagRequired("tenant")

	RootCmd.AddCommand(summaryCmd)
}
