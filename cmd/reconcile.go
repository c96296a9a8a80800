package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"
	"jalsetu/feature/billing"
	"jalsetu/feature/complaints"
	"jalsetu/feature/management"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	tenantFlag   string
	nowFlag      string
	jsonFlag     bool
	statusFlag   string
	categoryFlag string
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile billing, tasks or complaints for one Panchayat",
	Long: `Loads a tenant snapshot and prints the reconciled metrics.

Examples:
  # Billing as of today
  reconcile billing --tenant 123456

  # Billing as of a fixed date, detailed JSON written to a file
  reconcile billing --tenant 123456 --now 2025-10-10 --json

  # Task assignments
  reconcile tasks --tenant 123456

  # Leakage complaints only
  reconcile complaints --tenant 123456 --category Leakage`,
}

var billingReconcileCmd = &cobra.Command{
	Use:   "billing",
	Short: "Classify every usage period as Paid, Pending or Overdue",
	RunE:  runBillingReconcile,
}

var tasksReconcileCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Resolve task assignees against the staff roster",
	RunE:  runTasksReconcile,
}

var complaintsReconcileCmd = &cobra.Command{
	Use:   "complaints",
	Short: "Resolve complaint assignees against the staff roster",
	RunE:  runComplaintsReconcile,
}

func init() {
	reconcileCmd.AddCommand(billingReconcileCmd, tasksReconcileCmd, complaintsReconcileCmd)

	reconcileCmd.PersistentFlags().StringVar(&tenantFlag, "tenant", "", "Panchayat LGD code (required)")
	reconcileCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Save the detailed result as a JSON file")
	_ = reconcileCmd.MarkPersistentFlagRequired("tenant")

	billingReconcileCmd.Flags().StringVar(&nowFlag, "now", "", "Evaluation time (RFC3339 or YYYY-MM-DD)")
	billingReconcileCmd.Flags().StringVar(&statusFlag, "status", "", "Only list periods with this status")
	complaintsReconcileCmd.Flags().StringVar(&categoryFlag, "category", "", "Only list complaints in this category")

	RootCmd.AddCommand(reconcileCmd)
}

func runBillingReconcile(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	var filter *reconcile.UsageStatus
	if statusFlag != "" {
		status, ok := reconcile.ParseUsageStatus(statusFlag)
		if !ok {
			return fmt.Errorf("unknown billing status %q", statusFlag)
		}
		filter = &status
	}

	svc := billing.NewService(rt.loader, rt.logger, rt.cfg.Server.Location())
	now, err := svc.EvaluationTime(nowFlag)
	if err != nil {
		return err
	}

	dash := svc.Dashboard(cmd.Context(), tenantFlag, now, filter)
	sum := dash.Summary

	fmt.Println("\n=== Billing Reconciliation ===")
	fmt.Printf("Tenant: %s\n", dash.TenantID)
	fmt.Printf("Evaluated At: %s\n", dash.EvaluatedAt.Format(time.RFC3339))
	fmt.Printf("Total Bills: %d\n", sum.TotalBills)
	fmt.Printf("Paid: %d (%.1f%%)\n", sum.PaidCount, dash.Share.PaidPercent)
	fmt.Printf("Pending: %d\n", sum.PendingCount)
	fmt.Printf("Overdue: %d\n", sum.OverdueCount)
	fmt.Printf("Data Errors: %d\n", sum.DataErrors)
	fmt.Printf("Total Revenue: %s\n", sum.TotalRevenue.StringFixed(2))
	fmt.Printf("Outstanding: %s\n", sum.Outstanding.StringFixed(2))
	printDegraded(dash.Degraded)

	if jsonFlag {
		if err := saveReport(rt.logger, "billing", tenantFlag, dash); err != nil {
			return err
		}
	}

	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
	return nil
}

func runTasksReconcile(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	svc := management.NewService(rt.loader, rt.store, rt.logger)
	dash := svc.Dashboard(cmd.Context(), tenantFlag)

	unassigned := 0
	for _, t := range dash.Tasks {
		if !t.Assigned {
			unassigned++
		}
	}

	fmt.Println("\n=== Task Reconciliation ===")
	fmt.Printf("Tenant: %s\n", dash.TenantID)
	fmt.Printf("Staff: %d (on duty %d, off duty %d)\n", len(dash.Staff), dash.Duty[reconcile.OnDuty], dash.Duty[reconcile.OffDuty])
	fmt.Printf("Total Tasks: %d\n", len(dash.Tasks))
	fmt.Printf("Pending: %d\n", dash.TaskStatus[reconcile.TaskPending])
	fmt.Printf("In Progress: %d\n", dash.TaskStatus[reconcile.TaskInProgress])
	fmt.Printf("Completed: %d (%.1f%%)\n", dash.TaskStatus[reconcile.TaskCompleted], dash.CompletionRate)
	fmt.Printf("Unassigned: %d\n", unassigned)
	fmt.Printf("Unknown Assignee: %d\n", dash.Orphaned)
	printDegraded(dash.Degraded)

	if jsonFlag {
		if err := saveReport(rt.logger, "tasks", tenantFlag, dash); err != nil {
			return err
		}
	}

	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
	return nil
}

func runComplaintsReconcile(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	var category reconcile.ComplaintCategory
	if categoryFlag != "" {
		c, ok := reconcile.ParseComplaintCategory(categoryFlag)
		if !ok {
			return fmt.Errorf("unknown complaint category %q", categoryFlag)
		}
		category = c
	}

	svc := complaints.NewService(rt.loader, rt.store, rt.logger)
	report := svc.List(cmd.Context(), tenantFlag, category)

	fmt.Println("\n=== Complaint Reconciliation ===")
	fmt.Printf("Tenant: %s\n", report.TenantID)
	if category != "" {
		fmt.Printf("Category: %s\n", category)
	}
	fmt.Printf("Total Complaints: %d\n", len(report.Complaints))
	fmt.Printf("Pending: %d\n", report.Status[reconcile.ComplaintPending])
	fmt.Printf("In Progress: %d\n", report.Status[reconcile.ComplaintInProgress])
	fmt.Printf("Resolved: %d (%.1f%%)\n", report.Status[reconcile.ComplaintResolved], report.ResolutionRate)
	for cat, n := range report.Categories {
		fmt.Printf("  %s: %d\n", cat, n)
	}
	printDegraded(report.Degraded)

	if jsonFlag {
		if err := saveReport(rt.logger, "complaints", tenantFlag, report); err != nil {
			return err
		}
	}

	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())
	return nil
}

// saveReport writes v as indented JSON to reconcile_<kind>_<tenant>_<unix>.json.
func saveReport(logg *zap.Logger, kind, tenantID string, v any) error {
	filename := fmt.Sprintf("reconcile_%s_%s_%d.json", kind, tenantID, time.Now().Unix())
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	logg.Info("Detailed JSON report saved", zap.String("file", filename))
	fmt.Printf("\nDetailed JSON saved to: %s\n", filename)
	return nil
}

func printDegraded(collections []snapshot.Collection) {
	if len(collections) == 0 {
		return
	}
	fmt.Printf("Degraded Collections: %v\n", collections)
}
