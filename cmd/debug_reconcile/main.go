// Command debug_reconcile replays billing reconciliation against a snapshot file
// exported with `jalsetu snapshot export`, without touching the record store.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"
	"jalsetu/core/utils"
)

func main() {
	file := flag.String("file", "", "snapshot JSON file")
	now := flag.String("now", "", "evaluation time (RFC3339 or YYYY-MM-DD)")
	subscriber := flag.String("subscriber", "", "only show this subscriber")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Fatalf("failed to decode snapshot: %v", err)
	}

	at, err := utils.ParseEvaluationTime(*now, time.UTC, time.Now())
	if err != nil {
		log.Fatal(err)
	}

	rows := reconcile.ReconcileBilling(snap.Usage, snap.Payments, at)
	if *subscriber != "" {
		rows = reconcile.SubscriberUsage(rows, *subscriber)
	}

	fmt.Printf("=== %s as of %s ===\n", snap.TenantID, at.Format(time.DateOnly))
	for _, r := range rows {
		paid := "-"
		if r.Payment != nil {
			paid = r.Payment.ID
		}
		fmt.Printf("%-10s %-16s %-8s due %-10s amount %10s payment %s",
			r.Usage.SubscriberID, r.Usage.PeriodLabel, r.Status,
			r.Usage.DueDate.Format(time.DateOnly), r.Usage.AmountDue.StringFixed(2), paid)
		if r.DataError {
			fmt.Printf(" DATA ERROR %v", r.Problems)
		}
		fmt.Println()
	}

	sum := reconcile.Summarize(rows)
	fmt.Printf("\nBills %d, paid %d, pending %d, overdue %d, data errors %d\n",
		sum.TotalBills, sum.PaidCount, sum.PendingCount, sum.OverdueCount, sum.DataErrors)
	fmt.Printf("Revenue %s, outstanding %s\n", sum.TotalRevenue.StringFixed(2), sum.Outstanding.StringFixed(2))
}
