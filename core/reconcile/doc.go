// Package reconcile provides the pure reconciliation engine behind every dashboard
// of the water-supply portal.
//
// Records arrive from independent sources (usage periods, payments, tasks, staff and
// complaints). The engine joins them by foreign key, derives a present-tense status
// for each joined result and aggregates the results into the numbers shown on
// summary cards.
//
// # Architecture
//
// The package consists of two components:
//
// 1. Engine: ReconcileBilling joins usage periods with payments and classifies each
// period as Paid, Pending or Overdue. ReconcileAssignments resolves the staff member
// assigned to a task or complaint, falling back to the "Unassigned" sentinel.
//
// 2. Aggregator: Summarize, StatusBreakdown, Percentage and friends compute totals,
// tallies and shares over reconciled results.
//
// 3. Supply: UsageOn, WeeklyTrend and TankStatusAt turn daily water metrics and
// tank cleanings into the supply and maintenance cards.
//
// # Guarantees
//
//   - No I/O and no state between calls. The evaluation time is always passed in.
//   - Inputs are never mutated; outputs preserve input order.
//   - Bad records fail soft: a malformed usage period is reported with DataError set
//     and the rest of the batch is still classified.
//   - Aggregates over empty input are zero values, never errors.
//
// # Usage Example
//
//	rows := reconcile.ReconcileBilling(usage, payments, time.Now())
//	summary := reconcile.Summarize(rows)
//
//	tasks := reconcile.ReconcileAssignments(snapshot.Tasks, snapshot.Staff)
//	byStatus := reconcile.StatusBreakdown(tasks, reconcile.AssignedTaskStatus)
package reconcile
