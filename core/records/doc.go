// Package records is the record store behind the dashboards.
//
// It maps the Panchayat tables (water_usage, payments, tasks, staffs, complaints,
// water_metrics, tank_cleanings) with GORM and exposes them through the Source interface, always scoped by the
// tenant's LGD code. Rows are normalised into core/reconcile types on the way out,
// so status spelling drift in stored data never reaches the engine.
//
// # Mutations
//
//   - CompleteTask: marks a task Completed and credits the assignee.
//   - SetDutyStatus: toggles a staff member on or off duty.
//   - CreateComplaint: stores a new complaint with a UUID.
//
// # Usage
//
//	store := records.NewStore(db, logger)
//	usage, err := store.FetchUsagePeriods(ctx, "LGD-123")
package records
