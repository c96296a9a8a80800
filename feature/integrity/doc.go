// Package integrity provides operational health checks.
//
// # Checks Provided
//
//   - Schema: validates that the record store tables (water_usage, payments, tasks,
//     staffs, complaints, water_metrics, tank_cleanings) carry the columns and types the record models expect.
//   - Archive: checks that the snapshot bucket and prefix exist and that every archived
//     snapshot decodes and names the tenant its key says. Missing parts can be created.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
