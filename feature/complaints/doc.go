// Package complaints serves the complaint list and the complaint form.
//
// Listing joins complaints with the staff roster the same way tasks are joined
// on the management screen. The category filter mirrors the Household and
// Leakage tabs. Submissions are validated, stamped Pending and stored with a
// generated id; the optional GPS fix must be a valid coordinate.
//
// # HTTP Endpoints
//
//   - GET /complaints/:tenant (supports ?category=)
//   - POST /complaints/:tenant
package complaints
