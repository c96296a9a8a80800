// Package management serves the staff and maintenance task screens.
//
// Tasks are joined with the staff roster by reconcile.ReconcileAssignments:
// a task whose assignee is missing or unknown shows as "Unassigned" and is never
// dropped. Orphaned references are counted and logged.
//
// # HTTP Endpoints
//
//   - GET /management/:tenant
//   - POST /management/:tenant/tasks/:task/complete
//   - PUT /management/:tenant/staff/:staff/duty
package management
