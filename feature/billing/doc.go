// Package billing serves the billing dashboards.
//
// Each request loads the tenant snapshot, reconciles usage periods against
// completed payments at the evaluation time, and returns rows with Paid, Pending
// or Overdue status alongside the summary cards, the paid/pending share and the
// per-period revenue trend.
//
// # HTTP Endpoints
//
//   - GET /billing/:tenant : admin view (supports ?now= and ?status=).
//   - GET /billing/:tenant/subscribers/:subscriber : citizen view.
package billing
