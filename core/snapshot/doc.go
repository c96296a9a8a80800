// Package snapshot loads a tenant's record collections for the dashboards.
//
// A Loader fetches usage periods, payments, tasks, staff and complaints
// concurrently from a records.Source. A failed fetch is replaced by the
// collection from the last archived snapshot in object storage, or by an empty
// collection, and is named in Snapshot.Degraded, so the reconciliation engine
// always receives complete inputs.
//
// Healthy snapshots are cached per tenant for Config.CacheTTLSeconds and archived
// to "<prefix>/<tenant>.json". Loads for the same tenant are collapsed with
// singleflight.
package snapshot
