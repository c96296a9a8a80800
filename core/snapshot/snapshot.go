package snapshot

import (
	"time"

	"jalsetu/core/reconcile"
)

// Collection names one of the record collections in a snapshot.
type Collection string

const (
	CollectionUsage      Collection = "usage_periods"
	CollectionPayments   Collection = "payments"
	CollectionTasks      Collection = "tasks"
	CollectionStaff      Collection = "staff"
	CollectionComplaints Collection = "complaints"

	CollectionWaterMetrics  Collection = "water_metrics"
	CollectionTankCleanings Collection = "tank_cleanings"
)

// Snapshot is a consistent set of a tenant's records, ready for the engine.
// Collections are never nil.
type Snapshot struct {
	TenantID   string                  `json:"tenant_id"`
	Usage      []reconcile.UsagePeriod `json:"usage_periods"`
	Payments   []reconcile.Payment     `json:"payments"`
	Tasks      []reconcile.Task        `json:"tasks"`
	Staff      []reconcile.Staff       `json:"staff"`
	Complaints []reconcile.Complaint   `json:"complaints"`

	WaterMetrics  []reconcile.WaterMetric  `json:"water_metrics"`
	TankCleanings []reconcile.TankCleaning `json:"tank_cleanings"`

	LoadedAt time.Time `json:"loaded_at"`
	// Degraded lists collections whose fetch failed and were replaced by an
	// archived copy or an empty collection.
	Degraded []Collection `json:"degraded,omitempty"`
}

// IsDegraded reports whether any collection was substituted.
func (s *Snapshot) IsDegraded() bool {
	return len(s.Degraded) > 0
}

// ensureCollections replaces nil collections with empty ones.
func (s *Snapshot) ensureCollections() {
	if s.Usage == nil {
		s.Usage = []reconcile.UsagePeriod{}
	}
	if s.Payments == nil {
		s.Payments = []reconcile.Payment{}
	}
	if s.Tasks == nil {
		s.Tasks = []reconcile.Task{}
	}
	if s.Staff == nil {
		s.Staff = []reconcile.Staff{}
	}
	if s.Complaints == nil {
		s.Complaints = []reconcile.Complaint{}
	}
	if s.WaterMetrics == nil {
		s.WaterMetrics = []reconcile.WaterMetric{}
	}
	if s.TankCleanings == nil {
		s.TankCleanings = []reconcile.TankCleaning{}
	}
}
