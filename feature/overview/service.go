package overview

import (
	"context"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"
	"jalsetu/core/utils"

	"go.uber.org/zap"
)

// Overview holds the home dashboard cards of one Panchayat.
type Overview struct {
	TenantID             string                            `json:"tenant_id"`
	EvaluatedAt          time.Time                         `json:"evaluated_at"`
	Households           int                               `json:"households"`
	Billing              reconcile.BillingSummary          `json:"billing"`
	Share                reconcile.PaymentShare            `json:"share"`
	Duty                 map[reconcile.DutyStatus]int      `json:"duty"`
	TaskTotal            int                               `json:"task_total"`
	TaskStatus           map[reconcile.TaskStatus]int      `json:"task_status"`
	UnassignedTasks      int                               `json:"unassigned_tasks"`
	ComplaintTotal       int                               `json:"complaint_total"`
	ComplaintStatus      map[reconcile.ComplaintStatus]int `json:"complaint_status"`
	UnassignedComplaints int                               `json:"unassigned_complaints"`
	Supply               reconcile.DailyUsage              `json:"supply"`
	Weekly               []reconcile.DailyUsage            `json:"weekly"`
	Tank                 reconcile.TankStatus              `json:"tank"`
	Degraded             []snapshot.Collection             `json:"degraded,omitempty"`
}

// Service computes the home dashboard from a tenant snapshot.
type Service struct {
	loader *snapshot.Loader
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new overview service.
func NewService(loader *snapshot.Loader, logger *zap.Logger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{loader: loader, logger: logger, loc: loc, now: time.Now}
}

// EvaluationTime parses a ?now= override, defaulting to the current time.
func (s *Service) EvaluationTime(raw string) (time.Time, error) {
	return utils.ParseEvaluationTime(raw, s.loc, s.now())
}

// Overview combines billing, staff, task, complaint, water supply and tank figures.
// Supply days are calendar days in the service's time zone.
func (s *Service) Overview(ctx context.Context, tenantID string, now time.Time) *Overview {
	snap := s.loader.Load(ctx, tenantID)
	local := now.In(s.loc)

	billing := reconcile.Summarize(reconcile.ReconcileBilling(snap.Usage, snap.Payments, now))
	tasks := reconcile.ReconcileAssignments(snap.Tasks, snap.Staff)
	complaints := reconcile.ReconcileAssignments(snap.Complaints, snap.Staff)

	households := make(map[string]struct{})
	for _, u := range snap.Usage {
		if u.SubscriberID != "" {
			households[u.SubscriberID] = struct{}{}
		}
	}

	return &Overview{
		TenantID:             tenantID,
		EvaluatedAt:          now,
		Households:           len(households),
		Billing:              billing,
		Share:                reconcile.Share(billing),
		Duty:                 reconcile.DutyBreakdown(snap.Staff),
		TaskTotal:            len(tasks),
		TaskStatus:           reconcile.StatusBreakdown(tasks, reconcile.AssignedTaskStatus),
		UnassignedTasks:      countUnassigned(tasks),
		ComplaintTotal:       len(complaints),
		ComplaintStatus:      reconcile.StatusBreakdown(complaints, reconcile.AssignedComplaintStatus),
		UnassignedComplaints: countUnassigned(complaints),
		Supply:               reconcile.UsageOn(snap.WaterMetrics, local),
		Weekly:               reconcile.WeeklyTrend(snap.WaterMetrics, local),
		Tank:                 reconcile.TankStatusAt(snap.TankCleanings, now),
		Degraded:             snap.Degraded,
	}
}

func countUnassigned[T reconcile.Assignable](items []reconcile.AssignedItem[T]) int {
	n := 0
	for _, item := range items {
		if !item.Assigned {
			n++
		}
	}
	return n
}
