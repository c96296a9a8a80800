package billing

import (
	"context"
	"errors"
	"slices"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"
	"jalsetu/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrUnknownSubscriber is returned when a subscriber has no usage periods.
	ErrUnknownSubscriber = errors.New("subscriber has no usage periods")

	// ErrUsageUnavailable is returned when a subscriber cannot be found because
	// the usage collection failed to load and no archived copy held the subscriber.
	ErrUsageUnavailable = errors.New("usage periods are temporarily unavailable")
)

// Dashboard is the admin billing view of one Panchayat.
type Dashboard struct {
	TenantID    string                      `json:"tenant_id"`
	EvaluatedAt time.Time                   `json:"evaluated_at"`
	Usage       []reconcile.ReconciledUsage `json:"usage"`
	Summary     reconcile.BillingSummary    `json:"summary"`
	Share       reconcile.PaymentShare      `json:"share"`
	Revenue     []reconcile.PeriodRevenue   `json:"revenue"`
	Degraded    []snapshot.Collection       `json:"degraded,omitempty"`
}

// SubscriberView is the citizen billing view: own periods plus payment history.
type SubscriberView struct {
	TenantID     string                      `json:"tenant_id"`
	SubscriberID string                      `json:"subscriber_id"`
	EvaluatedAt  time.Time                   `json:"evaluated_at"`
	Usage        []reconcile.ReconciledUsage `json:"usage"`
	Summary      reconcile.BillingSummary    `json:"summary"`
	Payments     []reconcile.Payment         `json:"payments"`
	Degraded     []snapshot.Collection       `json:"degraded,omitempty"`
}

// Service builds billing views from tenant snapshots.
type Service struct {
	loader *snapshot.Loader
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new billing service. loc is used to read bare dates.
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

// Dashboard reconciles every usage period of the tenant at now.
// A non-nil filter restricts the listed rows; the summary always covers all rows.
func (s *Service) Dashboard(ctx context.Context, tenantID string, now time.Time, filter *reconcile.UsageStatus) *Dashboard {
	snap := s.loader.Load(ctx, tenantID)
	rows := reconcile.ReconcileBilling(snap.Usage, snap.Payments, now)
	summary := reconcile.Summarize(rows)

	if summary.DataErrors > 0 {
		s.logger.Warn("Malformed usage periods",
			zap.String("tenant", tenantID),
			zap.Int("count", summary.DataErrors),
		)
	}

	listed := rows
	if filter != nil {
		listed = make([]reconcile.ReconciledUsage, 0, len(rows))
		for _, r := range rows {
			if r.Status == *filter {
				listed = append(listed, r)
			}
		}
	}

	return &Dashboard{
		TenantID:    tenantID,
		EvaluatedAt: now,
		Usage:       listed,
		Summary:     summary,
		Share:       reconcile.Share(summary),
		Revenue:     reconcile.RevenueByPeriod(rows),
		Degraded:    snap.Degraded,
	}
}

// Subscriber returns the billing view of a single household.
func (s *Service) Subscriber(ctx context.Context, tenantID, subscriberID string, now time.Time) (*SubscriberView, error) {
	snap := s.loader.Load(ctx, tenantID)
	rows := reconcile.SubscriberUsage(reconcile.ReconcileBilling(snap.Usage, snap.Payments, now), subscriberID)
	if len(rows) == 0 {
		if slices.Contains(snap.Degraded, snapshot.CollectionUsage) {
			return nil, ErrUsageUnavailable
		}
		return nil, ErrUnknownSubscriber
	}

	payments := make([]reconcile.Payment, 0)
	for _, p := range snap.Payments {
		if p.SubscriberID == subscriberID {
			payments = append(payments, p)
		}
	}

	return &SubscriberView{
		TenantID:     tenantID,
		SubscriberID: subscriberID,
		EvaluatedAt:  now,
		Usage:        rows,
		Summary:      reconcile.Summarize(rows),
		Payments:     payments,
		Degraded:     snap.Degraded,
	}, nil
}
