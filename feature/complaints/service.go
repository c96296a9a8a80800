package complaints

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"

	"go.uber.org/zap"
)

// ErrInvalidComplaint wraps validation failures of a submitted complaint.
var ErrInvalidComplaint = errors.New("invalid complaint")

// ComplaintStore persists new complaints.
type ComplaintStore interface {
	CreateComplaint(ctx context.Context, tenantID string, c reconcile.Complaint) (reconcile.Complaint, error)
}

// Report is the complaint list of one Panchayat.
type Report struct {
	TenantID       string                                        `json:"tenant_id"`
	Category       reconcile.ComplaintCategory                   `json:"category,omitempty"`
	Complaints     []reconcile.AssignedItem[reconcile.Complaint] `json:"complaints"`
	Status         map[reconcile.ComplaintStatus]int             `json:"status"`
	Categories     map[reconcile.ComplaintCategory]int           `json:"categories"`
	ResolutionRate float64                                       `json:"resolution_rate"`
	Degraded       []snapshot.Collection                         `json:"degraded,omitempty"`
}

// SubmitRequest is a new complaint as entered on the complaint form.
type SubmitRequest struct {
	LocationRef     string                `json:"location_ref" example:"H012"`
	Category        string                `json:"category" example:"Leakage"`
	Description     string                `json:"description" example:"Pipe burst near the gate"`
	GPS             *reconcile.Coordinate `json:"gps,omitempty"`
	AssignedStaffID *string               `json:"assigned_staff_id,omitempty"`
}

// Service builds complaint views and accepts submissions.
type Service struct {
	loader *snapshot.Loader
	store  ComplaintStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new complaints service.
func NewService(loader *snapshot.Loader, store ComplaintStore, logger *zap.Logger) *Service {
	return &Service{loader: loader, store: store, logger: logger, now: time.Now}
}

// List resolves complaint assignees. A non-empty category restricts the listed
// complaints and the status counts; Categories always covers every complaint.
func (s *Service) List(ctx context.Context, tenantID string, category reconcile.ComplaintCategory) *Report {
	snap := s.loader.Load(ctx, tenantID)

	categories := reconcile.StatusBreakdown(snap.Complaints, func(c reconcile.Complaint) reconcile.ComplaintCategory {
		return c.Category
	})

	selected := snap.Complaints
	if category != "" {
		selected = make([]reconcile.Complaint, 0, len(snap.Complaints))
		for _, c := range snap.Complaints {
			if c.Category == category {
				selected = append(selected, c)
			}
		}
	}

	items := reconcile.ReconcileAssignments(selected, snap.Staff)
	statuses := reconcile.StatusBreakdown(items, reconcile.AssignedComplaintStatus)

	return &Report{
		TenantID:       tenantID,
		Category:       category,
		Complaints:     items,
		Status:         statuses,
		Categories:     categories,
		ResolutionRate: reconcile.Percentage(statuses[reconcile.ComplaintResolved], len(items)),
		Degraded:       snap.Degraded,
	}
}

// Submit validates and stores a new complaint with status Pending.
func (s *Service) Submit(ctx context.Context, tenantID string, req SubmitRequest) (reconcile.Complaint, error) {
	complaint, err := req.toComplaint(s.now())
	if err != nil {
		return reconcile.Complaint{}, err
	}

	created, err := s.store.CreateComplaint(ctx, tenantID, complaint)
	if err != nil {
		return reconcile.Complaint{}, err
	}
	s.loader.Invalidate(tenantID)
	return created, nil
}

func (r SubmitRequest) toComplaint(at time.Time) (reconcile.Complaint, error) {
	location := strings.TrimSpace(r.LocationRef)
	if location == "" {
		return reconcile.Complaint{}, fmt.Errorf("%w: location_ref is required", ErrInvalidComplaint)
	}
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return reconcile.Complaint{}, fmt.Errorf("%w: description is required", ErrInvalidComplaint)
	}
	category, ok := reconcile.ParseComplaintCategory(r.Category)
	if !ok {
		return reconcile.Complaint{}, fmt.Errorf("%w: unknown category %q", ErrInvalidComplaint, r.Category)
	}
	if r.GPS != nil {
		if r.GPS.Latitude < -90 || r.GPS.Latitude > 90 || r.GPS.Longitude < -180 || r.GPS.Longitude > 180 {
			return reconcile.Complaint{}, fmt.Errorf("%w: gps out of range", ErrInvalidComplaint)
		}
	}

	assigned := r.AssignedStaffID
	if assigned != nil && strings.TrimSpace(*assigned) == "" {
		assigned = nil
	}

	return reconcile.Complaint{
		LocationRef:     location,
		Category:        category,
		Description:     description,
		GPS:             r.GPS,
		AssignedStaffID: assigned,
		Status:          reconcile.ComplaintPending,
		SubmittedAt:     at,
	}, nil
}
