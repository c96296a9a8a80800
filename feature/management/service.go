package management

import (
	"context"
	"time"

	"jalsetu/core/reconcile"
	"jalsetu/core/snapshot"

	"go.uber.org/zap"
)

// TaskStore is the subset of the record store the management screens mutate.
type TaskStore interface {
	CompleteTask(ctx context.Context, tenantID, taskID string, at time.Time) (*reconcile.Task, error)
	SetDutyStatus(ctx context.Context, tenantID, staffID string, status reconcile.DutyStatus) error
}

// Dashboard is the staff and task view of one Panchayat.
type Dashboard struct {
	TenantID       string                                   `json:"tenant_id"`
	Staff          []reconcile.Staff                        `json:"staff"`
	Duty           map[reconcile.DutyStatus]int             `json:"duty"`
	Tasks          []reconcile.AssignedItem[reconcile.Task] `json:"tasks"`
	TaskStatus     map[reconcile.TaskStatus]int             `json:"task_status"`
	CompletionRate float64                                  `json:"completion_rate"`
	Orphaned       int                                      `json:"orphaned"`
	Degraded       []snapshot.Collection                    `json:"degraded,omitempty"`
}

// Service builds the management dashboard and applies its mutations.
type Service struct {
	loader *snapshot.Loader
	store  TaskStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new management service.
func NewService(loader *snapshot.Loader, store TaskStore, logger *zap.Logger) *Service {
	return &Service{loader: loader, store: store, logger: logger, now: time.Now}
}

// Dashboard resolves task assignees and tallies staff duty and task progress.
func (s *Service) Dashboard(ctx context.Context, tenantID string) *Dashboard {
	snap := s.loader.Load(ctx, tenantID)

	tasks := reconcile.ReconcileAssignments(snap.Tasks, snap.Staff)
	statuses := reconcile.StatusBreakdown(tasks, reconcile.AssignedTaskStatus)

	orphaned := 0
	for _, t := range tasks {
		if t.Orphaned {
			orphaned++
		}
	}
	if orphaned > 0 {
		s.logger.Warn("Tasks reference unknown staff",
			zap.String("tenant", tenantID),
			zap.Int("count", orphaned),
		)
	}

	return &Dashboard{
		TenantID:       tenantID,
		Staff:          snap.Staff,
		Duty:           reconcile.DutyBreakdown(snap.Staff),
		Tasks:          tasks,
		TaskStatus:     statuses,
		CompletionRate: reconcile.Percentage(statuses[reconcile.TaskCompleted], len(tasks)),
		Orphaned:       orphaned,
		Degraded:       snap.Degraded,
	}
}

// CompleteTask marks a task done now and drops the tenant's cached snapshot.
func (s *Service) CompleteTask(ctx context.Context, tenantID, taskID string) (*reconcile.Task, error) {
	task, err := s.store.CompleteTask(ctx, tenantID, taskID, s.now())
	if err != nil {
		return nil, err
	}
	s.loader.Invalidate(tenantID)
	return task, nil
}

// SetDutyStatus toggles a staff member's duty status.
func (s *Service) SetDutyStatus(ctx context.Context, tenantID, staffID string, status reconcile.DutyStatus) error {
	if err := s.store.SetDutyStatus(ctx, tenantID, staffID, status); err != nil {
		return err
	}
	s.loader.Invalidate(tenantID)
	return nil
}
