package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jalsetu/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a mutation matches no row for the tenant.
	ErrNotFound = errors.New("record not found")

	// ErrNoDatabase is returned when the store was built without a connection.
	ErrNoDatabase = errors.New("database connection is nil")
)

// Source supplies raw, tenant-scoped record collections.
// Each fetch may fail; callers decide how to degrade.
type Source interface {
	FetchUsagePeriods(ctx context.Context, tenantID string) ([]reconcile.UsagePeriod, error)
	FetchPayments(ctx context.Context, tenantID string) ([]reconcile.Payment, error)
	FetchTasks(ctx context.Context, tenantID string) ([]reconcile.Task, error)
	FetchStaff(ctx context.Context, tenantID string) ([]reconcile.Staff, error)
	FetchComplaints(ctx context.Context, tenantID string) ([]reconcile.Complaint, error)
	FetchWaterMetrics(ctx context.Context, tenantID string) ([]reconcile.WaterMetric, error)
	FetchTankCleanings(ctx context.Context, tenantID string) ([]reconcile.TankCleaning, error)
}

// metricDays bounds how many daily water metrics a fetch returns.
const metricDays = 31

// Store is the gorm-backed Source, plus the few mutations the dashboards perform.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a new store. A nil db yields a store whose calls fail with ErrNoDatabase.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

func (s *Store) scoped(ctx context.Context, tenantID string) (*gorm.DB, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return s.db.WithContext(ctx).Where("panchayat_lgd = ?", tenantID), nil
}

// FetchUsagePeriods returns the tenant's usage periods, newest period first.
func (s *Store) FetchUsagePeriods(ctx context.Context, tenantID string) ([]reconcile.UsagePeriod, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []WaterUsage
	if err := q.Order("year DESC, month_number DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch usage periods: %w", err)
	}

	out := make([]reconcile.UsagePeriod, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out, nil
}

// FetchPayments returns the tenant's payments.
func (s *Store) FetchPayments(ctx context.Context, tenantID string) ([]reconcile.Payment, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []PaymentRow
	if err := q.Order("payment_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	out := make([]reconcile.Payment, 0, len(rows))
	for _, r := range rows {
		p, ok := r.ToDomain()
		if !ok {
			s.warnStatus("payments", r.ID, r.Status)
		}
		out = append(out, p)
	}
	return out, nil
}

// FetchTasks returns the tenant's tasks, newest first.
func (s *Store) FetchTasks(ctx context.Context, tenantID string) ([]reconcile.Task, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []TaskRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	out := make([]reconcile.Task, 0, len(rows))
	for _, r := range rows {
		t, ok := r.ToDomain()
		if !ok {
			s.warnStatus("tasks", r.TaskID, r.Status)
		}
		out = append(out, t)
	}
	return out, nil
}

// FetchStaff returns the tenant's staff.
func (s *Store) FetchStaff(ctx context.Context, tenantID string) ([]reconcile.Staff, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []StaffRow
	if err := q.Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	out := make([]reconcile.Staff, 0, len(rows))
	for _, r := range rows {
		st, ok := r.ToDomain()
		if !ok {
			s.warnStatus("staffs", r.ID, r.DutyStatus)
		}
		out = append(out, st)
	}
	return out, nil
}

// FetchComplaints returns the tenant's complaints, newest first.
func (s *Store) FetchComplaints(ctx context.Context, tenantID string) ([]reconcile.Complaint, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []ComplaintRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch complaints: %w", err)
	}

	out := make([]reconcile.Complaint, 0, len(rows))
	for _, r := range rows {
		c, ok := r.ToDomain()
		if !ok {
			s.warnStatus("complaints", r.ID, r.Status+"/"+r.Type)
		}
		out = append(out, c)
	}
	return out, nil
}

// FetchWaterMetrics returns the tenant's most recent daily water metrics, newest first.
func (s *Store) FetchWaterMetrics(ctx context.Context, tenantID string) ([]reconcile.WaterMetric, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []WaterMetricRow
	if err := q.Order("date DESC").Limit(metricDays).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch water metrics: %w", err)
	}

	out := make([]reconcile.WaterMetric, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out, nil
}

// FetchTankCleanings returns the tenant's tank cleanings, newest first.
func (s *Store) FetchTankCleanings(ctx context.Context, tenantID string) ([]reconcile.TankCleaning, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var rows []TankCleaningRow
	if err := q.Order("cleaned_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tank cleanings: %w", err)
	}

	out := make([]reconcile.TankCleaning, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out, nil
}

// CompleteTask marks a task Completed at the given time, crediting its assignee.
func (s *Store) CompleteTask(ctx context.Context, tenantID, taskID string, at time.Time) (*reconcile.Task, error) {
	q, err := s.scoped(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var row TaskRow
	if err := q.Where("task_id = ?", taskID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load task %s: %w", taskID, err)
	}

	completedAt := at
	updates := map[string]any{
		"status":       string(reconcile.TaskCompleted),
		"completed_at": completedAt,
		"completed_by": row.AssignedTo,
	}
	if err := s.db.WithContext(ctx).Model(&TaskRow{}).
		Where("task_id = ? AND panchayat_lgd = ?", taskID, tenantID).
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}

	row.Status = string(reconcile.TaskCompleted)
	row.CompletedAt = &completedAt
	row.CompletedBy = row.AssignedTo
	task, _ := row.ToDomain()
	return &task, nil
}

// SetDutyStatus changes a staff member's duty status.
func (s *Store) SetDutyStatus(ctx context.Context, tenantID, staffID string, status reconcile.DutyStatus) error {
	if s.db == nil {
		return ErrNoDatabase
	}

	res := s.db.WithContext(ctx).Model(&StaffRow{}).
		Where("id = ? AND panchayat_lgd = ?", staffID, tenantID).
		Update("duty_status", string(status))
	if res.Error != nil {
		return fmt.Errorf("failed to update staff %s: %w", staffID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when the value is unchanged.
	var count int64
	if err := s.db.WithContext(ctx).Model(&StaffRow{}).
		Where("id = ? AND panchayat_lgd = ?", staffID, tenantID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up staff %s: %w", staffID, err)
	}
	if count == 0 {
		return fmt.Errorf("staff %s: %w", staffID, ErrNotFound)
	}
	return nil
}

// CreateComplaint stores a new complaint. An empty ID is replaced by a fresh UUID.
func (s *Store) CreateComplaint(ctx context.Context, tenantID string, c reconcile.Complaint) (reconcile.Complaint, error) {
	if s.db == nil {
		return reconcile.Complaint{}, ErrNoDatabase
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = reconcile.ComplaintPending
	}

	row := complaintRowFromDomain(tenantID, c)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return reconcile.Complaint{}, fmt.Errorf("failed to create complaint: %w", err)
	}
	return c, nil
}

// Migrate creates or updates the record tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrNoDatabase
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate record tables: %w", err)
	}
	return nil
}

func (s *Store) warnStatus(table, id, raw string) {
	s.logger.Warn("Unrecognised status normalised",
		zap.String("table", table),
		zap.String("id", id),
		zap.String("raw", raw),
	)
}
