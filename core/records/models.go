package records

import (
	"time"

	"jalsetu/core/reconcile"

	"github.com/shopspring/decimal"
)

// WaterUsage represents the 'water_usage' table: one billing period per household.
type WaterUsage struct {
	ID           string          `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD string          `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	UserID       string          `gorm:"column:user_id;type:varchar(64)"`
	Month        string          `gorm:"column:month;type:varchar(32)"`
	Year         int             `gorm:"column:year"`
	MonthNumber  int             `gorm:"column:month_number"`
	UsageLiters  int64           `gorm:"column:usage_liters"`
	Amount       decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	DueDate      *time.Time      `gorm:"column:due_date"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (WaterUsage) TableName() string {
	return "water_usage"
}

// ToDomain converts the row into an engine usage period.
// A NULL due date becomes the zero time, which the engine reports as malformed.
func (w WaterUsage) ToDomain() reconcile.UsagePeriod {
	u := reconcile.UsagePeriod{
		ID:           w.ID,
		SubscriberID: w.UserID,
		PeriodLabel:  w.Month,
		Year:         w.Year,
		PeriodNumber: w.MonthNumber,
		QuantityUsed: w.UsageLiters,
		AmountDue:    w.Amount,
	}
	if w.DueDate != nil {
		u.DueDate = *w.DueDate
	}
	return u
}

// PaymentRow represents the 'payments' table.
type PaymentRow struct {
	ID            string          `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD  string          `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	UserID        string          `gorm:"column:user_id;type:varchar(64)"`
	UsageID       string          `gorm:"column:usage_id;type:varchar(64);index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2)"`
	PaymentDate   time.Time       `gorm:"column:payment_date"`
	PaymentMethod string          `gorm:"column:payment_method;type:varchar(32)"`
	TransactionID *string         `gorm:"column:transaction_id;type:varchar(64)"`
	Status        string          `gorm:"column:status;type:varchar(16)"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (PaymentRow) TableName() string {
	return "payments"
}

// ToDomain converts the row into an engine payment.
// Unrecognised statuses become Pending so they never settle a bill.
func (p PaymentRow) ToDomain() (reconcile.Payment, bool) {
	status, ok := reconcile.ParsePaymentStatus(p.Status)
	if !ok {
		status = reconcile.PaymentPending
	}
	out := reconcile.Payment{
		ID:            p.ID,
		SubscriberID:  p.UserID,
		UsagePeriodID: p.UsageID,
		AmountPaid:    p.Amount,
		PaidAt:        p.PaymentDate,
		Method:        p.PaymentMethod,
		Status:        status,
	}
	if p.TransactionID != nil {
		out.TransactionID = *p.TransactionID
	}
	return out, ok
}

// TaskRow represents the 'tasks' table.
type TaskRow struct {
	TaskID       string     `gorm:"column:task_id;primaryKey;type:varchar(64)"`
	PanchayatLGD string     `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	HouseNo      string     `gorm:"column:house_no;type:varchar(32)"`
	Issue        string     `gorm:"column:issue;type:varchar(255)"`
	AssignedTo   *string    `gorm:"column:assigned_to;type:varchar(64)"`
	Status       string     `gorm:"column:status;type:varchar(16)"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	CompletedBy  *string    `gorm:"column:completed_by;type:varchar(64)"`
}

// TableName overrides the table name.
func (TaskRow) TableName() string {
	return "tasks"
}

// ToDomain converts the row into an engine task.
func (t TaskRow) ToDomain() (reconcile.Task, bool) {
	status, ok := reconcile.ParseTaskStatus(t.Status)
	if !ok {
		status = reconcile.TaskPending
	}
	return reconcile.Task{
		ID:               t.TaskID,
		LocationRef:      t.HouseNo,
		IssueDescription: t.Issue,
		AssignedStaffID:  t.AssignedTo,
		Status:           status,
		CreatedAt:        t.CreatedAt,
		CompletedAt:      t.CompletedAt,
		CompletedBy:      t.CompletedBy,
	}, ok
}

// StaffRow represents the 'staffs' table.
type StaffRow struct {
	ID           string `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD string `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	Name         string `gorm:"column:name;type:varchar(128)"`
	Role         string `gorm:"column:role;type:varchar(64)"`
	Contact      string `gorm:"column:contact;type:varchar(32)"`
	DutyStatus   string `gorm:"column:duty_status;type:varchar(16)"`
}

// TableName overrides the table name.
func (StaffRow) TableName() string {
	return "staffs"
}

// ToDomain converts the row into an engine staff record.
func (s StaffRow) ToDomain() (reconcile.Staff, bool) {
	duty, ok := reconcile.ParseDutyStatus(s.DutyStatus)
	if !ok {
		duty = reconcile.OffDuty
	}
	return reconcile.Staff{
		ID:         s.ID,
		Name:       s.Name,
		Role:       s.Role,
		Contact:    s.Contact,
		DutyStatus: duty,
	}, ok
}

// ComplaintRow represents the 'complaints' table.
type ComplaintRow struct {
	ID           string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD string    `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	HouseNo      string    `gorm:"column:house_no;type:varchar(32)"`
	Type         string    `gorm:"column:type;type:varchar(32)"`
	Description  string    `gorm:"column:description;type:text"`
	Latitude     *float64  `gorm:"column:latitude"`
	Longitude    *float64  `gorm:"column:longitude"`
	AssignedTo   *string   `gorm:"column:assigned_to;type:varchar(64)"`
	Status       string    `gorm:"column:status;type:varchar(16)"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (ComplaintRow) TableName() string {
	return "complaints"
}

// ToDomain converts the row into an engine complaint.
// Both coordinates must be present for the GPS fix to be kept.
func (c ComplaintRow) ToDomain() (reconcile.Complaint, bool) {
	status, statusOK := reconcile.ParseComplaintStatus(c.Status)
	if !statusOK {
		status = reconcile.ComplaintPending
	}
	category, categoryOK := reconcile.ParseComplaintCategory(c.Type)
	if !categoryOK {
		category = reconcile.ComplaintCategory(c.Type)
	}

	out := reconcile.Complaint{
		ID:              c.ID,
		LocationRef:     c.HouseNo,
		Category:        category,
		Description:     c.Description,
		AssignedStaffID: c.AssignedTo,
		Status:          status,
		SubmittedAt:     c.CreatedAt,
	}
	if c.Latitude != nil && c.Longitude != nil {
		out.GPS = &reconcile.Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
	}
	return out, statusOK && categoryOK
}

// complaintRowFromDomain builds the row stored for a new complaint.
func complaintRowFromDomain(tenantID string, c reconcile.Complaint) ComplaintRow {
	row := ComplaintRow{
		ID:           c.ID,
		PanchayatLGD: tenantID,
		HouseNo:      c.LocationRef,
		Type:         string(c.Category),
		Description:  c.Description,
		AssignedTo:   c.AssignedStaffID,
		Status:       string(c.Status),
		CreatedAt:    c.SubmittedAt,
	}
	if c.GPS != nil {
		lat, lng := c.GPS.Latitude, c.GPS.Longitude
		row.Latitude = &lat
		row.Longitude = &lng
	}
	return row
}

// WaterMetricRow represents the 'water_metrics' table: daily supply per Panchayat.
type WaterMetricRow struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD   string    `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	Date           time.Time `gorm:"column:date;type:date"`
	TotalAvailable int64     `gorm:"column:total_available"`
	TotalUsed      int64     `gorm:"column:total_used"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (WaterMetricRow) TableName() string {
	return "water_metrics"
}

// ToDomain converts the row into an engine water metric.
func (w WaterMetricRow) ToDomain() reconcile.WaterMetric {
	return reconcile.WaterMetric{
		ID:             w.ID,
		Date:           w.Date,
		TotalAvailable: w.TotalAvailable,
		TotalUsed:      w.TotalUsed,
		UpdatedAt:      w.UpdatedAt,
	}
}

// TankCleaningRow represents the 'tank_cleanings' table.
type TankCleaningRow struct {
	ID           string     `gorm:"column:id;primaryKey;type:varchar(64)"`
	PanchayatLGD string     `gorm:"column:panchayat_lgd;type:varchar(32);index"`
	TankLocation string     `gorm:"column:tank_location;type:varchar(255)"`
	WaterSource  string     `gorm:"column:water_source;type:varchar(64)"`
	CleanedAt    time.Time  `gorm:"column:cleaned_at"`
	NextDue      *time.Time `gorm:"column:next_due"`
	CleanedBy    *string    `gorm:"column:cleaned_by;type:varchar(64)"`
}

// TableName overrides the table name.
func (TankCleaningRow) TableName() string {
	return "tank_cleanings"
}

// ToDomain converts the row into an engine tank cleaning.
func (t TankCleaningRow) ToDomain() reconcile.TankCleaning {
	c := reconcile.TankCleaning{
		ID:           t.ID,
		TankLocation: t.TankLocation,
		WaterSource:  t.WaterSource,
		CleanedAt:    t.CleanedAt,
		CleanedBy:    t.CleanedBy,
	}
	if t.NextDue != nil {
		c.NextDue = *t.NextDue
	}
	return c
}

// Models lists every table model, in migration order.
func Models() []any {
	return []any{WaterUsage{}, PaymentRow{}, TaskRow{}, StaffRow{}, ComplaintRow{}, WaterMetricRow{}, TankCleaningRow{}}
}
