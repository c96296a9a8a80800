package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsagePeriod is one billing cycle of recorded consumption for a subscriber.
type UsagePeriod struct {
	// ID is the unique identifier of the period.
	ID string `json:"id"`

	// SubscriberID identifies the household the period belongs to.
	SubscriberID string `json:"subscriber_id"`

	// PeriodLabel is the human label, e.g. "October 2025".
	PeriodLabel string `json:"period_label"`

	// Year and PeriodNumber (1-12) locate the period in the calendar.
	Year         int `json:"year"`
	PeriodNumber int `json:"period_number"`

	// QuantityUsed is the consumption in liters.
	QuantityUsed int64 `json:"quantity_used"`

	// AmountDue is the billed amount.
	AmountDue decimal.Decimal `json:"amount_due"`

	// DueDate is the last day the bill can be paid without becoming overdue.
	DueDate time.Time `json:"due_date"`
}

// Payment is a payment made against a usage period.
type Payment struct {
	ID            string          `json:"id"`
	SubscriberID  string          `json:"subscriber_id"`
	UsagePeriodID string          `json:"usage_period_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaidAt        time.Time       `json:"paid_at"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        PaymentStatus   `json:"status"`
}

// Task is a maintenance job at a location, optionally assigned to a staff member.
type Task struct {
	ID               string     `json:"id"`
	LocationRef      string     `json:"location_ref"`
	IssueDescription string     `json:"issue_description"`
	AssignedStaffID  *string    `json:"assigned_staff_id"`
	Status           TaskStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CompletedBy      *string    `json:"completed_by,omitempty"`
}

// Staff is a Panchayat field worker.
type Staff struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Contact    string     `json:"contact,omitempty"`
	DutyStatus DutyStatus `json:"duty_status"`
}

// Coordinate is a GPS fix captured with a complaint.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Complaint is an issue reported by a citizen or staff member.
type Complaint struct {
	ID              string            `json:"id"`
	LocationRef     string            `json:"location_ref"`
	Category        ComplaintCategory `json:"category"`
	Description     string            `json:"description"`
	GPS             *Coordinate       `json:"gps,omitempty"`
	AssignedStaffID *string           `json:"assigned_staff_id"`
	Status          ComplaintStatus   `json:"status"`
	SubmittedAt     time.Time         `json:"submitted_at"`
}

// ReconciledUsage is a usage period joined with its settling payment.
type ReconciledUsage struct {
	// Usage is a copy of the source period.
	Usage UsagePeriod `json:"usage"`

	// Payment is the completed payment that settles the period, if any.
	Payment *Payment `json:"payment,omitempty"`

	// Status is the derived billing state at evaluation time.
	Status UsageStatus `json:"status"`

	// DataError marks a period whose fields could not be trusted for classification.
	DataError bool `json:"data_error"`

	// Problems describes each defect found on a malformed period,
	// e.g. "due_date: missing".
	Problems []string `json:"problems,omitempty"`
}

// AmountPaid returns the settled amount, zero when unpaid.
func (r ReconciledUsage) AmountPaid() decimal.Decimal {
	if r.Payment == nil {
		return decimal.Zero
	}
	return r.Payment.AmountPaid
}

// BillingSummary holds the numbers of the billing overview cards.
type BillingSummary struct {
	// TotalRevenue is the sum paid over Paid periods.
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// TotalBills counts every reconciled period.
	TotalBills int `json:"total_bills"`

	// OverdueCount counts Overdue periods.
	OverdueCount int `json:"overdue_count"`

	PaidCount    int `json:"paid_count"`
	PendingCount int `json:"pending_count"`

	// DataErrors counts periods flagged as malformed.
	DataErrors int `json:"data_errors"`

	// Outstanding is the amount still due over unpaid, well-formed periods.
	Outstanding decimal.Decimal `json:"outstanding"`
}

// PaymentShare splits bills into paid and unpaid percentages.
type PaymentShare struct {
	PaidPercent    float64 `json:"paid_percent"`
	PendingPercent float64 `json:"pending_percent"`
}

// PeriodRevenue is the revenue collected for one calendar period.
type PeriodRevenue struct {
	Year         int             `json:"year"`
	PeriodNumber int             `json:"period_number"`
	Label        string          `json:"label"`
	Revenue      decimal.Decimal `json:"revenue"`
	Bills        int             `json:"bills"`
}

// WaterMetric is one day's supply figures for a Panchayat, in liters.
// Date is a calendar date; only its year, month and day are meaningful.
type WaterMetric struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	TotalAvailable int64     `json:"total_available"`
	TotalUsed      int64     `json:"total_used"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TankCleaning records one cleaning of a Panchayat storage tank.
type TankCleaning struct {
	ID           string    `json:"id"`
	TankLocation string    `json:"tank_location"`
	WaterSource  string    `json:"water_source"`
	CleanedAt    time.Time `json:"cleaned_at"`
	// NextDue is the scheduled next cleaning. Zero means CleanedAt plus CleaningInterval.
	NextDue   time.Time `json:"next_due"`
	CleanedBy *string   `json:"cleaned_by,omitempty"`
}

// DailyUsage is the supply card of one calendar day.
type DailyUsage struct {
	Date           string  `json:"date"`
	Weekday        string  `json:"weekday"`
	TotalAvailable int64   `json:"total_available"`
	TotalUsed      int64   `json:"total_used"`
	UsedPercent    float64 `json:"used_percent"`
	// Recorded is false when no metric exists for the day; the figures are then zero.
	Recorded bool `json:"recorded"`
}

// TankStatus is the tank maintenance card.
type TankStatus struct {
	Recorded          bool       `json:"recorded"`
	TankLocation      string     `json:"tank_location,omitempty"`
	WaterSource       string     `json:"water_source,omitempty"`
	LastCleaned       *time.Time `json:"last_cleaned,omitempty"`
	NextCleaning      *time.Time `json:"next_cleaning,omitempty"`
	DaysSinceCleaning int        `json:"days_since_cleaning"`
	Overdue           bool       `json:"overdue"`
}
