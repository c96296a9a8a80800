package reconcile

import (
	"fmt"
	"strings"
)

// UsageStatus is the derived billing state of a usage period.
type UsageStatus string

const (
	// UsagePaid means a completed payment references the period.
	UsagePaid UsageStatus = "Paid"
	// UsagePending means no completed payment exists and the due date has not passed.
	UsagePending UsageStatus = "Pending"
	// UsageOverdue means no completed payment exists and the due date has passed.
	UsageOverdue UsageStatus = "Overdue"
)

// PaymentStatus is the processing state of a payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPending   PaymentStatus = "Pending"
	PaymentFailed    PaymentStatus = "Failed"
)

// TaskStatus is the progress of a maintenance task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// ComplaintStatus is the progress of a citizen complaint.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

// DutyStatus tells whether a staff member is currently working.
type DutyStatus string

const (
	OnDuty  DutyStatus = "On Duty"
	OffDuty DutyStatus = "Off Duty"
)

// ComplaintCategory groups complaints the way the complaint screens tab them.
type ComplaintCategory string

const (
	CategoryHousehold ComplaintCategory = "Household"
	CategoryLeakage   ComplaintCategory = "Leakage"
)

var statusFolder = strings.NewReplacer(" ", "", "-", "", "_", "")

// foldStatus reduces a status spelling to a comparable key, so "In Progress",
// "in-progress" and "InProgress" collapse to the same value.
func foldStatus(raw string) string {
	return statusFolder.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// parseEnum matches raw against the canonical values and then the aliases.
func parseEnum[T ~string](raw string, values []T, aliases map[string]T) (T, bool) {
	key := foldStatus(raw)
	for _, v := range values {
		if foldStatus(string(v)) == key {
			return v, true
		}
	}
	if v, ok := aliases[key]; ok {
		return v, true
	}
	var zero T
	return zero, false
}

// ParseUsageStatus accepts any casing or separator variant of a usage status.
func ParseUsageStatus(raw string) (UsageStatus, bool) {
	return parseEnum(raw, []UsageStatus{UsagePaid, UsagePending, UsageOverdue}, map[string]UsageStatus{
		"unpaid": UsagePending,
		"due":    UsagePending,
		"late":   UsageOverdue,
	})
}

// ParsePaymentStatus accepts any casing or separator variant of a payment status.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	return parseEnum(raw, []PaymentStatus{PaymentCompleted, PaymentPending, PaymentFailed}, map[string]PaymentStatus{
		"complete": PaymentCompleted,
		"paid":     PaymentCompleted,
		"success":  PaymentCompleted,
		"failure":  PaymentFailed,
	})
}

// ParseTaskStatus accepts any casing or separator variant of a task status.
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	return parseEnum(raw, []TaskStatus{TaskPending, TaskInProgress, TaskCompleted}, map[string]TaskStatus{
		"open":     TaskPending,
		"ongoing":  TaskInProgress,
		"done":     TaskCompleted,
		"complete": TaskCompleted,
	})
}

// ParseComplaintStatus accepts any casing or separator variant of a complaint status.
func ParseComplaintStatus(raw string) (ComplaintStatus, bool) {
	return parseEnum(raw, []ComplaintStatus{ComplaintPending, ComplaintInProgress, ComplaintResolved}, map[string]ComplaintStatus{
		"open":   ComplaintPending,
		"closed": ComplaintResolved,
		"fixed":  ComplaintResolved,
	})
}

// ParseDutyStatus accepts any casing or separator variant of a duty status.
func ParseDutyStatus(raw string) (DutyStatus, bool) {
	return parseEnum(raw, []DutyStatus{OnDuty, OffDuty}, map[string]DutyStatus{
		"active":   OnDuty,
		"inactive": OffDuty,
	})
}

// ParseComplaintCategory accepts any casing of a complaint category.
func ParseComplaintCategory(raw string) (ComplaintCategory, bool) {
	return parseEnum(raw, []ComplaintCategory{CategoryHousehold, CategoryLeakage}, nil)
}

func (s UsageStatus) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *UsageStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, s, "usage status", ParseUsageStatus)
}

func (s PaymentStatus) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *PaymentStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, s, "payment status", ParsePaymentStatus)
}

func (s TaskStatus) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *TaskStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, s, "task status", ParseTaskStatus)
}

func (s ComplaintStatus) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *ComplaintStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, s, "complaint status", ParseComplaintStatus)
}

func (s DutyStatus) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *DutyStatus) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, s, "duty status", ParseDutyStatus)
}

func (c ComplaintCategory) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText keeps unrecognised categories verbatim; the category list is open.
func (c *ComplaintCategory) UnmarshalText(b []byte) error {
	if v, ok := ParseComplaintCategory(string(b)); ok {
		*c = v
		return nil
	}
	*c = ComplaintCategory(b)
	return nil
}

func unmarshalEnum[T ~string](b []byte, dst *T, kind string, parse func(string) (T, bool)) error {
	v, ok := parse(string(b))
	if !ok {
		return fmt.Errorf("unknown %s %q", kind, string(b))
	}
	*dst = v
	return nil
}
