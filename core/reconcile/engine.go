package reconcile

import (
	"fmt"
	"time"
)

// ReconcileBilling joins usage periods with payments and classifies every period
// at the evaluation time now.
// The result has exactly one entry per period, in input order.
func ReconcileBilling(usage []UsagePeriod, payments []Payment, now time.Time) []ReconciledUsage {
	settled := indexSettlingPayments(payments)

	results := make([]ReconciledUsage, 0, len(usage))
	for _, u := range usage {
		results = append(results, classifyUsage(u, settled, now))
	}
	return results
}

// SubscriberUsage keeps the reconciled periods of a single subscriber, in order.
func SubscriberUsage(rows []ReconciledUsage, subscriberID string) []ReconciledUsage {
	out := make([]ReconciledUsage, 0)
	for _, r := range rows {
		if r.Usage.SubscriberID == subscriberID {
			out = append(out, r)
		}
	}
	return out
}

// indexSettlingPayments maps usage period ids to the completed payment that settles them.
// Several completed payments for one period is a data anomaly; the latest PaidAt wins
// and equal timestamps keep the first seen.
func indexSettlingPayments(payments []Payment) map[string]Payment {
	index := make(map[string]Payment, len(payments))
	for _, p := range payments {
		if p.Status != PaymentCompleted || p.UsagePeriodID == "" {
			continue
		}
		current, ok := index[p.UsagePeriodID]
		if !ok || p.PaidAt.After(current.PaidAt) {
			index[p.UsagePeriodID] = p
		}
	}
	return index
}

// classifyUsage derives the status of a single period.
func classifyUsage(u UsagePeriod, settled map[string]Payment, now time.Time) ReconciledUsage {
	result := ReconciledUsage{
		Usage:  u,
		Status: UsagePending,
	}

	if problems := validateUsage(u); len(problems) > 0 {
		result.DataError = true
		result.Problems = problems
		return result
	}

	if p, ok := settled[u.ID]; ok {
		payment := p
		result.Payment = &payment
		result.Status = UsagePaid
		return result
	}

	if u.DueDate.Before(now) {
		result.Status = UsageOverdue
	}
	return result
}

// validateUsage lists the defects that make a period unsafe to classify.
func validateUsage(u UsagePeriod) []string {
	var problems []string
	if u.ID == "" {
		problems = append(problems, "id: missing")
	}
	if u.DueDate.IsZero() {
		problems = append(problems, "due_date: missing")
	}
	if u.PeriodNumber < 1 || u.PeriodNumber > 12 {
		problems = append(problems, fmt.Sprintf("period_number: %d outside 1-12", u.PeriodNumber))
	}
	if u.QuantityUsed < 0 {
		problems = append(problems, fmt.Sprintf("quantity_used: negative (%d)", u.QuantityUsed))
	}
	if u.AmountDue.IsNegative() {
		problems = append(problems, fmt.Sprintf("amount_due: negative (%s)", u.AmountDue.String()))
	}
	return problems
}
