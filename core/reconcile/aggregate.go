package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summarize computes the billing overview numbers from reconciled periods.
func Summarize(rows []ReconciledUsage) BillingSummary {
	summary := BillingSummary{
		TotalRevenue: decimal.Zero,
		Outstanding:  decimal.Zero,
		TotalBills:   len(rows),
	}

	for _, r := range rows {
		if r.DataError {
			summary.DataErrors++
		}

		switch r.Status {
		case UsagePaid:
			summary.PaidCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(r.AmountPaid())
		case UsageOverdue:
			summary.OverdueCount++
			summary.Outstanding = summary.Outstanding.Add(r.Usage.AmountDue)
		case UsagePending:
			summary.PendingCount++
			if !r.DataError {
				summary.Outstanding = summary.Outstanding.Add(r.Usage.AmountDue)
			}
		}
	}

	return summary
}

// StatusBreakdown tallies items by the status the accessor extracts.
func StatusBreakdown[T any, S comparable](items []T, status func(T) S) map[S]int {
	counts := make(map[S]int)
	for _, item := range items {
		counts[status(item)]++
	}
	return counts
}

// DutyBreakdown counts staff per duty status; both statuses are always present.
func DutyBreakdown(staff []Staff) map[DutyStatus]int {
	counts := StatusBreakdown(staff, func(s Staff) DutyStatus { return s.DutyStatus })
	for _, s := range []DutyStatus{OnDuty, OffDuty} {
		if _, ok := counts[s]; !ok {
			counts[s] = 0
		}
	}
	return counts
}

// Percentage returns numerator as a percentage of denominator.
// A zero denominator yields 0 instead of a division fault.
func Percentage(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) * 100 / float64(denominator)
}

// Share computes the paid/unpaid split shown on the payment status chart.
func Share(summary BillingSummary) PaymentShare {
	if summary.TotalBills == 0 {
		return PaymentShare{}
	}
	return PaymentShare{
		PaidPercent:    Percentage(summary.PaidCount, summary.TotalBills),
		PendingPercent: Percentage(summary.TotalBills-summary.PaidCount, summary.TotalBills),
	}
}

// RevenueByPeriod groups the revenue of Paid periods by calendar period,
// oldest first.
func RevenueByPeriod(rows []ReconciledUsage) []PeriodRevenue {
	type periodKey struct{ year, number int }

	index := make(map[periodKey]*PeriodRevenue)
	for _, r := range rows {
		if r.Status != UsagePaid {
			continue
		}
		k := periodKey{r.Usage.Year, r.Usage.PeriodNumber}
		entry, ok := index[k]
		if !ok {
			entry = &PeriodRevenue{
				Year:         k.year,
				PeriodNumber: k.number,
				Label:        r.Usage.PeriodLabel,
				Revenue:      decimal.Zero,
			}
			index[k] = entry
		}
		entry.Revenue = entry.Revenue.Add(r.AmountPaid())
		entry.Bills++
	}

	out := make([]PeriodRevenue, 0, len(index))
	for _, entry := range index {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].PeriodNumber < out[j].PeriodNumber
	})
	return out
}
