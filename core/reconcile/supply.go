package reconcile

import (
	"sort"
	"time"
)

const (
	// TrendDays is the number of recorded days in a weekly usage trend.
	TrendDays = 7

	// CleaningInterval is the default gap between tank cleanings.
	CleaningInterval = 20 * 24 * time.Hour
)

// UsageOn returns the supply card for the calendar date of day.
// When several metrics share that date the most recently updated one wins.
func UsageOn(metrics []WaterMetric, day time.Time) DailyUsage {
	key := day.Format(time.DateOnly)
	if m, ok := latestPerDate(metrics)[key]; ok {
		return dailyUsage(m)
	}
	return DailyUsage{Date: key, Weekday: weekday(day)}
}

// WeeklyTrend returns the last TrendDays recorded days on or before the
// calendar date of now, oldest first. Days without a metric are skipped.
func WeeklyTrend(metrics []WaterMetric, now time.Time) []DailyUsage {
	today := now.Format(time.DateOnly)

	byDate := latestPerDate(metrics)
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		if d <= today {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	if len(dates) > TrendDays {
		dates = dates[len(dates)-TrendDays:]
	}

	out := make([]DailyUsage, 0, len(dates))
	for _, d := range dates {
		out = append(out, dailyUsage(byDate[d]))
	}
	return out
}

// TankStatusAt summarises the latest cleaning as of now. The tank is Overdue
// when its next cleaning date lies strictly before now.
func TankStatusAt(cleanings []TankCleaning, now time.Time) TankStatus {
	var (
		last  TankCleaning
		found bool
	)
	for _, c := range cleanings {
		if c.CleanedAt.IsZero() {
			continue
		}
		if !found || c.CleanedAt.After(last.CleanedAt) {
			last, found = c, true
		}
	}
	if !found {
		return TankStatus{}
	}

	next := last.NextDue
	if next.IsZero() {
		next = last.CleanedAt.Add(CleaningInterval)
	}
	cleaned := last.CleanedAt

	days := 0
	if now.After(cleaned) {
		days = int(now.Sub(cleaned) / (24 * time.Hour))
	}

	return TankStatus{
		Recorded:          true,
		TankLocation:      last.TankLocation,
		WaterSource:       last.WaterSource,
		LastCleaned:       &cleaned,
		NextCleaning:      &next,
		DaysSinceCleaning: days,
		Overdue:           next.Before(now),
	}
}

func latestPerDate(metrics []WaterMetric) map[string]WaterMetric {
	out := make(map[string]WaterMetric, len(metrics))
	for _, m := range metrics {
		if m.Date.IsZero() {
			continue
		}
		key := m.Date.Format(time.DateOnly)
		if prev, ok := out[key]; ok && !m.UpdatedAt.After(prev.UpdatedAt) {
			continue
		}
		out[key] = m
	}
	return out
}

func dailyUsage(m WaterMetric) DailyUsage {
	return DailyUsage{
		Date:           m.Date.Format(time.DateOnly),
		Weekday:        weekday(m.Date),
		TotalAvailable: m.TotalAvailable,
		TotalUsed:      m.TotalUsed,
		UsedPercent:    Percentage(int(m.TotalUsed), int(m.TotalAvailable)),
		Recorded:       true,
	}
}

func weekday(t time.Time) string {
	return t.Weekday().String()[:3]
}
