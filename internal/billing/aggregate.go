package billing

import (
	"fmt"
	"math"
	"time"

	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/model"
)

// Days per year the annual projection extrapolates over. The planner
// assumes lessons happen roughly 270 days a year (no weekends off in
// exam season, but holidays exist).
const projectionDays = 270

// PeriodSummary is the rollup for a date range: how many lessons, how
// many minutes of class, and the amount they bill to.
type PeriodSummary struct {
	Lessons     int
	Minutes     int
	AmountCents int64
}

// Hours returns the summary's minutes as fractional hours.
func (p PeriodSummary) Hours() float64 {
	return float64(p.Minutes) / 60
}

// InRange reports whether a date key falls inside [from, to], both
// inclusive. Keys are zero-padded so string comparison is enough.
func InRange(dateKey, from, to string) bool {
	return dateKey >= from && dateKey <= to
}

// SumIncome totals the paid lessons with date in [from, to] at the
// profile hourly rate.
func SumIncome(lessons []model.Lesson, from, to string, hourlyRateCents int64) PeriodSummary {
	return sumPeriod(lessons, from, to, model.PaymentStatusPaid, hourlyRateCents)
}

// SumDebt totals the unpaid lessons with date in [from, to] at the
// base rate.
func SumDebt(lessons []model.Lesson, from, to string, baseRateCents int64) PeriodSummary {
	return sumPeriod(lessons, from, to, model.PaymentStatusUnpaid, baseRateCents)
}

func sumPeriod(lessons []model.Lesson, from, to string, status model.PaymentStatus, rateCents int64) PeriodSummary {
	var out PeriodSummary
	for _, l := range lessons {
		if l.PaymentStatus != status || !InRange(l.Date, from, to) {
			continue
		}
		min := DurationMinutes(l.StartTime, l.EndTime)
		out.Lessons++
		out.Minutes += min
		out.AmountCents += DefaultTier.AmountCents(min, rateCents)
	}
	return out
}

// AverageHourlyRateCents is the realized rate of a period: what an
// hour of class actually earned once surcharges are counted in.
// Zero minutes means no average.
func AverageHourlyRateCents(p PeriodSummary) int64 {
	if p.Minutes <= 0 {
		return 0
	}
	return int64(math.Round(float64(p.AmountCents) * 60 / float64(p.Minutes)))
}

// YearRange returns the inclusive date-key bounds of t's year.
func YearRange(t time.Time) (from, to string) {
	return fmt.Sprintf("%04d-01-01", t.Year()), fmt.Sprintf("%04d-12-31", t.Year())
}

// AnnualProjectionCents extrapolates this year's paid income to a full
// year of work: (total so far / elapsed days) * 270. Elapsed days are
// counted between local midnights, from the first paid lesson of the
// year through today, inclusive of both. No paid lesson this year, or
// a first lesson in the future, means no projection (0).
func AnnualProjectionCents(lessons []model.Lesson, today time.Time, hourlyRateCents int64) int64 {
	from, to := YearRange(today)

	firstPaid := ""
	for _, l := range lessons {
		if l.PaymentStatus != model.PaymentStatusPaid || !InRange(l.Date, from, to) {
			continue
		}
		if firstPaid == "" || l.Date < firstPaid {
			firstPaid = l.Date
		}
	}
	if firstPaid == "" {
		return 0
	}

	firstDay, err := calendar.ParseDateKey(firstPaid)
	if err != nil {
		return 0
	}
	elapsed := int(math.Round(calendar.Midnight(today).Sub(calendar.Midnight(firstDay)).Hours()/24)) + 1
	if elapsed <= 0 {
		return 0
	}

	total := SumIncome(lessons, from, to, hourlyRateCents)
	return int64(math.Round(float64(total.AmountCents) / float64(elapsed) * projectionDays))
}

// GoalProgress measures taught hours in [from, to] against the monthly
// hours target. A zero or missing target means the feature is off:
// both results are 0 and the caller prompts to configure instead.
func GoalProgress(lessons []model.Lesson, from, to string, metaHoursMonthly int) (hours, percent float64) {
	if metaHoursMonthly <= 0 {
		return 0, 0
	}
	minutes := 0
	for _, l := range lessons {
		if !InRange(l.Date, from, to) {
			continue
		}
		minutes += DurationMinutes(l.StartTime, l.EndTime)
	}
	hours = float64(minutes) / 60
	percent = hours / float64(metaHoursMonthly) * 100
	return hours, percent
}
