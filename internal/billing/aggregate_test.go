package billing

import (
	"testing"
	"time"

	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func paid(date, start, end string) model.Lesson {
	return model.Lesson{Date: date, StartTime: start, EndTime: end, PaymentStatus: model.PaymentStatusPaid}
}

func unpaid(date, start, end string) model.Lesson {
	return model.Lesson{Date: date, StartTime: start, EndTime: end, PaymentStatus: model.PaymentStatusUnpaid}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2025-03-10", "2025-03-01", "2025-03-31"))
	assert.True(t, InRange("2025-03-01", "2025-03-01", "2025-03-31"), "from is inclusive")
	assert.True(t, InRange("2025-03-31", "2025-03-01", "2025-03-31"), "to is inclusive")
	assert.False(t, InRange("2025-02-28", "2025-03-01", "2025-03-31"))
	assert.False(t, InRange("2025-04-01", "2025-03-01", "2025-03-31"))
}

func TestSumIncomeFiltersPaidAndRange(t *testing.T) {
	const rate = 2000

	lessons := []model.Lesson{
		paid("2025-03-10", "09:00", "10:00"),   // 20 €
		paid("2025-03-15", "16:00", "17:30"),   // 25 €
		unpaid("2025-03-12", "09:00", "10:00"), // unpaid, excluded
		paid("2025-02-28", "09:00", "10:00"),   // before range
		paid("2025-04-01", "09:00", "10:00"),   // after range
	}

	got := SumIncome(lessons, "2025-03-01", "2025-03-31", rate)

	assert.Equal(t, 2, got.Lessons)
	assert.Equal(t, 150, got.Minutes)
	assert.Equal(t, int64(4500), got.AmountCents)
	assert.InDelta(t, 2.5, got.Hours(), 1e-9)
}

func TestSumDebtFiltersUnpaid(t *testing.T) {
	const baseRate = 1500

	lessons := []model.Lesson{
		unpaid("2025-03-10", "09:00", "10:00"), // 15 €
		unpaid("2025-03-11", "09:00", "11:00"), // 15 + 2×5 = 25 €
		paid("2025-03-12", "09:00", "10:00"),   // paid, excluded
	}

	got := SumDebt(lessons, "2025-03-01", "2025-03-31", baseRate)

	assert.Equal(t, 2, got.Lessons)
	assert.Equal(t, int64(4000), got.AmountCents)
}

func TestSumSkipsMalformedRecords(t *testing.T) {
	lessons := []model.Lesson{
		paid("2025-03-10", "09:00", "10:00"),
		paid("2025-03-11", "broken", "10:00"), // zero duration, zero amount
	}

	got := SumIncome(lessons, "2025-03-01", "2025-03-31", 2000)

	// The corrupt record still counts as a lesson but bills nothing.
	assert.Equal(t, 2, got.Lessons)
	assert.Equal(t, 60, got.Minutes)
	assert.Equal(t, int64(2000), got.AmountCents)
}

func TestAverageHourlyRate(t *testing.T) {
	assert.Equal(t, int64(0), AverageHourlyRateCents(PeriodSummary{}))

	// 45 € over 2.5 h -> 18 €/h.
	got := AverageHourlyRateCents(PeriodSummary{Minutes: 150, AmountCents: 4500})
	assert.Equal(t, int64(1800), got)
}

func TestYearRange(t *testing.T) {
	from, to := YearRange(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local))
	assert.Equal(t, "2025-01-01", from)
	assert.Equal(t, "2025-12-31", to)
}

func TestAnnualProjection(t *testing.T) {
	const rate = 2000
	today := time.Date(2025, time.March, 10, 18, 30, 0, 0, time.Local)

	t.Run("no paid lessons means no projection", func(t *testing.T) {
		lessons := []model.Lesson{unpaid("2025-03-01", "09:00", "10:00")}
		assert.Zero(t, AnnualProjectionCents(lessons, today, rate))
	})

	t.Run("paid lessons from another year do not count", func(t *testing.T) {
		lessons := []model.Lesson{paid("2024-12-30", "09:00", "10:00")}
		assert.Zero(t, AnnualProjectionCents(lessons, today, rate))
	})

	t.Run("extrapolates from first paid lesson of the year", func(t *testing.T) {
		lessons := []model.Lesson{
			paid("2025-03-01", "09:00", "10:00"), // 20 €
			paid("2025-03-05", "09:00", "10:30"), // 25 €
		}

		// First paid lesson 2025-03-01, today 2025-03-10:
		// 10 elapsed days inclusive, 45 € so far.
		want := int64(4500.0 / 10 * 270)
		assert.Equal(t, want, AnnualProjectionCents(lessons, today, rate))
	})

	t.Run("first lesson in the future yields zero", func(t *testing.T) {
		lessons := []model.Lesson{paid("2025-06-01", "09:00", "10:00")}
		assert.Zero(t, AnnualProjectionCents(lessons, today, rate))
	})

	t.Run("zero rate projects zero", func(t *testing.T) {
		lessons := []model.Lesson{paid("2025-03-01", "09:00", "10:00")}
		assert.Zero(t, AnnualProjectionCents(lessons, today, 0))
	})
}

func TestGoalProgress(t *testing.T) {
	lessons := []model.Lesson{
		paid("2025-03-10", "09:00", "10:00"),
		unpaid("2025-03-11", "16:00", "17:30"),
		paid("2025-04-01", "09:00", "10:00"), // outside the month
	}

	t.Run("zero target means feature off", func(t *testing.T) {
		hours, percent := GoalProgress(lessons, "2025-03-01", "2025-03-31", 0)
		assert.Zero(t, hours)
		assert.Zero(t, percent)
	})

	t.Run("counts all lessons in the month", func(t *testing.T) {
		hours, percent := GoalProgress(lessons, "2025-03-01", "2025-03-31", 10)
		assert.InDelta(t, 2.5, hours, 1e-9)
		assert.InDelta(t, 25.0, percent, 1e-9)
	})
}
