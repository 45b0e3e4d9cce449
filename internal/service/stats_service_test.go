package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luciafdez/clases_bot/internal/model"
)

func paidLesson(date, start, end string) model.Lesson {
	return model.Lesson{
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PaymentStatus: model.PaymentStatusPaid,
	}
}

func TestBuildDashboardWeekCrossesYearBoundary(t *testing.T) {
	// Friday 2026-01-02: the Monday-based week starts 2025-12-29,
	// outside the current year's date range.
	now := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.Local)
	profile := &model.Profile{ID: 1, HourlyRateCents: 2000, BaseRateCents: 2000}

	december := paidLesson("2025-12-30", "09:00", "10:00")
	january := paidLesson("2026-01-02", "10:00", "11:00")

	yearLessons := []model.Lesson{january}
	weekLessons := []model.Lesson{december, january}

	stats := buildDashboard(profile, yearLessons, weekLessons, nil, now)

	require.Equal(t, 2, stats.Week.Lessons)
	require.Equal(t, int64(4000), stats.Week.AmountCents)

	require.Equal(t, 1, stats.Year.Lessons)
	require.Equal(t, int64(2000), stats.Year.AmountCents)
	require.Equal(t, stats.Year, stats.Month)
}

func TestBuildDashboardMidYearWeek(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.Local)
	profile := &model.Profile{ID: 1, HourlyRateCents: 2000, BaseRateCents: 1500}

	inWeek := paidLesson("2025-03-10", "09:00", "10:00")
	inMonth := paidLesson("2025-03-03", "09:00", "10:00")
	unpaid := model.Lesson{
		Date: "2025-02-01", StartTime: "09:00", EndTime: "10:00",
		PaymentStatus: model.PaymentStatusUnpaid,
	}

	yearLessons := []model.Lesson{inWeek, inMonth, unpaid}
	weekLessons := []model.Lesson{inWeek}

	stats := buildDashboard(profile, yearLessons, weekLessons, []model.Lesson{unpaid}, now)

	require.Equal(t, int64(2000), stats.Week.AmountCents)
	require.Equal(t, int64(4000), stats.Month.AmountCents)
	require.Equal(t, int64(4000), stats.Year.AmountCents)
	require.Equal(t, int64(1500), stats.Debt.AmountCents)
	require.Equal(t, int64(2000), stats.AverageHourlyRateCents)
}
