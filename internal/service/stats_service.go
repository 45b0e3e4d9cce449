package service

import (
	"context"
	"fmt"
	"time"

	"github.com/luciafdez/clases_bot/internal/billing"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository"
	"go.uber.org/zap"
)

// DashboardStats is the per-period summary the bot renders on
// /ingresos and /deudas. Amounts are euro cents.
type DashboardStats struct {
	Week  billing.PeriodSummary
	Month billing.PeriodSummary
	Year  billing.PeriodSummary

	Debt billing.PeriodSummary

	AverageHourlyRateCents int64
	AnnualProjectionCents  int64

	GoalHours   float64
	GoalPercent float64
	GoalTarget  int
}

type StatsService struct {
	lessonRepo  *repository.LessonRepository
	profileRepo *repository.ProfileRepository
	logger      *zap.Logger
}

func NewStatsService(lessonRepo *repository.LessonRepository, profileRepo *repository.ProfileRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		lessonRepo:  lessonRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Dashboard computes every aggregate for the instant "now". It loads
// the year's lessons plus all unpaid ones and reduces them in memory;
// the engine holds no state, so a fresh call always reflects the
// latest saves.
func (s *StatsService) Dashboard(ctx context.Context, now time.Time) (*DashboardStats, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	yearFrom, yearTo := billing.YearRange(now)
	yearLessons, err := s.lessonRepo.GetByDateRange(ctx, yearFrom, yearTo)
	if err != nil {
		return nil, fmt.Errorf("get year lessons: %w", err)
	}

	// The Monday-based week can start in the previous year, so it
	// gets its own fetch instead of reusing the year's collection.
	weekFrom := calendar.ToDateKey(calendar.StartOfWeek(now))
	weekTo := calendar.ToDateKey(calendar.AddDays(calendar.StartOfWeek(now), 6))
	weekLessons, err := s.lessonRepo.GetByDateRange(ctx, weekFrom, weekTo)
	if err != nil {
		return nil, fmt.Errorf("get week lessons: %w", err)
	}

	unpaid, err := s.lessonRepo.GetByPaymentStatus(ctx, model.PaymentStatusUnpaid)
	if err != nil {
		return nil, fmt.Errorf("get unpaid lessons: %w", err)
	}

	return buildDashboard(profile, yearLessons, weekLessons, unpaid, now), nil
}

// buildDashboard reduces the fetched collections into the dashboard
// aggregates. Pure so the period math is testable without a pool.
func buildDashboard(profile *model.Profile, yearLessons, weekLessons, unpaid []model.Lesson, now time.Time) *DashboardStats {
	yearFrom, yearTo := billing.YearRange(now)
	weekFrom := calendar.ToDateKey(calendar.StartOfWeek(now))
	weekTo := calendar.ToDateKey(calendar.AddDays(calendar.StartOfWeek(now), 6))
	monthFrom := calendar.ToDateKey(calendar.FirstOfMonth(now))
	monthTo := calendar.ToDateKey(calendar.LastOfMonth(now))

	stats := &DashboardStats{
		Week:  billing.SumIncome(weekLessons, weekFrom, weekTo, profile.HourlyRateCents),
		Month: billing.SumIncome(yearLessons, monthFrom, monthTo, profile.HourlyRateCents),
		Year:  billing.SumIncome(yearLessons, yearFrom, yearTo, profile.HourlyRateCents),

		// Debt is open-ended on the left: everything still unpaid
		// counts, however old.
		Debt: billing.SumDebt(unpaid, "0000-01-01", calendar.ToDateKey(now), profile.BaseRateCents),

		AnnualProjectionCents: billing.AnnualProjectionCents(yearLessons, now, profile.HourlyRateCents),
		GoalTarget:            profile.MetaHoursMonthly,
	}

	stats.AverageHourlyRateCents = billing.AverageHourlyRateCents(stats.Year)
	stats.GoalHours, stats.GoalPercent = billing.GoalProgress(yearLessons, monthFrom, monthTo, profile.MetaHoursMonthly)

	return stats
}

// LessonsPerDay groups a range of lessons by their day key, for the
// month-grid rendering.
func (s *StatsService) LessonsPerDay(ctx context.Context, from, to string) (map[string][]model.Lesson, error) {
	lessons, err := s.lessonRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get lessons by range: %w", err)
	}

	byDay := make(map[string][]model.Lesson, len(lessons))
	for _, l := range lessons {
		byDay[l.Date] = append(byDay[l.Date], l)
	}
	return byDay, nil
}
