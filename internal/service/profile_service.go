package service

import (
	"context"
	"fmt"

	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo *repository.ProfileRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo *repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get returns the profile; a never-configured profile comes back
// zero-valued, not as an error.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	return s.profileRepo.Get(ctx)
}

// SetRates stores the hourly rate (income view) and the base rate
// (debt view), both in euro cents.
func (s *ProfileService) SetRates(ctx context.Context, hourlyRateCents, baseRateCents int64) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	profile.HourlyRateCents = hourlyRateCents
	profile.BaseRateCents = baseRateCents

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("Rates updated",
		zap.Int64("hourly_rate_cents", hourlyRateCents),
		zap.Int64("base_rate_cents", baseRateCents),
	)

	return nil
}

// SetMonthlyGoal stores the monthly hours target. Zero switches the
// goal feature off.
func (s *ProfileService) SetMonthlyGoal(ctx context.Context, metaHoursMonthly int) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	profile.MetaHoursMonthly = metaHoursMonthly

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("Monthly goal updated", zap.Int("meta_hours", metaHoursMonthly))
	return nil
}

// SetChatID remembers the tutor chat for the daily digest.
func (s *ProfileService) SetChatID(ctx context.Context, chatID int64) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if profile.ChatID == chatID {
		return nil
	}

	profile.ChatID = chatID

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	return nil
}
