package app

import (
	"context"
	"fmt"
	"time"

	"github.com/luciafdez/clases_bot/internal/billing"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common/formatting"
	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

// Sender delivers a text message to a chat. The controller provides
// the Telegram-backed implementation; tests can stub it.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// Reminder runs the background tasks: a daily digest of unpaid lessons
// sent to the tutor chat.
type Reminder struct {
	lessons  *service.LessonService
	profiles *service.ProfileService
	sender   Sender
	logger   *zap.Logger
	stopChan chan struct{}
}

func NewReminder(lessons *service.LessonService, profiles *service.ProfileService, sender Sender, logger *zap.Logger) *Reminder {
	return &Reminder{
		lessons:  lessons,
		profiles: profiles,
		sender:   sender,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start launches the background tasks.
func (r *Reminder) Start(ctx context.Context) {
	r.logger.Info("Starting background reminder")
	go r.runDailyDigest(ctx)
}

// Stop stops the background tasks.
func (r *Reminder) Stop() {
	r.logger.Info("Stopping background reminder")
	close(r.stopChan)
}

func (r *Reminder) runDailyDigest(ctx context.Context) {
	// First run right away, then every 24 hours.
	r.sendDigest(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sendDigest(ctx)
		case <-r.stopChan:
			r.logger.Info("Daily digest task stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Daily digest task cancelled")
			return
		}
	}
}

// sendDigest tells the tutor how many lessons are still unpaid and
// what they add up to. Silent when there is nothing owed or the tutor
// chat is not known yet.
func (r *Reminder) sendDigest(ctx context.Context) {
	profile, err := r.profiles.Get(ctx)
	if err != nil {
		r.logger.Error("Failed to load profile for digest", zap.Error(err))
		return
	}
	if profile.ChatID == 0 {
		return
	}

	unpaid, err := r.lessons.UnpaidLessons(ctx)
	if err != nil {
		r.logger.Error("Failed to load unpaid lessons", zap.Error(err))
		return
	}
	if len(unpaid) == 0 {
		return
	}

	var totalCents int64
	for _, l := range unpaid {
		totalCents += billing.DebtCents(billing.DurationMinutes(l.StartTime, l.EndTime), profile.BaseRateCents)
	}

	text := digestText(len(unpaid), totalCents)

	if err := r.sender.Send(ctx, profile.ChatID, text); err != nil {
		r.logger.Error("Failed to send daily digest", zap.Error(err))
		return
	}

	r.logger.Info("Daily digest sent",
		zap.Int("unpaid_lessons", len(unpaid)),
		zap.Int64("total_cents", totalCents),
	)
}

func digestText(unpaidCount int, totalCents int64) string {
	return fmt.Sprintf("💶 Tienes %d clases sin cobrar por un total de %s.\nUsa /deudas para ver el detalle.",
		unpaidCount, formatting.FormatPrice(totalCents))
}
