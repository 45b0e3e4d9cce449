package callbacks

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common"
	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

// MonthViewFunc and DayViewFunc are provided by the command handlers
// so callback navigation reuses the exact same rendering.
type MonthViewFunc func(ctx context.Context, b *bot.Bot, chatID int64, ref time.Time)
type DayViewFunc func(ctx context.Context, b *bot.Bot, chatID int64, dateKey string)

type Handler struct {
	lessonService *service.LessonService
	location      *time.Location
	logger        *zap.Logger

	sendMonthView MonthViewFunc
	sendDayView   DayViewFunc
}

func NewHandler(
	lessonService *service.LessonService,
	location *time.Location,
	logger *zap.Logger,
	sendMonthView MonthViewFunc,
	sendDayView DayViewFunc,
) *Handler {
	return &Handler{
		lessonService: lessonService,
		location:      location,
		logger:        logger,
		sendMonthView: sendMonthView,
		sendDayView:   sendDayView,
	}
}

// HandleCallbackQuery routes inline-button presses by data prefix.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	data := callback.Data
	h.logger.Debug("Callback received",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
	)

	switch {
	case strings.HasPrefix(data, common.CalMonth):
		h.handleMonthNav(ctx, b, callback)
	case strings.HasPrefix(data, common.CalDay):
		h.handleDayView(ctx, b, callback)
	case strings.HasPrefix(data, common.TogglePago):
		h.handleTogglePago(ctx, b, callback)
	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
