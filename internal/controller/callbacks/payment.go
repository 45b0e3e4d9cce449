package callbacks

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common"
	"github.com/luciafdez/clases_bot/internal/model"
	"go.uber.org/zap"
)

// handleTogglePago flips a lesson between cobrada and pendiente and
// refreshes the day view the button lives in.
func (h *Handler) handleTogglePago(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	lessonID, err := common.PayloadAfterPrefix(callback.Data, common.TogglePago)
	if err != nil {
		h.logger.Error("Bad payment callback", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato no válido")
		return
	}

	lesson, err := h.lessonService.TogglePaymentStatus(ctx, lessonID)
	if err != nil {
		h.logger.Error("Failed to toggle payment", zap.String("lesson_id", lessonID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ No he podido cambiar el estado de pago")
		return
	}

	summary := fmt.Sprintf("%s con %s", lesson.Subject, lesson.StudentName)
	if lesson.PaymentStatus == model.PaymentStatusPaid {
		common.AnswerCallback(ctx, b, callback.ID, "🟢 Cobrada: "+summary)
	} else {
		common.AnswerCallback(ctx, b, callback.ID, "🔴 Pendiente: "+summary)
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		return
	}

	h.sendDayView(ctx, b, msg.Chat.ID, lesson.Date)
}
