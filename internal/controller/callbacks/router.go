package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Route распределяет callback query по соответствующим обработчикам
func (h *Handler) Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	data := callback.Data

	switch {
	case data == common.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Patient: поиск и запись =====
	case strings.HasPrefix(data, common.FilterSpecialty):
		h.HandleFilterSpecialty(ctx, b, callback)
	case strings.HasPrefix(data, common.BookDoctor):
		h.HandleBookDoctor(ctx, b, callback)
	case strings.HasPrefix(data, common.PickTimeSlot):
		h.HandlePickTimeSlot(ctx, b, callback)
	case data == common.CancelBooking:
		h.HandleCancelBooking(ctx, b, callback)

	// ===== Admin: проверка заявок =====
	case strings.HasPrefix(data, common.ApproveRequest):
		h.HandleAdminDecision(ctx, b, callback, common.ApproveRequest)
	case strings.HasPrefix(data, common.RejectRequest):
		h.HandleAdminDecision(ctx, b, callback, common.RejectRequest)

	// ===== Doctor: решение по заявке =====
	case strings.HasPrefix(data, common.AcceptRequest):
		h.HandleDoctorDecision(ctx, b, callback, common.AcceptRequest)
	case strings.HasPrefix(data, common.DeclineRequest):
		h.HandleDoctorDecision(ctx, b, callback, common.DeclineRequest)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❓ Unknown action")
	}
}
