package callbacks

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/formatting"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleAdminDecision одобряет или отклоняет заявку администратором
func (h *Handler) HandleAdminDecision(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, prefix string) {
	decision := model.AdminApprove
	if prefix == common.RejectRequest {
		decision = model.AdminReject
	}

	requestID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	session, err := h.CurrentSession(callback.From.ID)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	req, err := h.Booking.AdminDecide(ctx, session, requestID, decision)
	if err != nil {
		h.Logger.Info("Admin decision refused",
			zap.Int64("request_id", requestID),
			zap.String("decision", string(decision)),
			zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	answer := "✅ Request approved and sent to doctor"
	if req.Status == model.StatusRejected {
		answer = "🚫 Request rejected"
	}
	common.AnswerCallbackAlert(ctx, b, callback.ID, answer)

	if msg := common.GetMessageFromCallback(callback); msg != nil {
		h.editMessage(ctx, b, msg, decidedText(req), nil)
	}
}

// HandleDoctorDecision принимает или отклоняет заявку врачом
func (h *Handler) HandleDoctorDecision(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, prefix string) {
	decision := model.DoctorAccept
	if prefix == common.DeclineRequest {
		decision = model.DoctorDecline
	}

	requestID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	session, err := h.CurrentSession(callback.From.ID)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	req, err := h.Booking.DoctorDecide(ctx, session, requestID, decision)
	if err != nil {
		h.Logger.Info("Doctor decision refused",
			zap.Int64("request_id", requestID),
			zap.String("decision", string(decision)),
			zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	answer := "✅ Appointment confirmed"
	if req.Status == model.StatusDeclined {
		answer = "❌ Appointment declined"
	}
	common.AnswerCallbackAlert(ctx, b, callback.ID, answer)

	if msg := common.GetMessageFromCallback(callback); msg != nil {
		h.editMessage(ctx, b, msg, decidedText(req), nil)
	}
}

func decidedText(req *model.AppointmentRequest) string {
	return fmt.Sprintf("%s\n✍️ Decided by: %s", formatting.FormatRequest(req), req.DecidedBy)
}
