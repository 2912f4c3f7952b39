package callbacks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleFilterSpecialty перерисовывает список врачей с фильтром по специальности
func (h *Handler) HandleFilterSpecialty(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	specialty, err := common.ParseValueFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	query, _ := h.State.GetString(callback.From.ID, state.KeySearchQuery)

	text, markup, err := common.DoctorListScreen(ctx, h.Deps, query, specialty)
	if err != nil {
		h.Logger.Error("Failed to build doctor list", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.editMessage(ctx, b, msg, text, markup)
}

// HandleBookDoctor начинает диалог записи к выбранному врачу
func (h *Handler) HandleBookDoctor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	if _, err := h.RequireRole(telegramID, model.RolePatient); err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	doctorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	doctor, err := h.Doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	// Новый диалог записи, поисковый запрос больше не нужен
	h.State.ClearState(telegramID)
	h.State.SetData(telegramID, state.KeyDoctorID, doctor.ID)
	h.State.SetState(telegramID, state.StateBookingDate)

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.sendMessage(ctx, b, msg.Chat.ID, fmt.Sprintf(
		"📅 Book Appointment with %s\n%s • %s\n\nEnter preferred date (YYYY-MM-DD):\n\n/cancel to abort",
		doctor.Name, doctor.Specialty, doctor.Location,
	))
}

// HandlePickTimeSlot сохраняет выбранное время и спрашивает причину визита
func (h *Handler) HandlePickTimeSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	telegramID := callback.From.ID

	if h.State.GetState(telegramID) != state.StateBookingTime {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "⚠️ This booking is no longer active. Start again with /doctors")
		return
	}

	value, err := common.ParseValueFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}
	idx, err := strconv.Atoi(value)
	if err != nil || idx < 0 || idx >= len(model.DefaultTimeSlots) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return
	}

	slot := model.DefaultTimeSlots[idx]
	h.State.SetData(telegramID, state.KeyTime, slot)
	h.State.SetState(telegramID, state.StateBookingReason)

	common.AnswerCallback(ctx, b, callback.ID, slot)
	h.editMessage(ctx, b, msg, fmt.Sprintf("🕐 Time: %s\n\n📝 Reason for visit:\nDescribe your symptoms or reason for visit", slot), nil)
}

// HandleCancelBooking прерывает диалог записи
func (h *Handler) HandleCancelBooking(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	h.State.ClearState(callback.From.ID)
	common.AnswerCallback(ctx, b, callback.ID, "Cancelled")

	if msg := common.GetMessageFromCallback(callback); msg != nil {
		h.editMessage(ctx, b, msg, "✖️ Booking cancelled", nil)
	}
}
