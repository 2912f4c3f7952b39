package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// handleBookingDateStep обрабатывает ввод даты приёма
func (h *Handlers) handleBookingDateStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	date := strings.TrimSpace(update.Message.Text)

	// Формат проверяем сразу; дату в прошлом отклонит ядро при отправке
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		h.sendMessage(ctx, b, chatID, "❌ Please enter the date as YYYY-MM-DD, for example 2099-01-15")
		return
	}

	h.State.SetData(telegramID, state.KeyDate, date)
	h.State.SetState(telegramID, state.StateBookingTime)

	h.sendWithKeyboard(ctx, b, chatID, "🕐 Preferred time:", common.TimeSlotKeyboard())
}

// handleBookingReasonStep обрабатывает ввод причины визита и отправляет заявку
func (h *Handlers) handleBookingReasonStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	doctorID, ok1 := h.State.GetInt64(telegramID, state.KeyDoctorID)
	date, ok2 := h.State.GetString(telegramID, state.KeyDate)
	slot, ok3 := h.State.GetString(telegramID, state.KeyTime)
	if !ok1 || !ok2 || !ok3 {
		h.Logger.Error("Missing booking dialog data", zap.Int64("telegram_id", telegramID))
		h.State.ClearState(telegramID)
		h.sendMessage(ctx, b, chatID, "❌ Booking data lost. Start again with /doctors")
		return
	}

	session, err := h.CurrentSession(telegramID)
	if err != nil {
		h.State.ClearState(telegramID)
		h.sendMessage(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	req, err := h.Booking.SubmitRequest(ctx, session, service.SubmitRequestInput{
		DoctorID: doctorID,
		Date:     date,
		Time:     slot,
		Reason:   update.Message.Text,
	})
	if err != nil {
		h.Logger.Info("Booking request refused",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.sendMessage(ctx, b, chatID, common.ErrorMessage(err))
		// Пустая причина - остаёмся на этом шаге, иначе начинаем заново
		if !strings.Contains(err.Error(), "reason") {
			h.State.ClearState(telegramID)
		}
		return
	}

	h.State.ClearState(telegramID)

	doctorName := fmt.Sprintf("doctor #%d", req.DoctorID)
	if doctor, err := h.Doctors.GetDoctor(ctx, req.DoctorID); err == nil {
		doctorName = doctor.Name
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf(
		"📨 Appointment Request Sent\n\nYour appointment request #%d with %s has been sent to admin for approval.\n\nTrack it: /myappointments",
		req.ID, doctorName,
	))
}
