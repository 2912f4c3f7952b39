package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/formatting"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleInbox обрабатывает /inbox - одобренные администратором заявки врача
func (h *Handlers) HandleInbox(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireRole(ctx, b, update, model.RoleDoctor)
	if !ok {
		return
	}

	chatID := update.Message.Chat.ID
	pending := h.Projector.DoctorPendingView(session.Identity.DoctorID)
	if len(pending) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No pending appointment requests")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("📥 Appointment Requests: %d\n\nReview and respond to patient appointment requests.", len(pending)))

	for _, req := range pending {
		h.sendWithKeyboard(ctx, b, chatID,
			formatting.FormatRequest(req)+"\n🏷 Admin Approved",
			common.DoctorReviewKeyboard(req.ID))
	}
}

// HandleSchedule обрабатывает /schedule - подтверждённые приёмы
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireRole(ctx, b, update, model.RoleDoctor)
	if !ok {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatRequestList(
		"🗓 Your Schedule",
		"No confirmed appointments yet",
		h.Projector.DoctorScheduleView(session.Identity.DoctorID),
	))
}

// HandleToday обрабатывает /today - приёмы на сегодня
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireRole(ctx, b, update, model.RoleDoctor)
	if !ok {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatRequestList(
		"📅 Today's Appointments",
		"No appointments today",
		h.Projector.DoctorTodayView(session.Identity.DoctorID),
	))
}
