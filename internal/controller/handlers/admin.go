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

// HandleRequests обрабатывает /requests - очередь заявок на проверку
func (h *Handlers) HandleRequests(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireRole(ctx, b, update, model.RoleAdmin); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	pending := h.Projector.AdminPendingView()
	if len(pending) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No pending requests to review")
		return
	}

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("⏳ Pending Appointment Requests: %d\n\nReview and approve requests before they're sent to doctors.", len(pending)))

	// Каждая заявка отдельным сообщением со своими кнопками
	for _, entry := range pending {
		h.sendWithKeyboard(ctx, b, chatID,
			formatting.FormatPendingEntry(entry),
			common.AdminReviewKeyboard(entry.Request.ID))
	}
}

// HandleHistory обрабатывает /history - одобренные и отклонённые заявки
func (h *Handlers) HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireRole(ctx, b, update, model.RoleAdmin); !ok {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatAdminHistory(h.Projector.AdminHistoryView()))
}

// HandleStats обрабатывает /stats
func (h *Handlers) HandleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireRole(ctx, b, update, model.RoleAdmin); !ok {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatCounts(h.Projector.CountsView()))
}
