package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Commands:\n\n" +
	"/login <patient|doctor|admin> <name> - Log in\n" +
	"/logout - Log out\n" +
	"/whoami - Current identity\n" +
	"/cancel - Cancel the current dialog\n\n" +
	"For patients:\n" +
	"/doctors [search] - Browse and book doctors\n" +
	"/myappointments - Track your requests\n\n" +
	"For admins:\n" +
	"/requests - Pending appointment requests\n" +
	"/history - Approved and rejected requests\n" +
	"/stats - Statistics\n\n" +
	"For doctors:\n" +
	"/inbox - Admin-approved requests\n" +
	"/schedule - Confirmed appointments\n" +
	"/today - Today's appointments"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	welcome := "👋 Welcome to DocSpot!\n\n" +
		"DocSpot connects patients with doctors: patients request appointments, " +
		"admins review every request, doctors accept or decline approved ones.\n\n" +
		helpText

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcome)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleLogin обрабатывает /login <role> <name>.
// Для врача имя должно совпадать с врачом из справочника
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	args := commandArgs(update.Message.Text)
	if len(args) < 2 {
		h.sendMessage(ctx, b, chatID, "Usage: /login <patient|doctor|admin> <name>\n\nExample: /login doctor Dr. Sarah Johnson")
		return
	}

	role := model.Role(strings.ToLower(args[0]))
	name := strings.Join(args[1:], " ")

	identity := model.Identity{DisplayName: name, Role: role}
	if role == model.RoleDoctor {
		doctor, err := h.Doctors.FindByName(ctx, name)
		if err != nil {
			h.sendMessage(ctx, b, chatID, "❌ Doctor not found in the catalog. See /doctors for the list of names.")
			return
		}
		identity.DisplayName = doctor.Name
		identity.DoctorID = doctor.ID
	}

	session, err := h.Sessions.LoginIdentity(identity)
	if err != nil {
		h.sendMessage(ctx, b, chatID, common.ErrorMessage(err))
		return
	}

	// Предыдущая сессия этого чата закрывается
	if prevID, had := h.State.BindSession(telegramID, session.ID); had {
		if prev, err := h.Sessions.Get(prevID); err == nil {
			_ = h.Sessions.Logout(prev)
		}
	}
	h.State.ClearState(telegramID)

	h.Logger.Info("User logged in",
		zap.Int64("telegram_id", telegramID),
		zap.String("name", session.Identity.DisplayName),
		zap.String("role", string(session.Identity.Role)),
		zap.String("session_id", session.ID.String()),
	)

	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Welcome back, %s! Logged in as %s.\n\n/help - available commands",
		session.Identity.DisplayName, session.Identity.Role))
}

// HandleLogout обрабатывает /logout
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	if err := h.Sessions.Logout(session); err != nil {
		h.Logger.Warn("Logout failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
	}
	h.State.UnbindSession(telegramID)

	h.Logger.Info("User logged out",
		zap.Int64("telegram_id", telegramID),
		zap.String("session_id", session.ID.String()),
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "👋 Logged out.")
}

// HandleWhoAmI обрабатывает /whoami
func (h *Handlers) HandleWhoAmI(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireSession(ctx, b, update)
	if !ok {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf("👤 %s (%s)\nSince %s",
		session.Identity.DisplayName,
		session.Identity.Role,
		session.CreatedAt.Format("02.01.2006 15:04"),
	))
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.State.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Nothing to cancel.")
		return
	}

	h.State.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Cancelled.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.State.GetState(telegramID)

	switch currentState {
	case state.StateNone:
		return
	case state.StateBookingDate:
		h.handleBookingDateStep(ctx, b, update)
	case state.StateBookingTime:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "Please pick a time using the buttons above, or /cancel.")
	case state.StateBookingReason:
		h.handleBookingReasonStep(ctx, b, update)
	default:
		h.Logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
