package common

import (
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/service"
	"go.uber.org/zap"
)

// Deps общие зависимости обработчиков команд и callback'ов
type Deps struct {
	Booking   *service.BookingService
	Projector *service.Projector
	Doctors   *service.DoctorService
	Sessions  *service.SessionService
	State     *state.Manager
	Logger    *zap.Logger
}

// CurrentSession возвращает активную сессию пользователя Telegram
func (d *Deps) CurrentSession(telegramID int64) (*model.Session, error) {
	sessionID, ok := d.State.SessionID(telegramID)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	session, err := d.Sessions.Get(sessionID)
	if err != nil {
		// Сессия закрыта где-то ещё - забываем привязку
		d.State.UnbindSession(telegramID)
		return nil, ErrNotLoggedIn
	}

	return session, nil
}

// RequireRole возвращает сессию, только если у неё нужная роль
func (d *Deps) RequireRole(telegramID int64, role model.Role) (*model.Session, error) {
	session, err := d.CurrentSession(telegramID)
	if err != nil {
		return nil, err
	}
	if session.Identity.Role != role {
		return nil, ErrWrongRole
	}
	return session, nil
}
