package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/google/uuid"
)

type loginInput struct {
	DisplayName string `validate:"required"`
	Role        string `validate:"required,oneof=patient doctor admin"`
}

// SessionService создаёт и закрывает сессии и проверяет права на операции.
// Учётные данные не проверяются: роль берётся со слов пользователя.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*model.Session
	now      func() time.Time
}

func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[uuid.UUID]*model.Session),
		now:      time.Now,
	}
}

// Login открывает сессию для имени и роли
func (s *SessionService) Login(displayName string, role model.Role) (*model.Session, error) {
	return s.LoginIdentity(model.Identity{DisplayName: displayName, Role: role})
}

// LoginIdentity открывает сессию для готовой identity (например врача, привязанного к справочнику)
func (s *SessionService) LoginIdentity(identity model.Identity) (*model.Session, error) {
	identity.DisplayName = strings.TrimSpace(identity.DisplayName)

	if err := validateStruct(loginInput{
		DisplayName: identity.DisplayName,
		Role:        string(identity.Role),
	}); err != nil {
		return nil, err
	}

	if identity.Role != model.RoleDoctor {
		identity.DoctorID = 0
	}

	session := &model.Session{
		ID:        uuid.New(),
		Identity:  identity,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	cp := *session
	return &cp, nil
}

// Logout закрывает сессию. Повторный logout - ошибка
func (s *SessionService) Logout(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("%w: no session", model.ErrUnauthorized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return fmt.Errorf("%w: session %s is not active", model.ErrUnauthorized, session.ID)
	}
	delete(s.sessions, session.ID)
	return nil
}

// Get возвращает активную сессию по ID
func (s *SessionService) Get(id uuid.UUID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %s is not active", model.ErrUnauthorized, id)
	}

	cp := *session
	return &cp, nil
}

// Authorize проверяет что сессия активна и её роль совпадает с ролью операции
func (s *SessionService) Authorize(session *model.Session, op model.Operation) (*model.Session, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: no session", model.ErrUnauthorized)
	}

	required, ok := op.RequiredRole()
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %q", model.ErrUnauthorized, op)
	}

	active, err := s.Get(session.ID)
	if err != nil {
		return nil, err
	}

	if active.Identity.Role != required {
		return nil, fmt.Errorf("%w: %s requires role %s, session has %s",
			model.ErrUnauthorized, op, required, active.Identity.Role)
	}

	return active, nil
}

// Count возвращает количество открытых сессий
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
