package state

import (
	"sync"

	"github.com/google/uuid"
)

// Manager управляет состояниями диалогов и привязкой чата к сессии
type Manager struct {
	mu       sync.RWMutex
	states   map[int64]*UserData  // telegramID -> UserData
	sessions map[int64]uuid.UUID // telegramID -> ID сессии
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states:   make(map[int64]*UserData),
		sessions: make(map[int64]uuid.UUID),
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		// Если состояние None, удаляем запись
		delete(sm.states, telegramID)
		return
	}

	if _, exists := sm.states[telegramID]; !exists {
		sm.states[telegramID] = &UserData{
			State: state,
			Data:  make(map[string]interface{}),
		}
	} else {
		sm.states[telegramID].State = state
	}
}

// GetData получает временные данные пользователя
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return nil, false
}

// GetInt64 получает число из временных данных
func (sm *Manager) GetInt64(telegramID int64, key string) (int64, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int64)
	return n, ok
}

// GetString получает строку из временных данных
func (sm *Manager) GetString(telegramID int64, key string) (string, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// SetData устанавливает временные данные пользователя
func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[telegramID]; !exists {
		// Создаём запись если её нет
		sm.states[telegramID] = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
	}
	sm.states[telegramID].Data[key] = value
}

// ClearState очищает состояние и данные пользователя (сессия остаётся)
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

// BindSession привязывает сессию к пользователю и возвращает предыдущую, если была
func (sm *Manager) BindSession(telegramID int64, sessionID uuid.UUID) (uuid.UUID, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	prev, had := sm.sessions[telegramID]
	sm.sessions[telegramID] = sessionID
	return prev, had
}

// SessionID возвращает сессию пользователя
func (sm *Manager) SessionID(telegramID int64) (uuid.UUID, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	id, ok := sm.sessions[telegramID]
	return id, ok
}

// UnbindSession убирает привязку сессии и очищает диалог
func (sm *Manager) UnbindSession(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, telegramID)
	delete(sm.states, telegramID)
}
