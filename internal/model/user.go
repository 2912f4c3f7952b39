package model

import (
	"time"

	"github.com/google/uuid"
)

// Role роль пользователя в системе
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// IsValid проверяет что роль из закрытого списка
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// Identity представляет залогиненного пользователя
type Identity struct {
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
	DoctorID    int64  `json:"doctor_id,omitempty"` // для врача: ID в справочнике, 0 если не привязан
}

// Session активная сессия пользователя
type Session struct {
	ID        uuid.UUID `json:"id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}

// Operation операция, требующая авторизации
type Operation string

const (
	OpSubmitRequest Operation = "submit_request"
	OpAdminDecide   Operation = "admin_decide"
	OpDoctorDecide  Operation = "doctor_decide"
)

// RequiredRole возвращает роль, которой разрешена операция
func (o Operation) RequiredRole() (Role, bool) {
	switch o {
	case OpSubmitRequest:
		return RolePatient, true
	case OpAdminDecide:
		return RoleAdmin, true
	case OpDoctorDecide:
		return RoleDoctor, true
	}
	return "", false
}
