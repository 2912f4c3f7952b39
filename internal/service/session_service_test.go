package service

import (
	"testing"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Login(t *testing.T) {
	t.Run("Trims display name", func(t *testing.T) {
		s := NewSessionService()

		session, err := s.Login("  Alice  ", model.RolePatient)
		require.NoError(t, err)
		assert.Equal(t, "Alice", session.Identity.DisplayName)
		assert.Equal(t, model.RolePatient, session.Identity.Role)
		assert.NotEqual(t, uuid.Nil, session.ID)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		tests := []struct {
			name string
			user string
			role model.Role
		}{
			{"empty name", "", model.RoleAdmin},
			{"blank name", "   ", model.RoleAdmin},
			{"unknown role", "Alice", model.Role("nurse")},
			{"empty role", "Alice", ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := NewSessionService()
				session, err := s.Login(tt.user, tt.role)
				assert.Nil(t, session)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Equal(t, 0, s.Count())
			})
		}
	})

	t.Run("Doctor id kept only for doctors", func(t *testing.T) {
		s := NewSessionService()

		doctor, err := s.LoginIdentity(model.Identity{DisplayName: "Dr. Sarah Johnson", Role: model.RoleDoctor, DoctorID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), doctor.Identity.DoctorID)

		admin, err := s.LoginIdentity(model.Identity{DisplayName: "Ann", Role: model.RoleAdmin, DoctorID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), admin.Identity.DoctorID)
	})

	t.Run("Sessions are independent", func(t *testing.T) {
		s := NewSessionService()
		a, _ := s.Login("Alice", model.RolePatient)
		b, _ := s.Login("Alice", model.RolePatient)
		assert.NotEqual(t, a.ID, b.ID)

		require.NoError(t, s.Logout(a))
		_, err := s.Get(b.ID)
		assert.NoError(t, err)
	})
}

func TestSessionService_Logout(t *testing.T) {
	s := NewSessionService()
	session, _ := s.Login("Ann", model.RoleAdmin)

	require.NoError(t, s.Logout(session))
	assert.Equal(t, 0, s.Count())

	err := s.Logout(session)
	assert.ErrorIs(t, err, model.ErrUnauthorized, "second logout fails")

	err = s.Logout(nil)
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, err = s.Get(session.ID)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestSessionService_Authorize(t *testing.T) {
	s := NewSessionService()
	patient, _ := s.Login("Pat", model.RolePatient)
	admin, _ := s.Login("Ann", model.RoleAdmin)
	doctor, _ := s.Login("Doc", model.RoleDoctor)

	tests := []struct {
		name    string
		session *model.Session
		op      model.Operation
		allowed bool
	}{
		{"patient submits", patient, model.OpSubmitRequest, true},
		{"patient cannot admin decide", patient, model.OpAdminDecide, false},
		{"patient cannot doctor decide", patient, model.OpDoctorDecide, false},
		{"admin decides", admin, model.OpAdminDecide, true},
		{"admin cannot submit", admin, model.OpSubmitRequest, false},
		{"doctor decides", doctor, model.OpDoctorDecide, true},
		{"doctor cannot admin decide", doctor, model.OpAdminDecide, false},
		{"unknown operation", admin, model.Operation("drop"), false},
		{"nil session", nil, model.OpSubmitRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := s.Authorize(tt.session, tt.op)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.session.ID, active.ID)
				return
			}
			assert.Nil(t, active)
			assert.ErrorIs(t, err, model.ErrUnauthorized)
		})
	}

	t.Run("Logged out session is refused", func(t *testing.T) {
		require.NoError(t, s.Logout(admin))
		_, err := s.Authorize(admin, model.OpAdminDecide)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("Forged role is ignored", func(t *testing.T) {
		forged := *patient
		forged.Identity.Role = model.RoleAdmin
		_, err := s.Authorize(&forged, model.OpAdminDecide)
		assert.ErrorIs(t, err, model.ErrUnauthorized, "stored role wins over caller copy")
	})
}
