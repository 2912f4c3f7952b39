package common

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/repository"
	"github.com/Freeeeeet/docspot/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseCallback(t *testing.T) {
	id, err := ParseIDFromCallback("approve:123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)

	value, err := ParseValueFromCallback("spec:Cardiology")
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", value)

	for _, bad := range []string{"approve", "approve:", ""} {
		_, err := ParseValueFromCallback(bad)
		assert.Error(t, err, bad)
	}

	_, err = ParseIDFromCallback("approve:abc")
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not logged in", ErrNotLoggedIn, "Please log in"},
		{"wrong role", ErrWrongRole, "not available for your role"},
		{"validation keeps detail", fmt.Errorf("%w: reason is required", model.ErrValidation), "reason is required"},
		{"bare validation", model.ErrValidation, "Please fill in all required fields"},
		{"transition", fmt.Errorf("%w: request 1 is approved", model.ErrInvalidTransition), "already been processed"},
		{"unauthorized", fmt.Errorf("%w: no session", model.ErrUnauthorized), "not allowed"},
		{"not found", fmt.Errorf("%w: doctor 9", model.ErrNotFound), "Not found"},
		{"unknown", fmt.Errorf("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ErrorMessage(tt.err), tt.want)
		})
	}
}

func newTestDeps() *Deps {
	registry := repository.NewAppointmentRegistry()
	sessions := service.NewSessionService()
	doctors := service.NewDoctorService(repository.NewStaticDoctorCatalog(repository.DefaultDoctors))
	return &Deps{
		Booking:   service.NewBookingService(registry, sessions, doctors, zap.NewNop()),
		Projector: service.NewProjector(registry),
		Doctors:   doctors,
		Sessions:  sessions,
		State:     state.NewManager(),
		Logger:    zap.NewNop(),
	}
}

func TestDeps_CurrentSession(t *testing.T) {
	d := newTestDeps()

	_, err := d.CurrentSession(1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	session, err := d.Sessions.Login("Ann", model.RoleAdmin)
	require.NoError(t, err)
	d.State.BindSession(1, session.ID)

	got, err := d.CurrentSession(1)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = d.RequireRole(1, model.RoleAdmin)
	assert.NoError(t, err)
	_, err = d.RequireRole(1, model.RolePatient)
	assert.ErrorIs(t, err, ErrWrongRole)

	t.Run("Closed session is unbound", func(t *testing.T) {
		d.State.BindSession(2, uuid.New())
		_, err := d.CurrentSession(2)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
		_, ok := d.State.SessionID(2)
		assert.False(t, ok)
	})
}

func TestDoctorListScreen(t *testing.T) {
	d := newTestDeps()

	text, kb, err := DoctorListScreen(context.Background(), d, "", "Dermatology")
	require.NoError(t, err)
	assert.Contains(t, text, "Dr. Michael Chen")
	assert.NotContains(t, text, "Dr. Sarah Johnson")

	require.NotEmpty(t, kb.InlineKeyboard)
	assert.Equal(t, BookDoctor+"2", kb.InlineKeyboard[0][0].CallbackData)

	var filters []string
	for _, row := range kb.InlineKeyboard[1:] {
		for _, b := range row {
			filters = append(filters, b.CallbackData)
		}
	}
	assert.Equal(t, []string{"spec:all", "spec:Cardiology", "spec:Dermatology", "spec:Pediatrics"}, filters)

	text, _, err = DoctorListScreen(context.Background(), d, "nobody", "")
	require.NoError(t, err)
	assert.True(t, strings.Contains(text, "No doctors match"))
}

func TestTimeSlotKeyboard(t *testing.T) {
	kb := TimeSlotKeyboard()

	// 12 слотов по 3 в ряд и кнопка отмены
	require.Len(t, kb.InlineKeyboard, 5)
	assert.Equal(t, "9:00 AM", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, PickTimeSlot+"11", kb.InlineKeyboard[3][2].CallbackData)
	assert.Equal(t, CancelBooking, kb.InlineKeyboard[4][0].CallbackData)
}

func TestReviewKeyboards(t *testing.T) {
	admin := AdminReviewKeyboard(5)
	assert.Equal(t, "approve:5", admin.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "reject:5", admin.InlineKeyboard[0][1].CallbackData)

	doctor := DoctorReviewKeyboard(6)
	assert.Equal(t, "accept:6", doctor.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "decline:6", doctor.InlineKeyboard[0][1].CallbackData)
}
