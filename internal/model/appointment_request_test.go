package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentRequest_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{"pending to approved", StatusPendingAdminReview, StatusApproved, true},
		{"pending to rejected", StatusPendingAdminReview, StatusRejected, true},
		{"pending to confirmed skips admin", StatusPendingAdminReview, StatusConfirmed, false},
		{"approved to confirmed", StatusApproved, StatusConfirmed, true},
		{"approved to declined", StatusApproved, StatusDeclined, true},
		{"approved back to pending", StatusApproved, StatusPendingAdminReview, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"confirmed is terminal", StatusConfirmed, StatusDeclined, false},
		{"declined is terminal", StatusDeclined, StatusConfirmed, false},
		{"unknown status", AppointmentStatus("bogus"), StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &AppointmentRequest{Status: tt.from}
			assert.Equal(t, tt.want, req.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPendingAdminReview.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())
	assert.False(t, AppointmentStatus("bogus").IsTerminal(), "unknown status is not terminal")
}

func TestAppointmentStatus_Label(t *testing.T) {
	assert.Equal(t, "Pending Admin Approval", StatusPendingAdminReview.Label())
	assert.Equal(t, "Approved", StatusApproved.Label())
	assert.Equal(t, "Rejected", StatusRejected.Label())
	assert.Equal(t, "Confirmed", StatusConfirmed.Label())
	assert.Equal(t, "Declined", StatusDeclined.Label())
	assert.Equal(t, "Unknown", AppointmentStatus("").Label())
}

func TestDecisionTargets(t *testing.T) {
	t.Run("Admin decisions", func(t *testing.T) {
		s, ok := AdminApprove.Target()
		assert.True(t, ok)
		assert.Equal(t, StatusApproved, s)

		s, ok = AdminReject.Target()
		assert.True(t, ok)
		assert.Equal(t, StatusRejected, s)

		_, ok = AdminDecision("maybe").Target()
		assert.False(t, ok)
	})

	t.Run("Doctor decisions", func(t *testing.T) {
		s, ok := DoctorAccept.Target()
		assert.True(t, ok)
		assert.Equal(t, StatusConfirmed, s)

		s, ok = DoctorDecline.Target()
		assert.True(t, ok)
		assert.Equal(t, StatusDeclined, s)

		_, ok = DoctorDecision("approve").Target()
		assert.False(t, ok)
	})
}

func TestOperation_RequiredRole(t *testing.T) {
	tests := []struct {
		op   Operation
		role Role
	}{
		{OpSubmitRequest, RolePatient},
		{OpAdminDecide, RoleAdmin},
		{OpDoctorDecide, RoleDoctor},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			role, ok := tt.op.RequiredRole()
			assert.True(t, ok)
			assert.Equal(t, tt.role, role)
		})
	}

	_, ok := Operation("delete_everything").RequiredRole()
	assert.False(t, ok)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RolePatient.IsValid())
	assert.True(t, RoleDoctor.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("nurse").IsValid())
	assert.False(t, Role("").IsValid())
}
