package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/service"
	"github.com/stretchr/testify/assert"
)

func sampleRequest(status model.AppointmentStatus) *model.AppointmentRequest {
	return &model.AppointmentRequest{
		ID:            7,
		PatientID:     "Alice",
		DoctorID:      1,
		Specialty:     "Cardiology",
		Location:      "Downtown Medical Center",
		RequestedDate: "2099-01-15",
		RequestedTime: "10:00 AM",
		Reason:        "checkup",
		Status:        status,
		CreatedAt:     time.Date(2030, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetStatusDisplay(t *testing.T) {
	assert.Equal(t, StatusDisplay{"⏳", "Pending Admin Approval"}, GetStatusDisplay(model.StatusPendingAdminReview))
	assert.Equal(t, StatusDisplay{"✅", "Confirmed"}, GetStatusDisplay(model.StatusConfirmed))
	assert.Equal(t, StatusDisplay{"❓", "Unknown"}, GetStatusDisplay("bogus"))
}

func TestFormatRequest(t *testing.T) {
	text := FormatRequest(sampleRequest(model.StatusApproved))

	assert.Contains(t, text, "Request #7")
	assert.Contains(t, text, "Patient: Alice")
	assert.Contains(t, text, "2099-01-15 at 10:00 AM")
	assert.Contains(t, text, "Status: Approved")
	assert.Contains(t, text, "Requested on: 2030-03-10")
}

func TestFormatPendingEntry(t *testing.T) {
	req := sampleRequest(model.StatusPendingAdminReview)

	assert.NotContains(t, FormatPendingEntry(service.AdminPendingEntry{Request: req}), "other request")
	assert.Contains(t, FormatPendingEntry(service.AdminPendingEntry{Request: req, SlotConflicts: 2}), "2 other request(s)")
}

func TestFormatPatientHistory(t *testing.T) {
	assert.Contains(t, FormatPatientHistory(nil), "no appointment requests")

	text := FormatPatientHistory([]service.PatientHistoryEntry{
		{Request: sampleRequest(model.StatusPendingAdminReview), StatusLabel: "Pending Admin Approval"},
	})
	assert.Contains(t, text, "#7 Cardiology")
	assert.Contains(t, text, "Pending Admin Approval")
}

func TestFormatAdminHistory(t *testing.T) {
	text := FormatAdminHistory(service.AdminHistory{
		Approved: []*model.AppointmentRequest{sampleRequest(model.StatusApproved)},
		Rejected: []*model.AppointmentRequest{},
	})

	assert.Contains(t, text, "Approved Requests")
	assert.Contains(t, text, "#7 2099-01-15")
	assert.Contains(t, text, "No rejected requests yet")
}

func TestFormatCounts(t *testing.T) {
	text := FormatCounts(service.Counts{Total: 4, Pending: 2, Approved: 1, Rejected: 1})
	assert.Contains(t, text, "Total requests: 4")
	assert.Contains(t, text, "Pending review: 2")
}

func TestFormatDoctor(t *testing.T) {
	text := FormatDoctor(&model.Doctor{
		Name:            "Dr. Michael Chen",
		Specialty:       "Dermatology",
		Location:        "Westside Clinic",
		ExperienceYears: 10,
		Rating:          4.9,
	})
	assert.Contains(t, text, "Dr. Michael Chen")
	assert.Contains(t, text, "10 years • ⭐ 4.9/5.0")
}
