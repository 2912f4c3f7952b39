package common

// ========================
// Callback Data Patterns
// ========================

const (
	FilterSpecialty = "spec:"    // spec:Cardiology | spec:all
	BookDoctor      = "book:"    // book:doctor_id
	PickTimeSlot    = "slot:"    // slot:index в model.DefaultTimeSlots
	CancelBooking   = "cancel_booking"
	Noop            = "noop"

	// Решения администратора
	ApproveRequest = "approve:" // approve:request_id
	RejectRequest  = "reject:"  // reject:request_id

	// Решения врача
	AcceptRequest  = "accept:"  // accept:request_id
	DeclineRequest = "decline:" // decline:request_id
)
