package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Состояния диалога записи на приём
	StateBookingDate   UserState = "booking_date"
	StateBookingTime   UserState = "booking_time"
	StateBookingReason UserState = "booking_reason"
)

// Ключи временных данных диалога
const (
	KeyDoctorID    = "doctor_id"
	KeyDate        = "date"
	KeyTime        = "time"
	KeySearchQuery = "search_query"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
