package domain

// SlotStepMinutes is the fixed granularity at which candidate slot start
// times are enumerated. It is independent of the service duration: slots of
// a long service may overlap in start offset but never run past the window.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxCustomerNameLength    = 100
	MaxCustomerEmailLength   = 100
	MaxCustomerPhoneLength   = 20
	MaxCustomerMessageLength = 1000
	MaxServiceNameLength     = 100
)

// Default weekday window used when an admin saves a service without
// explicit hours for a day
const (
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "18:00"
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// InactiveStatuses список статусов, не занимающих слот.
// Используется при фильтрации встреч в расчёте доступности.
var InactiveStatuses = []AppointmentStatus{
	StatusDeclined,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
