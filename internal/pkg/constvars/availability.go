package constvars

// Availability statuses a guide can declare for a calendar day or span.
const (
	AvailabilityStatusAvailable    = "available"
	AvailabilityStatusNotAvailable = "not_available"
)

// DayKeyLayout is the canonical wire format for calendar days.
const DayKeyLayout = "2006-01-02"
