package responses

// CalendarDay is one resolved day of a guide's calendar.
type CalendarDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// AvailabilityCalendar answers a [from, to] calendar query: one entry per
// day, ascending, no gaps.
type AvailabilityCalendar struct {
	GuideID  string        `json:"guideId"`
	From     string        `json:"from"`
	To       string        `json:"to"`
	Calendar []CalendarDay `json:"calendar"`
}

// AvailabilitySpan is one normalized [startDate, endDate] span written by an
// availability update.
type AvailabilitySpan struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SetAvailability reports the spans affected by an availability write.
type SetAvailability struct {
	Affected int                `json:"affected"`
	Spans    []AvailabilitySpan `json:"spans"`
}
