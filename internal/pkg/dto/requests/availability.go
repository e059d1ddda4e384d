package requests

// SetAvailability carries a guide's availability write. Exactly one input
// shape must be supplied: a single day, an explicit span, or a discrete list
// of days. Shape exclusivity is enforced by the usecase, field formats here.
type SetAvailability struct {
	Date      string   `json:"date,omitempty" validate:"omitempty,day_key"`
	StartDate string   `json:"startDate,omitempty" validate:"omitempty,day_key"`
	EndDate   string   `json:"endDate,omitempty" validate:"omitempty,day_key"`
	Dates     []string `json:"dates,omitempty" validate:"omitempty,dive,day_key"`
	Status    string   `json:"status" validate:"required,availability_status"`
	Note      string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// GetAvailability is the parsed query for a guide's calendar window.
type GetAvailability struct {
	From string `validate:"required,day_key"`
	To   string `validate:"required,day_key"`
}
