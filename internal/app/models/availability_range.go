package models

import (
	"time"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/dto/responses"
)

// AvailabilityRange is one availability statement for a guide: an inclusive
// [StartDate, EndDate] day span with a status and an optional note. Both
// dates are UTC midnight. Spans of a guide may overlap; overlap is resolved
// at read time by UpdatedAt recency, not prevented at write time.
type AvailabilityRange struct {
	ID        string    `bson:"_id,omitempty"`
	GuideID   string    `bson:"guideId"`
	StartDate time.Time `bson:"startDate"`
	EndDate   time.Time `bson:"endDate"`
	Status    string    `bson:"status"`
	Note      string    `bson:"note,omitempty"`
	TimeModel `bson:",inline"`
}

// Covers reports whether day falls inside the range, boundaries included.
func (r AvailabilityRange) Covers(day time.Time) bool {
	return !r.StartDate.After(day) && !r.EndDate.Before(day)
}

func (r AvailabilityRange) ConvertIntoSpanResponse() responses.AvailabilitySpan {
	return responses.AvailabilitySpan{
		StartDate: r.StartDate.UTC().Format(constvars.DayKeyLayout),
		EndDate:   r.EndDate.UTC().Format(constvars.DayKeyLayout),
	}
}
