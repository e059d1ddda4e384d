package models

import (
	"time"
	"trekora-service/internal/pkg/dto/responses"
)

type Trail struct {
	ID            string   `bson:"_id,omitempty"`
	Name          string   `bson:"name"`
	Region        string   `bson:"region,omitempty"`
	DistanceKm    float64  `bson:"distanceKm,omitempty"`
	ElevationGain int      `bson:"elevationGain,omitempty"`
	Difficulty    string   `bson:"difficulty,omitempty"`
	Description   string   `bson:"description,omitempty"`
	GuideIDs      []string `bson:"guideIds,omitempty"`
	TimeModel     `bson:",inline"`
}

func (t Trail) ConvertIntoResponse() responses.Trail {
	return responses.Trail{
		ID:            t.ID,
		Name:          t.Name,
		Region:        t.Region,
		DistanceKm:    t.DistanceKm,
		ElevationGain: t.ElevationGain,
		Difficulty:    t.Difficulty,
		Description:   t.Description,
		GuideIDs:      t.GuideIDs,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}
}
