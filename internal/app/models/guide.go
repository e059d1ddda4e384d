package models

import (
	"time"
	"trekora-service/internal/pkg/dto/responses"
)

type Guide struct {
	ID           string   `bson:"_id,omitempty"`
	Fullname     string   `bson:"fullname"`
	Email        string   `bson:"email"`
	Bio          string   `bson:"bio,omitempty"`
	Region       string   `bson:"region,omitempty"`
	Languages    []string `bson:"languages,omitempty"`
	PricePerDay  float64  `bson:"pricePerDay,omitempty"`
	PhotoURL     string   `bson:"photoUrl,omitempty"`
	TrailIDs     []string `bson:"trailIds,omitempty"`
	YearsGuiding int      `bson:"yearsGuiding,omitempty"`
	TimeModel    `bson:",inline"`
}

func (g Guide) ConvertIntoResponse() responses.Guide {
	return responses.Guide{
		ID:           g.ID,
		Fullname:     g.Fullname,
		Email:        g.Email,
		Bio:          g.Bio,
		Region:       g.Region,
		Languages:    g.Languages,
		PricePerDay:  g.PricePerDay,
		PhotoURL:     g.PhotoURL,
		TrailIDs:     g.TrailIDs,
		YearsGuiding: g.YearsGuiding,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
}
