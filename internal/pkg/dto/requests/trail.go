package requests

type CreateTrail struct {
	Name          string   `json:"name" validate:"required,min=2,max=150"`
	Region        string   `json:"region,omitempty" validate:"omitempty,max=100"`
	DistanceKm    float64  `json:"distance_km,omitempty" validate:"omitempty,gt=0"`
	ElevationGain int      `json:"elevation_gain,omitempty" validate:"omitempty,gte=0"`
	Difficulty    string   `json:"difficulty,omitempty" validate:"omitempty,oneof=easy moderate hard expert"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	GuideIDs      []string `json:"guide_ids,omitempty"`
}

type UpdateTrail struct {
	Name          string   `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Region        string   `json:"region,omitempty" validate:"omitempty,max=100"`
	DistanceKm    float64  `json:"distance_km,omitempty" validate:"omitempty,gt=0"`
	ElevationGain int      `json:"elevation_gain,omitempty" validate:"omitempty,gte=0"`
	Difficulty    string   `json:"difficulty,omitempty" validate:"omitempty,oneof=easy moderate hard expert"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	GuideIDs      []string `json:"guide_ids,omitempty"`
}
