package responses

type Trail struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Region        string   `json:"region,omitempty"`
	DistanceKm    float64  `json:"distance_km,omitempty"`
	ElevationGain int      `json:"elevation_gain,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Description   string   `json:"description,omitempty"`
	GuideIDs      []string `json:"guide_ids,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}
