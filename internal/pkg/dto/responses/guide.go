package responses

type Guide struct {
	ID           string   `json:"id"`
	Fullname     string   `json:"fullname"`
	Email        string   `json:"email"`
	Bio          string   `json:"bio,omitempty"`
	Region       string   `json:"region,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	PricePerDay  float64  `json:"price_per_day,omitempty"`
	PhotoURL     string   `json:"photo_url,omitempty"`
	TrailIDs     []string `json:"trail_ids,omitempty"`
	YearsGuiding int      `json:"years_guiding,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}
