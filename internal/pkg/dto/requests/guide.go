package requests

type CreateGuide struct {
	Fullname     string   `json:"fullname" validate:"required,min=2,max=100"`
	Email        string   `json:"email" validate:"required,email"`
	Bio          string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Region       string   `json:"region,omitempty" validate:"omitempty,max=100"`
	Languages    []string `json:"languages,omitempty"`
	PricePerDay  float64  `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
	YearsGuiding int      `json:"years_guiding,omitempty" validate:"omitempty,gte=0"`
}

type UpdateGuide struct {
	Fullname     string   `json:"fullname,omitempty" validate:"omitempty,min=2,max=100"`
	Bio          string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Region       string   `json:"region,omitempty" validate:"omitempty,max=100"`
	Languages    []string `json:"languages,omitempty"`
	PricePerDay  float64  `json:"price_per_day,omitempty" validate:"omitempty,gte=0"`
	YearsGuiding int      `json:"years_guiding,omitempty" validate:"omitempty,gte=0"`
}
