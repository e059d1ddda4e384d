package requests

type Register struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Fullname string `json:"fullname,omitempty" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,password"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
