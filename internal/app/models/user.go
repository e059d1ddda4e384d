package models

import "trekora-service/internal/pkg/dto/responses"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Fullname  string `bson:"fullname,omitempty"`
	TimeModel `bson:",inline"`
}

func (u User) ConvertIntoProfileResponse() responses.UserProfile {
	return responses.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Fullname: u.Fullname,
	}
}
