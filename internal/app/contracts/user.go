package contracts

import (
	"context"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.UserProfile, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
