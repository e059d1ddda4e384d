package contracts

import (
	"context"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
)

type TrailUsecase interface {
	Create(ctx context.Context, request *requests.CreateTrail) (*responses.Trail, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Trail, int, error)
	FindByID(ctx context.Context, trailID string) (*responses.Trail, error)
	Update(ctx context.Context, trailID string, request *requests.UpdateTrail) (*responses.Trail, error)
	Delete(ctx context.Context, trailID string) error
}

type TrailRepository interface {
	CreateTrail(ctx context.Context, trail *models.Trail) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Trail, error)
	FindByID(ctx context.Context, trailID string) (*models.Trail, error)
	UpdateTrail(ctx context.Context, trail *models.Trail) error
	DeleteTrail(ctx context.Context, trailID string) error
	CountTrails(ctx context.Context) (int, error)
}
