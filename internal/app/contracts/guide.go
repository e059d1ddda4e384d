package contracts

import (
	"context"
	"io"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
)

type GuideUsecase interface {
	Create(ctx context.Context, request *requests.CreateGuide) (*responses.Guide, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Guide, int, error)
	FindByID(ctx context.Context, guideID string) (*responses.Guide, error)
	Update(ctx context.Context, guideID string, request *requests.UpdateGuide) (*responses.Guide, error)
	Delete(ctx context.Context, guideID string) error
	UploadPhoto(ctx context.Context, guideID, fileExtension, contentType string, file io.Reader, fileSize int64) (*responses.Guide, error)
}

type GuideRepository interface {
	CreateGuide(ctx context.Context, guide *models.Guide) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Guide, error)
	FindByID(ctx context.Context, guideID string) (*models.Guide, error)
	FindByEmail(ctx context.Context, email string) (*models.Guide, error)
	UpdateGuide(ctx context.Context, guide *models.Guide) error
	DeleteGuide(ctx context.Context, guideID string) error
	CountGuides(ctx context.Context) (int, error)
}
