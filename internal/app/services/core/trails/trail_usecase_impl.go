package trails

import (
	"context"
	"fmt"
	"time"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
	"trekora-service/internal/pkg/exceptions"
	"trekora-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type trailUsecase struct {
	TrailRepository contracts.TrailRepository
	GuideRepository contracts.GuideRepository
	Log             *zap.Logger
}

func NewTrailUsecase(
	trailRepository contracts.TrailRepository,
	guideRepository contracts.GuideRepository,
	logger *zap.Logger,
) contracts.TrailUsecase {
	return &trailUsecase{
		TrailRepository: trailRepository,
		GuideRepository: guideRepository,
		Log:             logger,
	}
}

func (uc *trailUsecase) Create(ctx context.Context, request *requests.CreateTrail) (*responses.Trail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trailUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := uc.ensureGuidesExist(ctx, request.GuideIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	trail := &models.Trail{
		ID:            uuid.NewString(),
		Name:          request.Name,
		Region:        request.Region,
		DistanceKm:    request.DistanceKm,
		ElevationGain: request.ElevationGain,
		Difficulty:    request.Difficulty,
		Description:   request.Description,
		GuideIDs:      request.GuideIDs,
		TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.TrailRepository.CreateTrail(ctx, trail); err != nil {
		return nil, err
	}

	response := trail.ConvertIntoResponse()
	return &response, nil
}

func (uc *trailUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Trail, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trailUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	trails, err := uc.TrailRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.TrailRepository.CountTrails(ctx)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Trail, 0, len(trails))
	for _, trail := range trails {
		response = append(response, trail.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *trailUsecase) FindByID(ctx context.Context, trailID string) (*responses.Trail, error) {
	trail, err := uc.TrailRepository.FindByID(ctx, trailID)
	if err != nil {
		return nil, err
	}
	if trail == nil {
		return nil, exceptions.ErrTrailNotExist(fmt.Errorf("trail %s", trailID))
	}

	response := trail.ConvertIntoResponse()
	return &response, nil
}

func (uc *trailUsecase) Update(ctx context.Context, trailID string, request *requests.UpdateTrail) (*responses.Trail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trailUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTrailIDKey, trailID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	trail, err := uc.TrailRepository.FindByID(ctx, trailID)
	if err != nil {
		return nil, err
	}
	if trail == nil {
		return nil, exceptions.ErrTrailNotExist(fmt.Errorf("trail %s", trailID))
	}

	if request.GuideIDs != nil {
		if err := uc.ensureGuidesExist(ctx, request.GuideIDs); err != nil {
			return nil, err
		}
		trail.GuideIDs = request.GuideIDs
	}
	if request.Name != "" {
		trail.Name = request.Name
	}
	if request.Region != "" {
		trail.Region = request.Region
	}
	if request.DistanceKm != 0 {
		trail.DistanceKm = request.DistanceKm
	}
	if request.ElevationGain != 0 {
		trail.ElevationGain = request.ElevationGain
	}
	if request.Difficulty != "" {
		trail.Difficulty = request.Difficulty
	}
	if request.Description != "" {
		trail.Description = request.Description
	}
	trail.UpdatedAt = time.Now().UTC()

	if err := uc.TrailRepository.UpdateTrail(ctx, trail); err != nil {
		return nil, err
	}

	response := trail.ConvertIntoResponse()
	return &response, nil
}

func (uc *trailUsecase) Delete(ctx context.Context, trailID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("trailUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTrailIDKey, trailID),
	)

	trail, err := uc.TrailRepository.FindByID(ctx, trailID)
	if err != nil {
		return err
	}
	if trail == nil {
		return exceptions.ErrTrailNotExist(fmt.Errorf("trail %s", trailID))
	}

	return uc.TrailRepository.DeleteTrail(ctx, trailID)
}

func (uc *trailUsecase) ensureGuidesExist(ctx context.Context, guideIDs []string) error {
	for _, guideID := range guideIDs {
		guide, err := uc.GuideRepository.FindByID(ctx, guideID)
		if err != nil {
			return err
		}
		if guide == nil {
			return exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
		}
	}
	return nil
}
