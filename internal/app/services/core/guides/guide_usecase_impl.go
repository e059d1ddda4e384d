package guides

import (
	"context"
	"fmt"
	"io"
	"mime"
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

type guideUsecase struct {
	GuideRepository        contracts.GuideRepository
	AvailabilityRepository contracts.AvailabilityRepository
	StorageService         contracts.StorageService
	EventPublisher         contracts.EventPublisher
	Log                    *zap.Logger
}

func NewGuideUsecase(
	guideRepository contracts.GuideRepository,
	availabilityRepository contracts.AvailabilityRepository,
	storageService contracts.StorageService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.GuideUsecase {
	return &guideUsecase{
		GuideRepository:        guideRepository,
		AvailabilityRepository: availabilityRepository,
		StorageService:         storageService,
		EventPublisher:         eventPublisher,
		Log:                    logger,
	}
}

func (uc *guideUsecase) Create(ctx context.Context, request *requests.CreateGuide) (*responses.Guide, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("guideUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.GuideRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("guide email %s", request.Email))
	}

	now := time.Now().UTC()
	guide := &models.Guide{
		ID:           uuid.NewString(),
		Fullname:     request.Fullname,
		Email:        request.Email,
		Bio:          request.Bio,
		Region:       request.Region,
		Languages:    request.Languages,
		PricePerDay:  request.PricePerDay,
		YearsGuiding: request.YearsGuiding,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.GuideRepository.CreateGuide(ctx, guide); err != nil {
		return nil, err
	}

	response := guide.ConvertIntoResponse()
	return &response, nil
}

func (uc *guideUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.Guide, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("guideUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	guides, err := uc.GuideRepository.FindAll(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.GuideRepository.CountGuides(ctx)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Guide, 0, len(guides))
	for _, guide := range guides {
		response = append(response, guide.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *guideUsecase) FindByID(ctx context.Context, guideID string) (*responses.Guide, error) {
	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	response := guide.ConvertIntoResponse()
	return &response, nil
}

func (uc *guideUsecase) Update(ctx context.Context, guideID string, request *requests.UpdateGuide) (*responses.Guide, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("guideUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	if request.Fullname != "" {
		guide.Fullname = request.Fullname
	}
	if request.Bio != "" {
		guide.Bio = request.Bio
	}
	if request.Region != "" {
		guide.Region = request.Region
	}
	if request.Languages != nil {
		guide.Languages = request.Languages
	}
	if request.PricePerDay != 0 {
		guide.PricePerDay = request.PricePerDay
	}
	if request.YearsGuiding != 0 {
		guide.YearsGuiding = request.YearsGuiding
	}
	guide.UpdatedAt = time.Now().UTC()

	if err := uc.GuideRepository.UpdateGuide(ctx, guide); err != nil {
		return nil, err
	}

	response := guide.ConvertIntoResponse()
	return &response, nil
}

func (uc *guideUsecase) Delete(ctx context.Context, guideID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("guideUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
	)

	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return err
	}
	if guide == nil {
		return exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	if err := uc.GuideRepository.DeleteGuide(ctx, guideID); err != nil {
		return err
	}

	// Availability ranges are owned by the guide, so they go with it.
	if err := uc.AvailabilityRepository.DeleteByGuideID(ctx, guideID); err != nil {
		uc.Log.Error("guideUsecase.Delete error cascading availability ranges",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGuideIDKey, guideID),
			zap.Error(err),
		)
		return err
	}

	if uc.EventPublisher != nil {
		event := map[string]interface{}{"guideId": guideID}
		if err := uc.EventPublisher.Publish(ctx, constvars.EventGuideDeleted, event); err != nil {
			uc.Log.Warn("guideUsecase.Delete event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingGuideIDKey, guideID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (uc *guideUsecase) UploadPhoto(ctx context.Context, guideID, fileExtension, contentType string, file io.Reader, fileSize int64) (*responses.Guide, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("guideUsecase.UploadPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
	)

	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(fileExtension)
	}
	objectName := utils.GenerateFileName("guide_photo", guideID, fileExtension)
	objectURL, err := uc.StorageService.UploadFile(ctx, objectName, file, fileSize, contentType)
	if err != nil {
		uc.Log.Error("guideUsecase.UploadPhoto error uploading to object storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	guide.PhotoURL = objectURL
	guide.UpdatedAt = time.Now().UTC()
	if err := uc.GuideRepository.UpdateGuide(ctx, guide); err != nil {
		return nil, err
	}

	response := guide.ConvertIntoResponse()
	return &response, nil
}
