package availability

import (
	"context"
	"fmt"
	"sort"
	"time"
	"trekora-service/internal/app/config"
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

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	GuideRepository        contracts.GuideRepository
	LockService            contracts.LockerService
	EventPublisher         contracts.EventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	guideRepository contracts.GuideRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		GuideRepository:        guideRepository,
		LockService:            lockService,
		EventPublisher:         eventPublisher,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// daySpan is one normalized [start, end] pair produced from a write request,
// both at UTC day granularity, start <= end.
type daySpan struct {
	start time.Time
	end   time.Time
}

func (uc *availabilityUsecase) SetAvailability(ctx context.Context, guideID string, request *requests.SetAvailability) (*responses.SetAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.SetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	// Normalize every span before touching storage so a malformed entry
	// aborts the whole write with nothing committed.
	spans, err := buildSpans(request)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability error normalizing spans",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGuideIDKey, guideID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.InternalConfig.Availability.SerializeWrites {
		lockKey := fmt.Sprintf(constvars.RedisAvailabilityLockKeyFormat, guideID)
		lockTTL := time.Duration(uc.InternalConfig.Availability.WriteLockTTLInSecond) * time.Second
		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, exceptions.ErrGuideWriteLocked(fmt.Errorf("guide %s", guideID))
		}
		defer uc.LockService.Unlock(ctx, lockKey, lockValue)
	}

	now := time.Now().UTC()
	writtenSpans := make([]responses.AvailabilitySpan, 0, len(spans))
	for _, span := range spans {
		availabilityRange := &models.AvailabilityRange{
			ID:        uuid.NewString(),
			GuideID:   guideID,
			StartDate: span.start,
			EndDate:   span.end,
			Status:    request.Status,
			Note:      request.Note,
			TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		if err := uc.AvailabilityRepository.UpsertRange(ctx, availabilityRange); err != nil {
			uc.Log.Error("availabilityUsecase.SetAvailability error upserting range",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingGuideIDKey, guideID),
				zap.Error(err),
			)
			return nil, err
		}
		writtenSpans = append(writtenSpans, availabilityRange.ConvertIntoSpanResponse())
	}

	if uc.EventPublisher != nil {
		event := map[string]interface{}{
			"guideId": guideID,
			"status":  request.Status,
			"spans":   writtenSpans,
		}
		if err := uc.EventPublisher.Publish(ctx, constvars.EventAvailabilityUpdated, event); err != nil {
			uc.Log.Warn("availabilityUsecase.SetAvailability event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingGuideIDKey, guideID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("availabilityUsecase.SetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
		zap.Int(constvars.LoggingSpanCountKey, len(writtenSpans)),
	)
	return &responses.SetAvailability{
		Affected: len(writtenSpans),
		Spans:    writtenSpans,
	}, nil
}

func (uc *availabilityUsecase) GetCalendar(ctx context.Context, guideID string, request *requests.GetAvailability) (*responses.AvailabilityCalendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
		zap.String(constvars.LoggingFromKey, request.From),
		zap.String(constvars.LoggingToKey, request.To),
	)

	from, err := utils.ParseDayKey(request.From)
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDayKey(request.To)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("from %s is after to %s", request.From, request.To))
	}

	guide, err := uc.GuideRepository.FindByID(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, exceptions.ErrGuideNotExist(fmt.Errorf("guide %s", guideID))
	}

	ranges, err := uc.AvailabilityRepository.FindOverlapping(ctx, guideID, from, to)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetCalendar error fetching overlapping ranges",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGuideIDKey, guideID),
			zap.Error(err),
		)
		return nil, err
	}

	// Keep the recency ordering explicit instead of trusting storage
	// iteration order: most recently updated range first.
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].UpdatedAt.After(ranges[j].UpdatedAt)
	})

	days, err := utils.EnumerateDays(from, to)
	if err != nil {
		return nil, err
	}

	calendar := make([]responses.CalendarDay, 0, len(days))
	for _, day := range days {
		status := uc.InternalConfig.Availability.DefaultStatus
		for _, availabilityRange := range ranges {
			if availabilityRange.Covers(day) {
				status = availabilityRange.Status
				break
			}
		}
		calendar = append(calendar, responses.CalendarDay{
			Date:   utils.FormatDayKey(day),
			Status: status,
		})
	}

	uc.Log.Info("availabilityUsecase.GetCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGuideIDKey, guideID),
		zap.Int(constvars.LoggingRangeCountKey, len(ranges)),
		zap.Int(constvars.LoggingDayCountKey, len(calendar)),
	)
	return &responses.AvailabilityCalendar{
		GuideID:  guideID,
		From:     utils.FormatDayKey(from),
		To:       utils.FormatDayKey(to),
		Calendar: calendar,
	}, nil
}

// buildSpans translates the write request into normalized day spans. Exactly
// one input shape must be present; every date is normalized before any span
// is returned.
func buildSpans(request *requests.SetAvailability) ([]daySpan, error) {
	singleDay := request.Date != ""
	explicitSpan := request.StartDate != "" || request.EndDate != ""
	discreteList := len(request.Dates) > 0

	shapeCount := 0
	for _, present := range []bool{singleDay, explicitSpan, discreteList} {
		if present {
			shapeCount++
		}
	}
	if shapeCount != 1 {
		return nil, exceptions.ErrAvailabilityInputShape(fmt.Errorf("%d input shapes supplied", shapeCount))
	}

	switch {
	case singleDay:
		day, err := utils.ParseDayKey(request.Date)
		if err != nil {
			return nil, err
		}
		return []daySpan{{start: day, end: day}}, nil

	case explicitSpan:
		if request.StartDate == "" || request.EndDate == "" {
			return nil, exceptions.ErrAvailabilityInputShape(fmt.Errorf("explicit span requires both startDate and endDate"))
		}
		start, err := utils.ParseDayKey(request.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseDayKey(request.EndDate)
		if err != nil {
			return nil, err
		}
		if start.After(end) {
			return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("startDate %s is after endDate %s", request.StartDate, request.EndDate))
		}
		return []daySpan{{start: start, end: end}}, nil

	default:
		spans := make([]daySpan, 0, len(request.Dates))
		for _, dayKey := range request.Dates {
			day, err := utils.ParseDayKey(dayKey)
			if err != nil {
				return nil, err
			}
			spans = append(spans, daySpan{start: day, end: day})
		}
		return spans, nil
	}
}
