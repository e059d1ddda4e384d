package contracts

import (
	"context"
	"time"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	// GetCalendar resolves one status per day for every day in the request
	// window, filling uncovered days with the configured default status.
	GetCalendar(ctx context.Context, guideID string, request *requests.GetAvailability) (*responses.AvailabilityCalendar, error)
	// SetAvailability turns a write request into one or more idempotent
	// range upserts keyed on (guideId, startDate, endDate).
	SetAvailability(ctx context.Context, guideID string, request *requests.SetAvailability) (*responses.SetAvailability, error)
}

type AvailabilityRepository interface {
	// UpsertRange inserts the range or, when one with the same
	// (guideId, startDate, endDate) key exists, overwrites its status,
	// note, and updatedAt in place.
	UpsertRange(ctx context.Context, availabilityRange *models.AvailabilityRange) error
	// FindOverlapping returns every range of the guide whose span intersects
	// [from, to], sorted by updatedAt descending.
	FindOverlapping(ctx context.Context, guideID string, from, to time.Time) ([]models.AvailabilityRange, error)
	DeleteByGuideID(ctx context.Context, guideID string) error
}
