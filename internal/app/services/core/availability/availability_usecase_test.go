package availability

import (
	"context"
	"fmt"
	"testing"
	"time"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"
	"trekora-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// fakeAvailabilityRepository keeps ranges in memory, keyed the same way the
// mongo upsert is keyed: (guideId, startDate, endDate).
type fakeAvailabilityRepository struct {
	ranges map[string]models.AvailabilityRange
}

func newFakeAvailabilityRepository() *fakeAvailabilityRepository {
	return &fakeAvailabilityRepository{ranges: make(map[string]models.AvailabilityRange)}
}

func (f *fakeAvailabilityRepository) key(guideID string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", guideID, utils.FormatDayKey(start), utils.FormatDayKey(end))
}

func (f *fakeAvailabilityRepository) UpsertRange(ctx context.Context, availabilityRange *models.AvailabilityRange) error {
	key := f.key(availabilityRange.GuideID, availabilityRange.StartDate, availabilityRange.EndDate)
	if existing, found := f.ranges[key]; found {
		existing.Status = availabilityRange.Status
		existing.Note = availabilityRange.Note
		existing.UpdatedAt = availabilityRange.UpdatedAt
		f.ranges[key] = existing
		return nil
	}
	f.ranges[key] = *availabilityRange
	return nil
}

func (f *fakeAvailabilityRepository) FindOverlapping(ctx context.Context, guideID string, from, to time.Time) ([]models.AvailabilityRange, error) {
	var result []models.AvailabilityRange
	for _, availabilityRange := range f.ranges {
		if availabilityRange.GuideID != guideID {
			continue
		}
		if availabilityRange.StartDate.After(to) || availabilityRange.EndDate.Before(from) {
			continue
		}
		result = append(result, availabilityRange)
	}
	return result, nil
}

func (f *fakeAvailabilityRepository) DeleteByGuideID(ctx context.Context, guideID string) error {
	for key, availabilityRange := range f.ranges {
		if availabilityRange.GuideID == guideID {
			delete(f.ranges, key)
		}
	}
	return nil
}

func (f *fakeAvailabilityRepository) seed(guideID, start, end, status string, updatedAt time.Time) {
	startDay, _ := utils.ParseDayKey(start)
	endDay, _ := utils.ParseDayKey(end)
	availabilityRange := models.AvailabilityRange{
		ID:        fmt.Sprintf("seed-%s-%s", start, end),
		GuideID:   guideID,
		StartDate: startDay,
		EndDate:   endDay,
		Status:    status,
		TimeModel: models.TimeModel{CreatedAt: updatedAt, UpdatedAt: updatedAt},
	}
	f.ranges[f.key(guideID, startDay, endDay)] = availabilityRange
}

type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) CreateGuide(ctx context.Context, guide *models.Guide) (string, error) {
	args := m.Called(ctx, guide)
	return args.String(0), args.Error(1)
}

func (m *MockGuideRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Guide, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Guide), args.Error(1)
}

func (m *MockGuideRepository) FindByID(ctx context.Context, guideID string) (*models.Guide, error) {
	args := m.Called(ctx, guideID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *MockGuideRepository) FindByEmail(ctx context.Context, email string) (*models.Guide, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guide), args.Error(1)
}

func (m *MockGuideRepository) UpdateGuide(ctx context.Context, guide *models.Guide) error {
	args := m.Called(ctx, guide)
	return args.Error(0)
}

func (m *MockGuideRepository) DeleteGuide(ctx context.Context, guideID string) error {
	args := m.Called(ctx, guideID)
	return args.Error(0)
}

func (m *MockGuideRepository) CountGuides(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockLockService struct {
	mock.Mock
}

func (m *MockLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

const testGuideID = "b6c7c5a0-0f0e-4f52-9e35-1d6a64f5b6da"

func newTestUsecase(repo contracts.AvailabilityRepository, guideRepo contracts.GuideRepository, lockService contracts.LockerService, internalConfig *config.InternalConfig) contracts.AvailabilityUsecase {
	return NewAvailabilityUsecase(repo, guideRepo, lockService, nil, internalConfig, zap.NewNop())
}

func defaultTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Availability: config.Availability{
			DefaultStatus: constvars.AvailabilityStatusNotAvailable,
		},
	}
}

func knownGuide() *models.Guide {
	return &models.Guide{ID: testGuideID, Fullname: "Sari Wulandari"}
}

func TestSetAvailability_SingleDate(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	result, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
		Date:   "2024-01-05",
		Status: constvars.AvailabilityStatusAvailable,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Affected)
	assert.Equal(t, []responses.AvailabilitySpan{{StartDate: "2024-01-05", EndDate: "2024-01-05"}}, result.Spans)
	assert.Len(t, repo.ranges, 1)
}

func TestSetAvailability_Idempotent(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	first := &requests.SetAvailability{
		StartDate: "2024-01-05",
		EndDate:   "2024-01-10",
		Status:    constvars.AvailabilityStatusAvailable,
	}
	_, err := uc.SetAvailability(context.Background(), testGuideID, first)
	assert.NoError(t, err)

	// Same span again with a different status must overwrite, not duplicate.
	second := &requests.SetAvailability{
		StartDate: "2024-01-05",
		EndDate:   "2024-01-10",
		Status:    constvars.AvailabilityStatusNotAvailable,
		Note:      "family trip",
	}
	_, err = uc.SetAvailability(context.Background(), testGuideID, second)
	assert.NoError(t, err)

	assert.Len(t, repo.ranges, 1)
	for _, stored := range repo.ranges {
		assert.Equal(t, constvars.AvailabilityStatusNotAvailable, stored.Status)
		assert.Equal(t, "family trip", stored.Note)
	}
}

func TestSetAvailability_DiscreteDates(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	result, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
		Dates:  []string{"2024-03-01", "2024-03-05", "2024-03-09"},
		Status: constvars.AvailabilityStatusAvailable,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Affected)
	assert.Len(t, repo.ranges, 3)

	// Each date becomes its own single-day range; days in between stay on
	// the default status.
	calendar, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
		From: "2024-03-01",
		To:   "2024-03-09",
	})
	assert.NoError(t, err)

	statusByDate := map[string]string{}
	for _, day := range calendar.Calendar {
		statusByDate[day.Date] = day.Status
	}
	assert.Equal(t, constvars.AvailabilityStatusAvailable, statusByDate["2024-03-01"])
	assert.Equal(t, constvars.AvailabilityStatusAvailable, statusByDate["2024-03-05"])
	assert.Equal(t, constvars.AvailabilityStatusAvailable, statusByDate["2024-03-09"])
	assert.Equal(t, constvars.AvailabilityStatusNotAvailable, statusByDate["2024-03-02"])
	assert.Equal(t, constvars.AvailabilityStatusNotAvailable, statusByDate["2024-03-08"])
}

func TestSetAvailability_InvalidInputWritesNothing(t *testing.T) {
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	t.Run("inverted span", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-05",
			Status:    constvars.AvailabilityStatusAvailable,
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
	})

	t.Run("one malformed date aborts the whole list", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Dates:  []string{"2024-03-01", "2024-02-30", "2024-03-09"},
			Status: constvars.AvailabilityStatusAvailable,
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
	})

	t.Run("no input shape", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Status: constvars.AvailabilityStatusAvailable,
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
	})

	t.Run("two input shapes", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Date:   "2024-01-05",
			Dates:  []string{"2024-01-06"},
			Status: constvars.AvailabilityStatusAvailable,
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Date:   "2024-01-05",
			Status: "busy",
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
	})
}

func TestSetAvailability_UnknownGuide(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, "missing-guide").Return(nil, nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	_, err := uc.SetAvailability(context.Background(), "missing-guide", &requests.SetAvailability{
		Date:   "2024-01-05",
		Status: constvars.AvailabilityStatusAvailable,
	})

	assert.Error(t, err)
	assert.Empty(t, repo.ranges)
}

func TestSetAvailability_WriteLock(t *testing.T) {
	internalConfig := defaultTestConfig()
	internalConfig.Availability.SerializeWrites = true
	internalConfig.Availability.WriteLockTTLInSecond = 5

	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	t.Run("lock held by someone else", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		lockService := new(MockLockService)
		lockService.On("TryLock", mock.Anything, fmt.Sprintf(constvars.RedisAvailabilityLockKeyFormat, testGuideID), 5*time.Second).Return(false, "", nil)

		uc := newTestUsecase(repo, guideRepo, lockService, internalConfig)

		_, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Date:   "2024-01-05",
			Status: constvars.AvailabilityStatusAvailable,
		})

		assert.Error(t, err)
		assert.Empty(t, repo.ranges)
		lockService.AssertExpectations(t)
	})

	t.Run("lock acquired and released", func(t *testing.T) {
		repo := newFakeAvailabilityRepository()
		lockService := new(MockLockService)
		lockKey := fmt.Sprintf(constvars.RedisAvailabilityLockKeyFormat, testGuideID)
		lockService.On("TryLock", mock.Anything, lockKey, 5*time.Second).Return(true, "lock-value", nil)
		lockService.On("Unlock", mock.Anything, lockKey, "lock-value").Return(nil)

		uc := newTestUsecase(repo, guideRepo, lockService, internalConfig)

		result, err := uc.SetAvailability(context.Background(), testGuideID, &requests.SetAvailability{
			Date:   "2024-01-05",
			Status: constvars.AvailabilityStatusAvailable,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Affected)
		lockService.AssertExpectations(t)
	})
}

func TestGetCalendar_CoversWholeWindow(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	repo.seed(testGuideID, "2024-01-05", "2024-01-10", constvars.AvailabilityStatusAvailable, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	calendar, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
		From: "2024-01-04",
		To:   "2024-01-11",
	})

	assert.NoError(t, err)
	assert.Equal(t, testGuideID, calendar.GuideID)
	assert.Len(t, calendar.Calendar, 8)

	expected := []responses.CalendarDay{
		{Date: "2024-01-04", Status: constvars.AvailabilityStatusNotAvailable},
		{Date: "2024-01-05", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-06", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-07", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-08", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-09", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-10", Status: constvars.AvailabilityStatusAvailable},
		{Date: "2024-01-11", Status: constvars.AvailabilityStatusNotAvailable},
	}
	assert.Equal(t, expected, calendar.Calendar)
}

func TestGetCalendar_MostRecentUpdateWins(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	repo.seed(testGuideID, "2024-02-01", "2024-02-10", constvars.AvailabilityStatusAvailable, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	repo.seed(testGuideID, "2024-02-05", "2024-02-07", constvars.AvailabilityStatusNotAvailable, time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))

	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	calendar, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
		From: "2024-02-01",
		To:   "2024-02-10",
	})

	assert.NoError(t, err)

	statusByDate := map[string]string{}
	for _, day := range calendar.Calendar {
		statusByDate[day.Date] = day.Status
	}
	assert.Equal(t, constvars.AvailabilityStatusAvailable, statusByDate["2024-02-04"])
	assert.Equal(t, constvars.AvailabilityStatusNotAvailable, statusByDate["2024-02-05"])
	assert.Equal(t, constvars.AvailabilityStatusNotAvailable, statusByDate["2024-02-06"])
	assert.Equal(t, constvars.AvailabilityStatusNotAvailable, statusByDate["2024-02-07"])
	assert.Equal(t, constvars.AvailabilityStatusAvailable, statusByDate["2024-02-08"])
}

func TestGetCalendar_SingleDayWindow(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	repo.seed(testGuideID, "2024-04-10", "2024-04-10", constvars.AvailabilityStatusAvailable, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	calendar, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
		From: "2024-04-10",
		To:   "2024-04-10",
	})

	assert.NoError(t, err)
	assert.Len(t, calendar.Calendar, 1)
	assert.Equal(t, constvars.AvailabilityStatusAvailable, calendar.Calendar[0].Status)
}

func TestGetCalendar_ConfigurableDefaultStatus(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	internalConfig := &config.InternalConfig{
		Availability: config.Availability{
			DefaultStatus: constvars.AvailabilityStatusAvailable,
		},
	}
	uc := newTestUsecase(repo, guideRepo, nil, internalConfig)

	calendar, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
		From: "2024-05-01",
		To:   "2024-05-03",
	})

	assert.NoError(t, err)
	for _, day := range calendar.Calendar {
		assert.Equal(t, constvars.AvailabilityStatusAvailable, day.Status)
	}
}

func TestGetCalendar_InvalidWindow(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, testGuideID).Return(knownGuide(), nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	t.Run("from after to", func(t *testing.T) {
		_, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
			From: "2024-01-10",
			To:   "2024-01-05",
		})
		assert.Error(t, err)
	})

	t.Run("malformed from", func(t *testing.T) {
		_, err := uc.GetCalendar(context.Background(), testGuideID, &requests.GetAvailability{
			From: "10-01-2024",
			To:   "2024-01-15",
		})
		assert.Error(t, err)
	})
}

func TestGetCalendar_UnknownGuide(t *testing.T) {
	repo := newFakeAvailabilityRepository()
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, "missing-guide").Return(nil, nil)

	uc := newTestUsecase(repo, guideRepo, nil, defaultTestConfig())

	_, err := uc.GetCalendar(context.Background(), "missing-guide", &requests.GetAvailability{
		From: "2024-01-01",
		To:   "2024-01-05",
	})

	assert.Error(t, err)
}
