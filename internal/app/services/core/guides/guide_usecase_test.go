package guides

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"
	"trekora-service/internal/app/models"
	"trekora-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) UpsertRange(ctx context.Context, availabilityRange *models.AvailabilityRange) error {
	args := m.Called(ctx, availabilityRange)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) FindOverlapping(ctx context.Context, guideID string, from, to time.Time) ([]models.AvailabilityRange, error) {
	args := m.Called(ctx, guideID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AvailabilityRange), args.Error(1)
}

func (m *MockAvailabilityRepository) DeleteByGuideID(ctx context.Context, guideID string) error {
	args := m.Called(ctx, guideID)
	return args.Error(0)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadFile(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, objectSize, contentType)
	return args.String(0), args.Error(1)
}

func TestGuideUsecase_Create(t *testing.T) {
	t.Run("new guide", func(t *testing.T) {
		guideRepo := new(MockGuideRepository)
		guideRepo.On("FindByEmail", mock.Anything, "sari@trekora.id").Return(nil, nil)
		guideRepo.On("CreateGuide", mock.Anything, mock.AnythingOfType("*models.Guide")).Return("new-id", nil)

		uc := NewGuideUsecase(guideRepo, nil, nil, nil, zap.NewNop())

		result, err := uc.Create(context.Background(), &requests.CreateGuide{
			Fullname: "Sari Wulandari",
			Email:    "sari@trekora.id",
			Region:   "Rinjani",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sari Wulandari", result.Fullname)
		assert.NotEmpty(t, result.ID)
		guideRepo.AssertExpectations(t)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		guideRepo := new(MockGuideRepository)
		guideRepo.On("FindByEmail", mock.Anything, "sari@trekora.id").Return(&models.Guide{ID: "existing"}, nil)

		uc := NewGuideUsecase(guideRepo, nil, nil, nil, zap.NewNop())

		_, err := uc.Create(context.Background(), &requests.CreateGuide{
			Fullname: "Sari Wulandari",
			Email:    "sari@trekora.id",
		})

		assert.Error(t, err)
		guideRepo.AssertNotCalled(t, "CreateGuide")
	})
}

func TestGuideUsecase_DeleteCascadesAvailability(t *testing.T) {
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, "guide-1").Return(&models.Guide{ID: "guide-1"}, nil)
	guideRepo.On("DeleteGuide", mock.Anything, "guide-1").Return(nil)

	availabilityRepo := new(MockAvailabilityRepository)
	availabilityRepo.On("DeleteByGuideID", mock.Anything, "guide-1").Return(nil)

	uc := NewGuideUsecase(guideRepo, availabilityRepo, nil, nil, zap.NewNop())

	err := uc.Delete(context.Background(), "guide-1")

	assert.NoError(t, err)
	guideRepo.AssertExpectations(t)
	availabilityRepo.AssertExpectations(t)
}

func TestGuideUsecase_DeleteUnknownGuide(t *testing.T) {
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	availabilityRepo := new(MockAvailabilityRepository)

	uc := NewGuideUsecase(guideRepo, availabilityRepo, nil, nil, zap.NewNop())

	err := uc.Delete(context.Background(), "missing")

	assert.Error(t, err)
	guideRepo.AssertNotCalled(t, "DeleteGuide")
	availabilityRepo.AssertNotCalled(t, "DeleteByGuideID")
}

func TestGuideUsecase_UploadPhoto(t *testing.T) {
	guideRepo := new(MockGuideRepository)
	guideRepo.On("FindByID", mock.Anything, "guide-1").Return(&models.Guide{ID: "guide-1", Fullname: "Sari Wulandari"}, nil)
	guideRepo.On("UpdateGuide", mock.Anything, mock.MatchedBy(func(guide *models.Guide) bool {
		return guide.PhotoURL == "https://storage.test/guide_photo.jpg"
	})).Return(nil)

	storageService := new(MockStorageService)
	storageService.On("UploadFile", mock.Anything, mock.AnythingOfType("string"), mock.Anything, int64(4), "image/jpeg").
		Return("https://storage.test/guide_photo.jpg", nil)

	uc := NewGuideUsecase(guideRepo, nil, storageService, nil, zap.NewNop())

	result, err := uc.UploadPhoto(context.Background(), "guide-1", ".jpg", "image/jpeg", bytes.NewReader([]byte("data")), 4)

	assert.NoError(t, err)
	assert.Equal(t, "https://storage.test/guide_photo.jpg", result.PhotoURL)
	guideRepo.AssertExpectations(t)
	storageService.AssertExpectations(t)
}
