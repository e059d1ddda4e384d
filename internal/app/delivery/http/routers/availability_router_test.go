package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/delivery/http/middlewares"
	"trekora-service/internal/app/services/core/availability"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/dto/requests"
	"trekora-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GetCalendar(ctx context.Context, guideID string, request *requests.GetAvailability) (*responses.AvailabilityCalendar, error) {
	args := m.Called(ctx, guideID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AvailabilityCalendar), args.Error(1)
}

func (m *MockAvailabilityUsecase) SetAvailability(ctx context.Context, guideID string, request *requests.SetAvailability) (*responses.SetAvailability, error) {
	args := m.Called(ctx, guideID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SetAvailability), args.Error(1)
}

func TestAvailabilityRouter_GetCalendar(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
	}

	mockUsecase := new(MockAvailabilityUsecase)
	availabilityController := availability.NewAvailabilityController(logger, mockUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachAvailabilityRoutes(router, middlewareInstance, availabilityController)

	t.Run("valid window", func(t *testing.T) {
		mockUsecase.On("GetCalendar", mock.Anything, "guide-1", mock.AnythingOfType("*requests.GetAvailability")).Return(&responses.AvailabilityCalendar{
			GuideID: "guide-1",
			From:    "2024-01-04",
			To:      "2024-01-05",
			Calendar: []responses.CalendarDay{
				{Date: "2024-01-04", Status: constvars.AvailabilityStatusNotAvailable},
				{Date: "2024-01-05", Status: constvars.AvailabilityStatusAvailable},
			},
		}, nil)

		req := httptest.NewRequest("GET", "/guide-1/availability?from=2024-01-04&to=2024-01-05", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("missing query params rejected before usecase", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guide-1/availability", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed day key rejected before usecase", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/guide-1/availability?from=04-01-2024&to=2024-01-05", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAvailabilityRouter_SetAvailabilityRequiresSession(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
	}

	mockUsecase := new(MockAvailabilityUsecase)
	availabilityController := availability.NewAvailabilityController(logger, mockUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachAvailabilityRoutes(router, middlewareInstance, availabilityController)

	requestBody := requests.SetAvailability{
		Date:   "2024-01-05",
		Status: constvars.AvailabilityStatusAvailable,
	}
	jsonBody, _ := json.Marshal(requestBody)

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/guide-1/availability", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "SetAvailability")
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/guide-1/availability", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "SetAvailability")
	})
}
