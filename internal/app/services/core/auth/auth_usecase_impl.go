package auth

import (
	"context"
	"fmt"
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

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existingByEmail, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", request.Email))
	}

	existingByUsername, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingByUsername != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s", request.Username))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     request.Email,
		Username:  request.Username,
		Password:  hashedPassword,
		Fullname:  request.Fullname,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	response := user.ConvertIntoProfileResponse()
	return &response, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("username %s", request.Username))
	}

	sessionID := utils.GenerateSessionID()
	sessionData := models.SessionData{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
	}

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionKey, sessionData, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}
