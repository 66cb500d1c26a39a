package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gotix-api/core/cache"
	"gotix-api/core/config"
	"gotix-api/core/constants"
	coreEntity "gotix-api/core/entity"
	"gotix-api/core/errors"
	"gotix-api/core/logger"
	"gotix-api/core/utils"
	"gotix-api/modules/auth/dto"
	"gotix-api/modules/auth/entity"
	"gotix-api/modules/auth/repository"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, userID uuid.UUID) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	ValidateSession(ctx context.Context, userID uuid.UUID) *errors.AppError
}

type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.UserRepositoryInterface, cache cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid email address", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "password must be at least 8 characters", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name is required", nil)
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check email", err)
	}
	if exists {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email is already registered", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	logger.Info("AuthService:Register:Success", "user_id", user.ID, "email", email)
	return toUserResponse(user), nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	ttl := time.Duration(config.Get().JWT.ExpireMinutes) * time.Minute
	token, err := utils.GenerateToken(user.ID, user.Email, ttl)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to issue token", err)
	}

	if err := s.cache.Set(ctx, sessionKey(user.ID), "active", ttl); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store session", err)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID)
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.cache.Del(ctx, sessionKey(userID)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke session", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return toUserResponse(user), nil
}

// ValidateSession rejects tokens whose session was revoked by logout.
func (s *AuthService) ValidateSession(ctx context.Context, userID uuid.UUID) *errors.AppError {
	_, err := s.cache.Get(ctx, sessionKey(userID))
	if err == cache.ErrCacheMiss {
		return errors.NewAppError(errors.ErrUnauthorized, "session expired or revoked", nil)
	}
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to check session", err)
	}
	return nil
}

func sessionKey(userID uuid.UUID) string {
	return constants.SessionKeyPrefix + userID.String()
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
