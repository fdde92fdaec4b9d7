package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	GenerateJWT(user *models.User) (string, error)
	ValidateJWT(token string) (*models.User, error)
}
