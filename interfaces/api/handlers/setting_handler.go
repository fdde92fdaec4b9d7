package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskjar/application/serviceimpl"
	"taskjar/domain/dto"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/utils"
)

type SettingHandler struct {
	settingService services.SettingService
}

func NewSettingHandler(settingService services.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	setting, err := h.settingService.GetSettings(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load settings", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.SettingToSettingsResponse(setting))
}

func (h *SettingHandler) UpdateSettings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	setting, err := h.settingService.UpdateSettings(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update settings", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.SettingToSettingsResponse(setting))
}

func (h *SettingHandler) SetParentLock(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.SetParentLockRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.settingService.SetParentLock(ctx, user.ID, &req); err != nil {
		logger.ErrorContext(ctx, "Failed to set parent lock", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func (h *SettingHandler) DisableParentLock(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.SetParentLockRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.settingService.DisableParentLock(ctx, user.ID, req.Secret); err != nil {
		if errors.Is(err, serviceimpl.ErrParentLockInvalid) || errors.Is(err, serviceimpl.ErrParentLockRequired) {
			return utils.ForbiddenResponse(c, "Parent lock secret is invalid")
		}
		logger.ErrorContext(ctx, "Failed to disable parent lock", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func (h *SettingHandler) ClearData(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.ClearDataRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.settingService.ClearData(ctx, user.ID, &req); err != nil {
		switch {
		case errors.Is(err, serviceimpl.ErrParentLockRequired):
			return utils.ForbiddenResponse(c, "Parent lock secret is required")
		case errors.Is(err, serviceimpl.ErrParentLockInvalid):
			return utils.ForbiddenResponse(c, "Parent lock secret is invalid")
		}
		logger.ErrorContext(ctx, "Failed to clear data", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User data cleared", "user_id", user.ID)
	return utils.NoContentResponse(c)
}
