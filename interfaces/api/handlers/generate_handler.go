package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskjar/domain/dto"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/utils"
)

type GenerateHandler struct {
	generationService services.GenerationService
}

func NewGenerateHandler(generationService services.GenerationService) *GenerateHandler {
	return &GenerateHandler{
		generationService: generationService,
	}
}

func (h *GenerateHandler) GenerateTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.GenerateTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.generationService.GenerateTasks(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate tasks", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, resp)
}

func (h *GenerateHandler) GenerateWeekly(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.GenerateWeeklyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.generationService.GenerateWeekly(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate weekly plan", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, resp)
}

func (h *GenerateHandler) GetWeeklyHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	dumps, err := h.generationService.WeeklyHistory(ctx, user.ID, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list weekly history", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.WeeklyDumpResponse, 0, len(dumps))
	for _, d := range dumps {
		out = append(out, *dto.WeeklyDumpToResponse(d))
	}
	return utils.SuccessResponse(c, out)
}
