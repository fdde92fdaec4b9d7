package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/utils"
)

type JarHandler struct {
	jarService services.JarService
}

func NewJarHandler(jarService services.JarService) *JarHandler {
	return &JarHandler{
		jarService: jarService,
	}
}

// GetActiveJar returns the open jar, creating the user's first one when
// they have none.
func (h *JarHandler) GetActiveJar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	jar, err := h.jarService.GetActiveJar(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load active jar", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.JarToJarResponse(jar))
}

func (h *JarHandler) ListJars(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	jars, total, err := h.jarService.ListJars(ctx, user.ID, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list jars", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.JarResponse, 0, len(jars))
	for _, jar := range jars {
		out = append(out, *dto.JarToJarResponse(jar))
	}
	return utils.PaginatedSuccessResponse(c, out, total, offset, limit)
}

func (h *JarHandler) GetJar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	jarID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid jar ID")
	}

	jar, err := h.jarService.GetJar(ctx, user.ID, jarID)
	if err != nil {
		return utils.NotFoundResponse(c, "Jar not found")
	}

	return utils.SuccessResponse(c, dto.JarToJarResponse(jar))
}
