package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskjar/application/serviceimpl"
	"taskjar/domain/dto"
	"taskjar/domain/ledger"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// BulkCreateTasks imports a batch in one call, the way the generation
// flow hands over its accepted suggestions.
func (h *TaskHandler) BulkCreateTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.BulkCreateTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tasks, err := h.taskService.BulkCreateTasks(ctx, user.ID, &req)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *dto.TaskToTaskResponse(t))
	}
	return utils.CreatedResponse(c, out)
}

func (h *TaskHandler) GetUserTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var filterReq dto.TaskFilterRequest
	if err := c.QueryParser(&filterReq); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if err := utils.ValidateStruct(&filterReq); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	limit := filterReq.Limit
	if limit == 0 {
		limit, _ = strconv.Atoi(c.Query("limit", "100"))
	}

	filter := repositories.TaskFilter{
		Status: filterReq.Status,
		Date:   filterReq.Date,
		Offset: filterReq.Offset,
		Limit:  limit,
	}

	tasks, total, err := h.taskService.GetUserTasks(ctx, user.ID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *dto.TaskToTaskResponse(t))
	}
	return utils.PaginatedSuccessResponse(c, out, total, filter.Offset, filter.Limit)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrTaskLocked) {
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		if errors.Is(err, serviceimpl.ErrTaskLocked) {
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.NotFoundResponse(c, "Task not found")
	}

	return utils.NoContentResponse(c)
}

// CompleteTask credits the task's XP to the active jar. The response
// carries the whole ledger outcome so the client animates fills and
// seals from one payload.
func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	resp, err := h.taskService.CompleteTask(ctx, user.ID, taskID)
	if err != nil {
		if errors.Is(err, ledger.ErrTaskAlreadyCompleted) {
			return utils.ConflictResponse(c, "Task is already completed")
		}
		logger.WarnContext(ctx, "Completion failed", "task_id", taskID, "user_id", user.ID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, resp)
}
