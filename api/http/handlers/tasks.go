package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ricardossantis/nestTasksManager/api/http/presenter"
	"github.com/ricardossantis/nestTasksManager/pkg/task"
)

type TaskHandler struct {
	uc task.UseCase
}

func NewTaskHandler(uc task.UseCase) *TaskHandler { return &TaskHandler{uc: uc} }

type taskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toTaskResponse(t task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func ownerID(c *fiber.Ctx) (uuid.UUID, bool) {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create stores a new task for the authenticated user. A status field
// in the payload is ignored; new tasks are always OPEN.
// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   input body createTaskRequest true "task payload"
// @Security BearerAuth
// @Success 201 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	uid, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot resolve user")
	}
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	t, err := h.uc.Create(c.Context(), uid, req.Title, req.Description)
	if err != nil {
		return taskError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toTaskResponse(t))
}

// List returns the caller's tasks, optionally filtered by status and a
// case-insensitive search over title and description.
// @Summary List tasks
// @Tags    tasks
// @Produce json
// @Param   status query string false "filter by status (OPEN, IN_PROGRESS, DONE)"
// @Param   search query string false "substring match on title or description"
// @Param   limit  query int    false "page size"
// @Param   offset query int    false "page offset"
// @Security BearerAuth
// @Success 200 {array} taskResponse
// @Router  /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	uid, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot resolve user")
	}
	var f task.Filter
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		status, ok := task.ParseStatus(v)
		if !ok {
			return presenter.Error(c, http.StatusBadRequest, "unknown status value")
		}
		f.Status = &status
	}
	f.Search = c.Query("search")
	limit, offset := parseLimitOffset(c, 50)

	tasks, err := h.uc.List(c.Context(), uid, f, limit, offset)
	if err != nil {
		return taskError(c, err)
	}
	res := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, toTaskResponse(t))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID returns one of the caller's tasks. Tasks owned by other
// users answer 404, same as nonexistent ids.
// @Summary Get task by ID
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	uid, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	t, err := h.uc.GetByID(c.Context(), uid, id)
	if err != nil {
		return taskError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a task to the requested status. Any transition is
// allowed.
// @Summary Update task status
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Param   input body updateStatusRequest true "new status"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	uid, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	status, ok := task.ParseStatus(req.Status)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "unknown status value")
	}
	t, err := h.uc.UpdateStatus(c.Context(), uid, id, status)
	if err != nil {
		return taskError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

// Delete removes one of the caller's tasks.
// @Summary Delete task
// @Tags    tasks
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	uid, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "cannot resolve user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	if err := h.uc.Delete(c.Context(), uid, id); err != nil {
		return taskError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func taskError(c *fiber.Ctx, err error) error {
	switch err.(type) {
	case task.ErrValidation:
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if err == task.ErrNotFound {
		return presenter.Error(c, http.StatusNotFound, "task not found")
	}
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}
