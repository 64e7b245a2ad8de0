package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// TaskHandler manages project tasks.
type TaskHandler struct {
	service  ports.TaskService
	recorder activityRecorder
}

func NewTaskHandler(service ports.TaskService, recorder activityRecorder) *TaskHandler {
	return &TaskHandler{service: service, recorder: recorder}
}

type createTaskRequest struct {
	ProjectID   string     `json:"project_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssigneeID  string     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	ProjectID   *string    `json:"project_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

// Create adds a task to a project.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	input := ports.CreateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	task, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "task.created", "task", task.ID)
	return c.JSON(http.StatusCreated, task)
}

// Get returns one task, subject to project ownership for portal callers.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// List returns tasks filtered by project, status or assignee.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     SessionCookie
// @Param        project_id   query    string  false  "Filter by project"
// @Param        status       query    string  false  "Filter by status"
// @Param        assignee_id  query    string  false  "Filter by assignee"
// @Success      200          {array}  domain.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), access, ports.ListTasksFilter{
		ProjectID:  c.QueryParam("project_id"),
		Status:     c.QueryParam("status"),
		AssigneeID: c.QueryParam("assignee_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Update partially updates a task.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateTaskInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "task.updated", "task", task.ID)
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Task id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "task.deleted", "task", id)
	return c.NoContent(http.StatusNoContent)
}
