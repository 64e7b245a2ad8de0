package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// ProjectHandler manages projects.
type ProjectHandler struct {
	service  ports.ProjectService
	recorder activityRecorder
}

func NewProjectHandler(service ports.ProjectService, recorder activityRecorder) *ProjectHandler {
	return &ProjectHandler{service: service, recorder: recorder}
}

type createProjectRequest struct {
	ClientID    string     `json:"client_id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE ON_HOLD COMPLETED ARCHIVED"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	BudgetCents int64      `json:"budget_cents" validate:"omitempty,min=0"`
}

type updateProjectRequest struct {
	ClientID    *string    `json:"client_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE ON_HOLD COMPLETED ARCHIVED"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	BudgetCents *int64     `json:"budget_cents" validate:"omitempty,min=0"`
}

// Create opens a project for a client.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
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

	input := ports.CreateProjectInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		BudgetCents: req.BudgetCents,
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		input.DueDate = *req.DueDate
	}

	project, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "project.created", "project", project.ID)
	return c.JSON(http.StatusCreated, project)
}

// Get returns one project. Portal callers can only read projects they own.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List returns projects, optionally filtered by client and status. Portal
// callers are always restricted to their own projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     SessionCookie
// @Param        client_id  query     string  false  "Filter by owning client"
// @Param        status     query     string  false  "Filter by status"
// @Success      200        {array}   domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), access, ports.ListProjectsFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Update partially updates a project.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
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

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		BudgetCents: req.BudgetCents,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "project.updated", "project", project.ID)
	return c.JSON(http.StatusOK, project)
}

// Delete removes a project. Rejected while tasks or deliverables reference it.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Project id"
// @Success      204  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "project.deleted", "project", id)
	return c.NoContent(http.StatusNoContent)
}
