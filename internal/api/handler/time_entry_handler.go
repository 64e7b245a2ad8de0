package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// TimeEntryHandler manages tracked work time.
type TimeEntryHandler struct {
	service  ports.TimeEntryService
	recorder activityRecorder
}

func NewTimeEntryHandler(service ports.TimeEntryService, recorder activityRecorder) *TimeEntryHandler {
	return &TimeEntryHandler{service: service, recorder: recorder}
}

type createTimeEntryRequest struct {
	ProjectID       string     `json:"project_id" validate:"required"`
	TaskID          string     `json:"task_id"`
	Description     string     `json:"description" validate:"required"`
	StartedAt       *time.Time `json:"started_at"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,gt=0"`
	Billable        *bool      `json:"billable"`
}

type updateTimeEntryRequest struct {
	Description     *string    `json:"description"`
	StartedAt       *time.Time `json:"started_at"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	Billable        *bool      `json:"billable"`
}

// Create logs time against a project. The owning user is always the caller.
//
// @Summary      Create a time entry
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createTimeEntryRequest  true  "Time entry details"
// @Success      201   {object}  domain.TimeEntry
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /time-entries [post]
func (h *TimeEntryHandler) Create(c echo.Context) error {
	var req createTimeEntryRequest
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

	input := ports.CreateTimeEntryInput{
		ProjectID:       req.ProjectID,
		TaskID:          req.TaskID,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Billable:        true,
	}
	if req.StartedAt != nil {
		input.StartedAt = *req.StartedAt
	}
	if req.Billable != nil {
		input.Billable = *req.Billable
	}

	entry, err := h.service.Create(c.Request().Context(), access, input)
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "time_entry.created", "time_entry", entry.ID)
	return c.JSON(http.StatusCreated, entry)
}

// Get returns one time entry, subject to the caller's visibility rules.
//
// @Summary      Get a time entry
// @Tags         time-entries
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Time entry id"
// @Success      200  {object}  domain.TimeEntry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /time-entries/{id} [get]
func (h *TimeEntryHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// List returns time entries. Admins see everything, editors their own
// entries, portal clients the billable entries on their projects.
//
// @Summary      List time entries
// @Tags         time-entries
// @Produce      json
// @Security     SessionCookie
// @Param        project_id  query    string  false  "Filter by project"
// @Param        user_id     query    string  false  "Filter by user (admin only)"
// @Success      200         {array}  domain.TimeEntry
// @Router       /time-entries [get]
func (h *TimeEntryHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	entries, err := h.service.List(c.Request().Context(), access, ports.ListTimeEntriesFilter{
		ProjectID: c.QueryParam("project_id"),
		UserID:    c.QueryParam("user_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Update partially updates a time entry. Only the owner or an admin may edit.
//
// @Summary      Update a time entry
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string                  true  "Time entry id"
// @Param        body  body      updateTimeEntryRequest  true  "Fields to update"
// @Success      200   {object}  domain.TimeEntry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /time-entries/{id} [put]
func (h *TimeEntryHandler) Update(c echo.Context) error {
	var req updateTimeEntryRequest
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

	entry, err := h.service.Update(c.Request().Context(), access, c.Param("id"), ports.UpdateTimeEntryInput{
		Description:     req.Description,
		StartedAt:       req.StartedAt,
		DurationMinutes: req.DurationMinutes,
		Billable:        req.Billable,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "time_entry.updated", "time_entry", entry.ID)
	return c.JSON(http.StatusOK, entry)
}

// Delete removes a time entry. Only the owner or an admin may delete.
//
// @Summary      Delete a time entry
// @Tags         time-entries
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Time entry id"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /time-entries/{id} [delete]
func (h *TimeEntryHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), access, id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "time_entry.deleted", "time_entry", id)
	return c.NoContent(http.StatusNoContent)
}
