package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/api/metrics"
	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// DeliverableHandler manages reviewable project artifacts.
type DeliverableHandler struct {
	service  ports.DeliverableService
	recorder activityRecorder
}

func NewDeliverableHandler(service ports.DeliverableService, recorder activityRecorder) *DeliverableHandler {
	return &DeliverableHandler{service: service, recorder: recorder}
}

type createDeliverableRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	FileURL   string `json:"file_url" validate:"omitempty,url"`
	Notes     string `json:"notes"`
}

type updateDeliverableRequest struct {
	Name    *string `json:"name"`
	Status  *string `json:"status" validate:"omitempty,oneof=DRAFT IN_REVIEW APPROVED REJECTED"`
	FileURL *string `json:"file_url" validate:"omitempty,url"`
	Notes   *string `json:"notes"`
}

// Create uploads a deliverable. Re-using a name within the same project
// allocates the next version number.
//
// @Summary      Create a deliverable
// @Tags         deliverables
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createDeliverableRequest  true  "Deliverable details"
// @Success      201   {object}  domain.Deliverable
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /deliverables [post]
func (h *DeliverableHandler) Create(c echo.Context) error {
	var req createDeliverableRequest
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

	deliverable, err := h.service.Create(c.Request().Context(), ports.CreateDeliverableInput{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		FileURL:   req.FileURL,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "deliverable.created", "deliverable", deliverable.ID)
	return c.JSON(http.StatusCreated, deliverable)
}

// Get returns one deliverable, subject to project ownership for portal callers.
//
// @Summary      Get a deliverable
// @Tags         deliverables
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Deliverable id"
// @Success      200  {object}  domain.Deliverable
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /deliverables/{id} [get]
func (h *DeliverableHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	deliverable, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliverable)
}

// List returns deliverables filtered by project, status or name.
//
// @Summary      List deliverables
// @Tags         deliverables
// @Produce      json
// @Security     SessionCookie
// @Param        project_id  query    string  false  "Filter by project"
// @Param        status      query    string  false  "Filter by status"
// @Param        name        query    string  false  "Filter by name (all versions)"
// @Success      200         {array}  domain.Deliverable
// @Router       /deliverables [get]
func (h *DeliverableHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	deliverables, err := h.service.List(c.Request().Context(), access, ports.ListDeliverablesFilter{
		ProjectID: c.QueryParam("project_id"),
		Status:    c.QueryParam("status"),
		Name:      c.QueryParam("name"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deliverables)
}

// Update updates a deliverable. Staff can edit fields and move the review
// state; portal clients can only apply an APPROVED or REJECTED decision on
// their own projects' deliverables.
//
// @Summary      Update a deliverable
// @Tags         deliverables
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string                    true  "Deliverable id"
// @Param        body  body      updateDeliverableRequest  true  "Fields to update"
// @Success      200   {object}  domain.Deliverable
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /deliverables/{id} [put]
func (h *DeliverableHandler) Update(c echo.Context) error {
	var req updateDeliverableRequest
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

	deliverable, err := h.service.Update(c.Request().Context(), access, c.Param("id"), ports.UpdateDeliverableInput{
		Name:    req.Name,
		Status:  req.Status,
		FileURL: req.FileURL,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}

	if access.IsClient() && req.Status != nil {
		if s := domain.DeliverableStatus(*req.Status); s.IsReviewDecision() {
			metrics.DeliverableReviewsTotal.WithLabelValues(*req.Status).Inc()
		}
	}

	recordActivity(h.recorder, access, "deliverable.updated", "deliverable", deliverable.ID)
	return c.JSON(http.StatusOK, deliverable)
}

// Delete removes a deliverable.
//
// @Summary      Delete a deliverable
// @Tags         deliverables
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Deliverable id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /deliverables/{id} [delete]
func (h *DeliverableHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "deliverable.deleted", "deliverable", id)
	return c.NoContent(http.StatusNoContent)
}
