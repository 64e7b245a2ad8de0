package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// ClientHandler manages client contact records.
type ClientHandler struct {
	service  ports.ClientService
	recorder activityRecorder
}

func NewClientHandler(service ports.ClientService, recorder activityRecorder) *ClientHandler {
	return &ClientHandler{service: service, recorder: recorder}
}

type createClientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

type updateClientRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Phone    *string `json:"phone"`
}

// Create registers a client contact. Supplying a password provisions portal
// access at the same time.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
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

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "client.created", "client", client.ID)
	return c.JSON(http.StatusCreated, client)
}

// Get returns one client. Portal callers can only read their own record.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), access, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// List returns clients. Portal callers see only their own record.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), access)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Update partially updates a client record.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string               true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to update"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
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

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Company:  req.Company,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	recordActivity(h.recorder, access, "client.updated", "client", client.ID)
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client. Rejected while the client still owns projects.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     SessionCookie
// @Param        id   path  string  true  "Client id"
// @Success      204  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	access, err := ctxAccess(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	recordActivity(h.recorder, access, "client.deleted", "client", id)
	return c.NoContent(http.StatusNoContent)
}
