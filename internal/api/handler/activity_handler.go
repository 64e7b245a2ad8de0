package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// ActivityHandler exposes the back-office audit feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent returns the most recent audit records, newest first.
//
// @Summary      Recent activity
// @Tags         activity
// @Produce      json
// @Security     SessionCookie
// @Param        limit  query    int  false  "Max records (default 50, cap 200)"
// @Success      200    {array}  domain.Activity
// @Router       /activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	activities, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}
