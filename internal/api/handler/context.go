package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creomotion/agency-api/internal/core/ports"
)

// ctxAccess extracts the session claims injected by the Session middleware
// and performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran; userId and email must accompany it or the token
// is structurally valid but operationally unusable.
func ctxAccess(c echo.Context) (ports.Access, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("userId").(string)
	email, _ := c.Get("email").(string)

	if role == "" || userID == "" || email == "" {
		return ports.Access{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Access{UserID: userID, Email: email, Role: role}, nil
}

// activityRecorder is the write side of the audit feed. Handlers enqueue one
// record after each successful mutation; recording happens off the request
// path.
type activityRecorder interface {
	Enqueue(input ports.ActivityInput)
}

// recordActivity enqueues an audit record for the given actor and mutation.
func recordActivity(rec activityRecorder, access ports.Access, action, entity, entityID string) {
	rec.Enqueue(ports.ActivityInput{
		ActorID:    access.UserID,
		ActorEmail: access.Email,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	})
}
