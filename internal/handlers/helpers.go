package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/handykonnect/handykonnect-api/internal/actor"
	"github.com/handykonnect/handykonnect-api/internal/httperr"
	"github.com/handykonnect/handykonnect-api/internal/middleware"
)

func actorFrom(c *gin.Context) actor.Actor {
	id := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := c.Get(middleware.ContextUserRole)
	roleStr, _ := role.(string)
	return actor.Actor{ID: id, Role: roleStr}
}

// writeBusinessError maps domain rejection codes onto HTTP statuses. Any
// non-business error is a persistence or infrastructure failure.
func writeBusinessError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, fallbackCode, fallbackMessage)
		return
	}

	switch {
	case code == "admin_access_required" || code == "conversation_forbidden":
		httperr.Forbidden(c, code, "You do not have access to this resource.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Resource not found.")
	default:
		httperr.BadRequest(c, code, "The request could not be processed.")
	}
}
