package middleware

import (
	"errors"
	"net/http"

	"trainer-booking/internal/handler/httperr"
	"trainer-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	ctxActorKey = "actor"
)

var (
	errMissingActor = errors.New("missing actor headers")
	errInvalidActor = errors.New("malformed actor headers")
)

// RequireActor reads the caller identity asserted by the upstream gateway.
// The system role may omit the user id.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole := c.GetHeader(HeaderUserRole)
		rawID := c.GetHeader(HeaderUserID)
		if rawRole == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Actor required", nil)
			return
		}
		role, ok := shared.ParseRole(rawRole)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidActor, "Invalid actor role", nil)
			return
		}

		actor := shared.Actor{Role: role}
		switch {
		case rawID != "":
			id, err := uuid.Parse(rawID)
			if err != nil {
				httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidActor, "Invalid actor id", nil)
				return
			}
			actor.ID = id
		case role != shared.RoleSystem:
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Actor required", nil)
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}
