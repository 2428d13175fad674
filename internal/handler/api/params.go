package api

import (
	"net/http"

	"trainer-booking/internal/handler/httperr"
	"trainer-booking/internal/handler/middleware"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("actor missing from context")

func actorFrom(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		// RequireActor must run before every mutating route
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Actor required", nil)
	}
	return actor, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID parses an optional query value; empty yields nil.
func optionalUUID(c *gin.Context, raw, name string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func cursorFrom(after string) *queries.Cursor {
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
