package api

import (
	"net/http"

	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/handler/middleware"
	"furnicraft/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidID      = errs.Kinded(errs.ErrInvalidArgument, "Invalid id")
	errInvalidRequest = errs.Kinded(errs.ErrInvalidArgument, "Invalid request")
	errNoActor        = errs.Kinded(errs.ErrUnauthorized, "Unauthorized")
)

// pathID parses a UUID path parameter, aborting with 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid request", nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid query parameters", nil)
		return false
	}
	return true
}

// actor returns the authenticated caller; routes using it sit behind RequireAuth.
func actor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return id, true
}
