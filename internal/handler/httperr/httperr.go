package httperr

import (
	"log/slog"
	"net/http"

	"furnicraft/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	internalMessage = "Internal server error"
	stackLines      = 12
)

// Response is the failure half of the API envelope.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders err by kind. Kinded errors show their own message; anything
// unclassified becomes a 500 without details.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := errs.PublicMessage(err)
	switch {
	case status == http.StatusInternalServerError:
		slog.Error("Request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLines))
		msg = internalMessage
	case msg == "":
		msg = http.StatusText(status)
	}
	AbortWithError(c, status, err, msg, nil)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidArgument, errs.ErrLimitExceeded, errs.ErrNotEligible,
		errs.ErrNotApplicable, errs.ErrInvalidState, errs.ErrBelowMinimum:
		return http.StatusBadRequest
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	case errs.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Internal renders the generic 500 envelope.
func Internal() Response {
	return Response{Status: http.StatusInternalServerError, Message: internalMessage}
}
