//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"furnicraft/internal/handler/httperr"
	"furnicraft/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind error
		want int
	}{
		{errs.ErrNotFound, http.StatusNotFound},
		{errs.ErrInvalidArgument, http.StatusBadRequest},
		{errs.ErrLimitExceeded, http.StatusBadRequest},
		{errs.ErrNotEligible, http.StatusBadRequest},
		{errs.ErrNotApplicable, http.StatusBadRequest},
		{errs.ErrInvalidState, http.StatusBadRequest},
		{errs.ErrBelowMinimum, http.StatusBadRequest},
		{errs.ErrUnauthorized, http.StatusUnauthorized},
		{errs.ErrForbidden, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(errs.KindName(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(errs.Kinded(tt.kind, "msg")))
		})
	}

	assert.Equal(t, http.StatusInternalServerError, httperr.StatusOf(errors.New("disk full")))
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "kinded error shows its message",
			err:        errs.Kinded(errs.ErrLimitExceeded, "Coupon usage limit reached"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Coupon usage limit reached",
		},
		{
			name:       "kind without message falls back to status text",
			err:        errs.Mark(errors.New("no rows"), errs.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name:       "internal error hides details",
			err:        errors.New("pq: relation missing"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			httperr.Abort(c, tt.err)

			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.wantStatus, w.Code)
			require.Len(t, c.Errors, 1)
			assert.Equal(t, tt.err, c.Errors[0].Err)
			assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
			recorded, ok := c.Errors[0].Meta.(httperr.Response)
			require.True(t, ok, "meta should carry the rendered envelope")
			assert.Equal(t, tt.wantStatus, recorded.Status)
			assert.Equal(t, tt.wantMsg, recorded.Message)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotContains(t, body, "detail")
		})
	}
}

func TestAbortWithError_NilPanics(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
	})
}
