//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AssertSuccessResponse checks the status and decodes the envelope's data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()
	AssertSuccessMessage(t, w, expectedStatus, "", targetStruct)
}

// AssertSuccessMessage additionally checks the envelope message when expectedMsg is set.
func AssertSuccessMessage(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}
	if expectedStatus < 200 || expectedStatus >= 300 || w.Body.Len() == 0 {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.True(t, env.Success, "success flag must be true")
	if expectedMsg != "" {
		assert.Equal(t, expectedMsg, env.Message)
	}

	if targetStruct != nil {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response data: %s", string(env.Data)))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse envelope
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, errorResponse.Success, "success flag must be false")

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
