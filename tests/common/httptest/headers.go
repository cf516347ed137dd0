//go:build unit || e2e

package httptest

import (
	"mime"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertAttachment checks a file download response and returns the offered
// filename.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filenamePrefix string) string {
	t.Helper()

	assert.Equal(t, contentType, w.Header().Get("Content-Type"))

	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err, "parse Content-Disposition")
	assert.Equal(t, "attachment", disposition)

	filename := params["filename"]
	assert.True(t, strings.HasPrefix(filename, filenamePrefix),
		"filename %q should start with %q", filename, filenamePrefix)
	return filename
}
