//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
		Detail  any    `json:"detail"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and the success flag, then decodes data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.True(t, env.Success, "success flag not set")
	assert.Nil(t, env.Error)

	if targetStruct != nil {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response data: %s", string(env.Data)))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	if !assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String())) {
		return
	}
	assert.False(t, env.Success)
	if !assert.NotNil(t, env.Error, "error body missing") {
		return
	}

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertMessage checks the top-level envelope message.
func AssertMessage(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()

	var env envelope
	if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env)) {
		assert.Equal(t, expected, env.Message)
	}
}

// AssertRateLimitHeaders checks the quota headers. A rejected request must also carry Retry-After
// matching the reset window.
func AssertRateLimitHeaders(t *testing.T, w *httptest.ResponseRecorder, limit, remaining, resetSecs int) {
	t.Helper()

	h := w.Header()
	assert.Equal(t, strconv.Itoa(limit), h.Get("X-RateLimit-Limit"))
	assert.Equal(t, strconv.Itoa(remaining), h.Get("X-RateLimit-Remaining"))
	assert.Equal(t, strconv.Itoa(resetSecs), h.Get("X-RateLimit-Reset"))
	if w.Code == http.StatusTooManyRequests {
		assert.Equal(t, strconv.Itoa(resetSecs), h.Get("Retry-After"))
	} else {
		assert.Empty(t, h.Get("Retry-After"))
	}
}
