package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/mocks"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Loop Responding", func(t *testing.T) {
		runner := &directRunner{engine: garden.NewEngine(catalog.Default())}

		w := httptest.NewRecorder()
		HandleReadyz(runner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Loop Stopped", func(t *testing.T) {
		runner := mocks.NewMockRunner(t)
		runner.On("Do", mock.Anything, mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(runner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version"`)
	assert.Contains(t, w.Body.String(), `"save_schema":2`)
	assert.Contains(t, w.Body.String(), `"event_schema":"1.0"`)
}
