package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teahouse-backend/pkg/container"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	c, err := container.NewContainer()
	require.NoError(t, err)
	return SetupRouter(c), c
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestTeapotSignature(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/brew", nil)
	require.Equal(t, http.StatusTeapot, w.Code)

	body := decode(t, w)
	assert.Equal(t, "I'm a teapot", body["error"])
	assert.Equal(t, "This server is TIF-compliant and cannot brew coffee", body["message"])
	assert.Equal(t, "https://teapotframework.dev", body["spec"])
}

func TestHealthEndpoints(t *testing.T) {
	router, c := newTestRouter(t)

	assert.Equal(t, http.StatusOK, perform(t, router, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, perform(t, router, http.MethodGet, "/health/live", nil).Code)

	assert.Equal(t, http.StatusServiceUnavailable, perform(t, router, http.MethodGet, "/health/ready", nil).Code)
	c.Ready.Store(true)
	assert.Equal(t, http.StatusOK, perform(t, router, http.MethodGet, "/health/ready", nil).Code)
}

func TestUnmatchedRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/coffee", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.NotEmpty(t, body["message"])
}

func TestCreateTeapotScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/teapots", map[string]interface{}{
		"name":       "My Kyusu",
		"material":   "clay",
		"capacityMl": 350,
		"style":      "kyusu",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "kyusu", body["style"])
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, body["createdAt"], body["updatedAt"])

	// description is present and null, not omitted
	val, present := body["description"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestCreateTeaScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/teas", map[string]interface{}{
		"name":             "Sencha",
		"type":             "green",
		"steepTempCelsius": 75,
		"steepTimeSeconds": 120,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "medium", body["caffeineLevel"])
}

func TestCreateTeapotValidationDetails(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/teapots", map[string]interface{}{
		"material":   "plastic",
		"capacityMl": 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "material")
	assert.Contains(t, details, "capacityMl")
}

func TestMalformedIDIsValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/teapots/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w)["code"])
}

func TestBrewReferentialFailureIs400(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/brews", map[string]interface{}{
		"teapotId": "2d2e9442-9a98-4f1f-91fc-23023b1e2335",
		"teaId":    "f3b4ec0a-6f4f-4caa-912e-09b5eaf3c2e1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "Teapot not found", body["message"])
}

func TestSteepUnknownBrewIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/brews/2d2e9442-9a98-4f1f-91fc-23023b1e2335/steeps", map[string]interface{}{
		"durationSeconds": 30,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Brew not found", decode(t, w)["message"])
}

// Full lifecycle: create references, brew, patch status, expand,
// steep twice, cascade.
func TestBrewLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/teapots", map[string]interface{}{
		"name":       "Lifecycle Pot",
		"material":   "cast-iron",
		"capacityMl": 800,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	teapotID := decode(t, w)["id"].(string)

	w = perform(t, router, http.MethodPost, "/teas", map[string]interface{}{
		"name":             "Shou Puerh",
		"type":             "puerh",
		"steepTempCelsius": 100,
		"steepTimeSeconds": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	teaID := decode(t, w)["id"].(string)

	w = perform(t, router, http.MethodPost, "/brews", map[string]interface{}{
		"teapotId": teapotID,
		"teaId":    teaID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	brewID := created["id"].(string)
	assert.Equal(t, "preparing", created["status"])
	assert.Equal(t, float64(100), created["waterTempCelsius"])

	w = perform(t, router, http.MethodPatch, "/brews/"+brewID, map[string]interface{}{
		"status": "ready",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodGet, "/brews/"+brewID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	assert.Equal(t, "ready", detail["status"])
	require.Contains(t, detail, "teapot")
	require.Contains(t, detail, "tea")
	assert.Equal(t, teapotID, detail["teapot"].(map[string]interface{})["id"])

	for k := 1; k <= 2; k++ {
		w = perform(t, router, http.MethodPost, "/brews/"+brewID+"/steeps", map[string]interface{}{
			"durationSeconds": 30 * k,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(k), decode(t, w)["steepNumber"])
	}

	w = perform(t, router, http.MethodGet, "/brews/"+brewID+"/steeps", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listBody := decode(t, w)
	data := listBody["data"].([]interface{})
	require.Len(t, data, 2)
	pmeta := listBody["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pmeta["total"])
	assert.Equal(t, float64(1), pmeta["totalPages"])

	w = perform(t, router, http.MethodDelete, "/brews/"+brewID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = perform(t, router, http.MethodGet, "/brews/"+brewID+"/steeps", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNestedBrewListing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/teapots", map[string]interface{}{
		"name":       "Nested Pot",
		"material":   "porcelain",
		"capacityMl": 400,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	teapotID := decode(t, w)["id"].(string)

	w = perform(t, router, http.MethodGet, "/teapots/"+teapotID+"/brews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["data"])
	assert.NotNil(t, body["data"])

	w = perform(t, router, http.MethodGet, "/teapots/2d2e9442-9a98-4f1f-91fc-23023b1e2335/brews", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Teapot not found", decode(t, w)["message"])
}

func TestListPaginationPastEnd(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 3; i++ {
		w := perform(t, router, http.MethodPost, "/teapots", map[string]interface{}{
			"name":       fmt.Sprintf("Pot %d", i),
			"material":   "ceramic",
			"capacityMl": 300,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := perform(t, router, http.MethodGet, "/teapots?page=9&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Empty(t, body["data"])
	pmeta := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pmeta["total"])
	assert.Equal(t, float64(2), pmeta["totalPages"])
	assert.Equal(t, float64(9), pmeta["page"])
}
