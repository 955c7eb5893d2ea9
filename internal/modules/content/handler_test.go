package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	NewHandler().RegisterRoutes(v1)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestListStates(t *testing.T) {
	resp := get(setupRouter(), "/api/v1/states")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			States []StateLanding `json:"states"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Len(t, payload.Data.States, 15)
	assert.Equal(t, "california", payload.Data.States[0].Slug)
	assert.Equal(t, "CA", payload.Data.States[0].Code)
}

func TestGetState(t *testing.T) {
	router := setupRouter()

	resp := get(router, "/api/v1/states/texas")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			State StateLanding `json:"state"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "TX", payload.Data.State.Code)
	assert.Equal(t, "Texas", payload.Data.State.Name)

	resp = get(router, "/api/v1/states/atlantis")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListGuides(t *testing.T) {
	resp := get(setupRouter(), "/api/v1/guides")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Guides []Guide `json:"guides"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Len(t, payload.Data.Guides, 3)
	for _, g := range payload.Data.Guides {
		assert.NotEmpty(t, g.Title)
		assert.Empty(t, g.Body) // summaries only
	}
}

func TestGetGuide(t *testing.T) {
	router := setupRouter()

	resp := get(router, "/api/v1/guides/chattel-loan-vs-mortgage")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Data struct {
			Guide Guide `json:"guide"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload.Data.Guide.Body)
	assert.Equal(t, "h2", payload.Data.Guide.Body[1].Type)

	resp = get(router, "/api/v1/guides/unknown")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
