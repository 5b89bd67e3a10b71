package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/catalog/categories", GetCategoriesHandler)
	r.GET("/api/catalog/categories/:key", GetCategoryHandler)
	r.GET("/api/catalog/services/search", SearchServicesHandler)
	r.GET("/api/locations/counties", GetCountiesHandler)
	r.GET("/api/locations/counties/:county", GetSubCountiesHandler)
	r.GET("/api/locations/counties/:county/:subCounty", GetWardsHandler)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestGetCategories(t *testing.T) {
	r := newCatalogRouter()
	code, body := getJSON(t, r, "/api/catalog/categories")
	assert.Equal(t, http.StatusOK, code)
	cats, ok := body["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, cats, 20)
}

func TestGetCategoryWithServices(t *testing.T) {
	r := newCatalogRouter()
	code, body := getJSON(t, r, "/api/catalog/categories/plumbing")
	assert.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "category")
	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, services)

	code, _ = getJSON(t, r, "/api/catalog/categories/astrology")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSearchServicesEndpoint(t *testing.T) {
	r := newCatalogRouter()
	code, body := getJSON(t, r, "/api/catalog/services/search?q=leak")
	assert.Equal(t, http.StatusOK, code)
	services, ok := body["services"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, services)
}

func TestLocationCascadeEndpoints(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/api/locations/counties")
	assert.Equal(t, http.StatusOK, code)
	counties, ok := body["counties"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, counties, "Nairobi")

	code, body = getJSON(t, r, "/api/locations/counties/Nairobi")
	assert.Equal(t, http.StatusOK, code)
	subs, ok := body["sub_counties"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, subs, "Westlands")

	code, body = getJSON(t, r, "/api/locations/counties/Nairobi/Westlands")
	assert.Equal(t, http.StatusOK, code)
	wards, ok := body["wards"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, wards, "Kitisuru")
}
