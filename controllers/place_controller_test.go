package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Aaron629/today-go-where-bot/middleware"
	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/Aaron629/today-go-where-bot/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placesTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewPlaceServiceFromPlaces([]models.Place{
		{Name: "夜市A", City: "台北", District: "信義區", Type: "food", Tags: []string{"夜市"}, MapsLink: "https://www.google.com/maps/search/?api=1&query=a"},
	})
	pc := NewPlaceController(svc)

	router := gin.New()
	router.Use(middleware.ErrorHandlerMiddleware())
	router.GET("/v1/places", pc.GetPlaces)
	router.GET("/v1/places/categories", pc.GetCategories)
	return router
}

func getJSON(t *testing.T, router *gin.Engine, path string, query url.Values) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGetPlacesMissingDistrict(t *testing.T) {
	router := placesTestRouter()

	code, body := getJSON(t, router, "/v1/places", url.Values{"city": {"台北"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "city and district are required", body["message"])
}

func TestGetPlacesInvalidPage(t *testing.T) {
	router := placesTestRouter()

	code, body := getJSON(t, router, "/v1/places", url.Values{
		"city": {"台北"}, "district": {"信義區"}, "page": {"0"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid page", body["message"])
}

func TestGetPlacesSuccess(t *testing.T) {
	router := placesTestRouter()

	code, body := getJSON(t, router, "/v1/places", url.Values{
		"city": {"台北"}, "district": {"信義區"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, data["total"])
}

func TestGetCategoriesMissingParams(t *testing.T) {
	router := placesTestRouter()

	code, body := getJSON(t, router, "/v1/places/categories", url.Values{"district": {"信義區"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", body["status"])
}
