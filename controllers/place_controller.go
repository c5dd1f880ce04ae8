package controllers

import (
	"net/http"
	"strconv"

	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/Aaron629/today-go-where-bot/services"
	"github.com/Aaron629/today-go-where-bot/utils"
	"github.com/gin-gonic/gin"
)

type PlaceController struct {
	PlaceService *services.PlaceService
}

func NewPlaceController(placeService *services.PlaceService) *PlaceController {
	return &PlaceController{PlaceService: placeService}
}

// GetPlaces mirrors the catalog query over REST: exact city/district match,
// optional category, paginated. page_size is taken as supplied.
func (pc *PlaceController) GetPlaces(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")
	if city == "" || district == "" {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "city and district are required"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid page"))
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "6"))
	if err != nil || pageSize < 1 {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid page_size"))
		return
	}

	result := pc.PlaceService.FilterPlaces(city, district, models.Category(c.Query("category")), page, pageSize)
	utils.SuccessResponse(c, http.StatusOK, "Places fetched successfully", result)
}

// GetCategories lists the derived categories observed in one district.
func (pc *PlaceController) GetCategories(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")
	if city == "" || district == "" {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "city and district are required"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Categories fetched successfully", gin.H{
		"city":       city,
		"district":   district,
		"categories": pc.PlaceService.CategoriesByDistrict(city, district),
	})
}
