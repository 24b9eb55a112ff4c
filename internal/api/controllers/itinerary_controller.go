package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Description Build a deterministic trip plan from stored and provider venues, degrading to synthetic venues when providers are unavailable
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	i.generate(c, false)
}

// GenerateSmartItinerary godoc
// @Summary Generate an itinerary with rating floor and AI narratives
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary/smart-generate [post]
func (i *ItineraryController) GenerateSmartItinerary(c *gin.Context) {
	i.generate(c, true)
}

func (i *ItineraryController) generate(c *gin.Context, smart bool) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	params, err := services.NormalizeTripRequest(req, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	generate := i.itineraryService.GenerateItinerary
	if smart {
		generate = i.itineraryService.GenerateSmartItinerary
	}

	itinerary, err := generate(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (i *ItineraryController) GetItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

func (i *ItineraryController) ListItineraries(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (i *ItineraryController) UpdateItinerary(c *gin.Context) {
	id := c.Param("id")

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "document is required")
		return
	}

	if err := i.itineraryService.UpdateItinerary(c.Request.Context(), id, req.Document); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	id := c.Param("id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
