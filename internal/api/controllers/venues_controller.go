package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type VenuesController struct {
	poolService services.VenuePoolServiceInterface
}

func NewVenuesController(poolService services.VenuePoolServiceInterface) *VenuesController {
	return &VenuesController{
		poolService: poolService,
	}
}

// SyncVenues godoc
// @Summary Sync venues for a destination from the places provider
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body request_models.SyncVenuesRequest true "Destination to sync"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /venues/sync [post]
func (v *VenuesController) SyncVenues(c *gin.Context) {
	var req request_models.SyncVenuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city, latitude and longitude are required")
		return
	}

	count, err := v.poolService.SyncDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"synced": count}, "Venues synced successfully")
}

func (v *VenuesController) GetVenuesByDestination(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	kind := strings.ToUpper(c.Query("kind"))

	venues, err := v.poolService.ListVenues(c.Request.Context(), destinationID, kind, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, venues, "Venues fetched successfully")
}

func (v *VenuesController) DeleteVenue(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Venue ID is required")
		return
	}

	if err := v.poolService.DeleteVenue(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Venue deleted successfully")
}
