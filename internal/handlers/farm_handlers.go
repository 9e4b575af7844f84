package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agroflow/agroflow-api/internal/middleware"
	"github.com/agroflow/agroflow-api/internal/services"
)

// FarmHandler handles farms and their parcels.
type FarmHandler struct {
	common *CommonServices
}

func NewFarmHandler(common *CommonServices) *FarmHandler {
	return &FarmHandler{common: common}
}

type FarmRequest struct {
	Name         string   `json:"name" binding:"required"`
	Location     *string  `json:"location"`
	AreaHectares *float64 `json:"area_hectares"`
}

type ParcelRequest struct {
	Name         string   `json:"name" binding:"required"`
	AreaHectares *float64 `json:"area_hectares"`
	CropType     *string  `json:"crop_type"`
}

// CreateFarm godoc
// @Summary Create a farm
// @Tags farms
// @Accept json
// @Produce json
// @Param farm body FarmRequest true "Farm"
// @Success 201 {object} db.Farm
// @Router /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	var req FarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	farm, err := h.common.FarmService.CreateFarm(c.Request.Context(), middleware.GetOrganizationID(c), services.FarmParams{
		Name:         req.Name,
		Location:     req.Location,
		AreaHectares: req.AreaHectares,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, farm)
}

// GetFarm godoc
// @Summary Get a farm
// @Tags farms
// @Produce json
// @Param farm_id path string true "Farm ID"
// @Success 200 {object} db.Farm
// @Router /farms/{farm_id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	id, ok := parseUUIDParam(c, "farm_id")
	if !ok {
		return
	}
	farm, err := h.common.FarmService.GetFarm(c.Request.Context(), middleware.GetOrganizationID(c), id)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, farm)
}

// ListFarms godoc
// @Summary List farms
// @Tags farms
// @Produce json
// @Success 200 {array} db.Farm
// @Router /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	farms, err := h.common.FarmService.ListFarms(c.Request.Context(), middleware.GetOrganizationID(c))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, farms)
}

// CreateParcel godoc
// @Summary Create a parcel on a farm
// @Tags farms
// @Accept json
// @Produce json
// @Param farm_id path string true "Farm ID"
// @Param parcel body ParcelRequest true "Parcel"
// @Success 201 {object} db.Parcel
// @Router /farms/{farm_id}/parcels [post]
func (h *FarmHandler) CreateParcel(c *gin.Context) {
	farmID, ok := parseUUIDParam(c, "farm_id")
	if !ok {
		return
	}
	var req ParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	parcel, err := h.common.FarmService.CreateParcel(c.Request.Context(), middleware.GetOrganizationID(c), farmID, services.ParcelParams{
		Name:         req.Name,
		AreaHectares: req.AreaHectares,
		CropType:     req.CropType,
	})
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, parcel)
}

// ListParcels godoc
// @Summary List parcels of a farm
// @Tags farms
// @Produce json
// @Param farm_id path string true "Farm ID"
// @Success 200 {array} db.Parcel
// @Router /farms/{farm_id}/parcels [get]
func (h *FarmHandler) ListParcels(c *gin.Context) {
	farmID, ok := parseUUIDParam(c, "farm_id")
	if !ok {
		return
	}
	parcels, err := h.common.FarmService.ListParcels(c.Request.Context(), middleware.GetOrganizationID(c), farmID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, parcels)
}
