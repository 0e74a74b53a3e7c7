package court

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gopkg.in/guregu/null.v4"

	"github.com/Sujaybr27/VPlay/internal/api"
	"github.com/Sujaybr27/VPlay/internal/auth"
	"github.com/Sujaybr27/VPlay/internal/location"
)

type Handler struct {
	repo         Repository
	locationRepo location.Repository
}

func NewHandler(repo Repository, locationRepo location.Repository) *Handler {
	return &Handler{
		repo:         repo,
		locationRepo: locationRepo,
	}
}

// ListCourts godoc
// @Summary      List courts
// @Description  Returns all courts with their location.
// @Tags         courts
// @Produce      json
// @Success      200  {array}   CourtWithLocation
// @Failure      500  {object}  api.ErrorResponse
// @Router       /courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.repo.ListWithLocation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}

// CreateCourt godoc
// @Summary      Create court
// @Description  Adds a court to a location. Only the location owner or an admin may do this.
// @Tags         courts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateCourtRequest  true  "Court payload"
// @Success      201      {object}  Court
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /courts [post]
func (h *Handler) CreateCourt(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	loc, err := h.locationRepo.GetByID(c.Request.Context(), req.LocationID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
		return
	}

	if loc.OwnerID != userID && !auth.IsAdmin(c) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	description := null.NewString(req.Description, req.Description != "")
	court, err := h.repo.Create(c.Request.Context(), req.Name, req.Sport, description, req.MaxPlayers, req.PriceCents, req.LocationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, court)
}

// ListByLocation godoc
// @Summary      List courts for a location
// @Description  Returns the courts of one location. Only its owner or an admin may call this.
// @Tags         courts
// @Security     BearerAuth
// @Produce      json
// @Param        locationID  path      int  true  "Location ID"
// @Success      200         {array}   Court
// @Failure      400         {object}  api.ErrorResponse
// @Failure      403         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /courts/location/{locationID} [get]
func (h *Handler) ListByLocation(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	locationID, err := strconv.Atoi(c.Param("locationID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid location ID"})
		return
	}

	loc, err := h.locationRepo.GetByID(c.Request.Context(), locationID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Location not found"})
		return
	}

	if loc.OwnerID != userID && !auth.IsAdmin(c) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	courts, err := h.repo.ListByLocation(c.Request.Context(), locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}
