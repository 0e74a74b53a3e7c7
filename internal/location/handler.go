package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sujaybr27/VPlay/internal/api"
	"github.com/Sujaybr27/VPlay/internal/auth"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListLocations godoc
// @Summary      List locations
// @Description  Returns all locations with their courts.
// @Tags         locations
// @Produce      json
// @Success      200  {array}   LocationWithCourts
// @Failure      500  {object}  api.ErrorResponse
// @Router       /locations [get]
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.repo.ListWithCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary      Create location
// @Description  Admin-only: registers a new location and assigns its owner.
// @Tags         admin,locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateLocationRequest  true  "Location payload"
// @Success      201      {object}  Location
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /locations [post]
func (h *Handler) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	loc, err := h.repo.Create(c.Request.Context(), req.Name, req.Address, req.OwnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, loc)
}

// MyLocations godoc
// @Summary      List my locations
// @Description  Returns locations owned by the authenticated user.
// @Tags         locations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   LocationWithCourts
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /locations/my-locations [get]
func (h *Handler) MyLocations(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	locations, err := h.repo.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}
