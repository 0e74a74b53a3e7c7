package slot

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sujaybr27/VPlay/internal/api"
	"github.com/Sujaybr27/VPlay/internal/auth"
	"github.com/Sujaybr27/VPlay/internal/court"
	"github.com/Sujaybr27/VPlay/internal/location"
	"github.com/Sujaybr27/VPlay/internal/metrics"
)

type Handler struct {
	repo         Repository
	courtRepo    court.Repository
	locationRepo location.Repository
}

func NewHandler(repo Repository, courtRepo court.Repository, locationRepo location.Repository) *Handler {
	return &Handler{
		repo:         repo,
		courtRepo:    courtRepo,
		locationRepo: locationRepo,
	}
}

// ownsCourt reports whether the caller owns the court's location or is admin.
func (h *Handler) ownsCourt(c *gin.Context, courtID, userID int) (bool, bool) {
	crt, err := h.courtRepo.GetByID(c.Request.Context(), courtID)
	if err != nil {
		return false, false
	}

	loc, err := h.locationRepo.GetByID(c.Request.Context(), crt.LocationID)
	if err != nil {
		return true, false
	}

	return true, loc.OwnerID == userID || auth.IsAdmin(c)
}

// BulkCreate godoc
// @Summary      Create slots in bulk
// @Description  Creates the given slots. Caller must own every referenced court's location.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      BulkCreateRequest  true  "Slots to create"
// @Success      201      {object}  GenerateResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /slots/bulk [post]
func (h *Handler) BulkCreate(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	for _, s := range req.Slots {
		if errs := api.ValidateStruct(s); len(errs) > 0 {
			api.RespondWithValidationErrors(c, errs)
			return
		}
	}

	checked := make(map[int]bool)
	for _, s := range req.Slots {
		if checked[s.CourtID] {
			continue
		}
		found, allowed := h.ownsCourt(c, s.CourtID, userID)
		if !found {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
			return
		}
		checked[s.CourtID] = true
	}

	count, err := h.repo.CreateBatch(c.Request.Context(), req.Slots)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create slots"})
		return
	}

	metrics.RecordSlotsCreated(count)
	c.JSON(http.StatusCreated, GenerateResponse{Message: "Slots created successfully", Count: count})
}

// Generate godoc
// @Summary      Generate a week of slots
// @Description  Fills the next 7 days with hourly 06:00-22:00 slots for a court.
// @Tags         slots
// @Produce      json
// @Security     BearerAuth
// @Param        courtID  path      int  true  "Court ID"
// @Success      201      {object}  GenerateResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /slots/generate/{courtID} [post]
func (h *Handler) Generate(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	courtID, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	found, allowed := h.ownsCourt(c, courtID, userID)
	if !found {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied"})
		return
	}

	count, err := h.repo.GenerateForCourt(c.Request.Context(), courtID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to generate slots"})
		return
	}

	metrics.RecordSlotsCreated(count)
	c.JSON(http.StatusCreated, GenerateResponse{Message: "Slots generated successfully", Count: count})
}

// ListByCourt godoc
// @Summary      List slots for a court
// @Description  Returns all slots of a court ordered by start time.
// @Tags         slots
// @Produce      json
// @Param        courtID  path      int  true  "Court ID"
// @Success      200      {array}   Slot
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /slots/court/{courtID} [get]
func (h *Handler) ListByCourt(c *gin.Context) {
	courtID, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	slots, err := h.repo.ListByCourt(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}
