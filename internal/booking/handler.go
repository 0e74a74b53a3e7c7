package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sujaybr27/VPlay/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Book a slot
// @Description  Reserves a free slot for a user. Exactly one of any concurrent attempts for the same slot succeeds.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "User and slot"
// @Success      200      {object}  BookingDetails
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.service.Reserve(c.Request.Context(), req.UserID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Slot not found"})
		case errors.Is(err, ErrSlotAlreadyBooked):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Slot already booked"})
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusOK, details)
}

// ListUserBookings godoc
// @Summary      List a user's bookings
// @Description  Returns the user's bookings, most recent first, expanded with slot, court and location.
// @Tags         bookings
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   BookingDetails
// @Failure      400     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /bookings/user/{userID} [get]
func (h *Handler) ListUserBookings(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	bookings, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAllBookings godoc
// @Summary      List all bookings
// @Description  Admin-only: every booking with user, slot, court and location.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListAllBookings(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingAnalytics godoc
// @Summary      Booking analytics
// @Description  Admin-only: booking counts grouped by day or location.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        group_by  query     string  false  "Group by dimension (day or location)"
// @Param        from      query     string  true   "Start datetime (RFC3339)"
// @Param        to        query     string  true   "End datetime (RFC3339)"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /admin/analytics/bookings [get]
func (h *Handler) GetBookingAnalytics(c *gin.Context) {
	groupBy := c.DefaultQuery("group_by", "day")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from and to query params are required"})
		return
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from format, use RFC3339"})
		return
	}

	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to format, use RFC3339"})
		return
	}

	switch groupBy {
	case "day":
		stats, err := h.service.StatsByDay(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"groupBy": "day", "from": from, "to": to, "data": stats})
	case "location":
		stats, err := h.service.StatsByLocation(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"groupBy": "location", "from": from, "to": to, "data": stats})
	default:
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "group_by must be 'day' or 'location'"})
	}
}
