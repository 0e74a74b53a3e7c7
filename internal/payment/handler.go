package payment

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

// ListMy godoc
// @Summary      List my payments
// @Description  Returns the authenticated user's simulated payment records.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Payment
// @Failure      401  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /payments/my [get]
func (h *Handler) ListMy(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	payments, err := h.repo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
