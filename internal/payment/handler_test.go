package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Record(ctx context.Context, bookingID, userID int, amountCents int64) (*Payment, error) {
	args := m.Called(ctx, bookingID, userID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID int) ([]Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

func setupPaymentRouter(repo Repository, authed bool, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(repo)
	router.GET("/payments/my", func(c *gin.Context) {
		if authed {
			c.Set("user_id", userID)
			c.Set("user_role", "member")
		}
		c.Next()
	}, handler.ListMy)
	return router
}

func TestListMyPayments(t *testing.T) {
	repo := new(MockPaymentRepo)
	repo.On("ListByUser", mock.Anything, 3).Return([]Payment{
		{ID: 2, BookingID: 8, UserID: 3, AmountCents: 45000},
		{ID: 1, BookingID: 5, UserID: 3, AmountCents: 30000},
	}, nil)

	router := setupPaymentRouter(repo, true, 3)

	req, _ := http.NewRequest("GET", "/payments/my", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, float64(45000), list[0]["amountCents"])
	assert.Equal(t, float64(8), list[0]["bookingId"])
}

func TestListMyPayments_EmptyList(t *testing.T) {
	repo := new(MockPaymentRepo)
	repo.On("ListByUser", mock.Anything, 3).Return([]Payment{}, nil)

	router := setupPaymentRouter(repo, true, 3)

	req, _ := http.NewRequest("GET", "/payments/my", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListMyPayments_Unauthenticated(t *testing.T) {
	repo := new(MockPaymentRepo)
	router := setupPaymentRouter(repo, false, 0)

	req, _ := http.NewRequest("GET", "/payments/my", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}
