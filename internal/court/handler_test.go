package court

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/Sujaybr27/VPlay/internal/location"
)

type MockCourtRepo struct{ mock.Mock }
type MockLocationRepo struct{ mock.Mock }

func (m *MockCourtRepo) Create(ctx context.Context, name, sport string, description null.String, maxPlayers int, priceCents int64, locationID int) (*Court, error) {
	args := m.Called(ctx, name, sport, description, maxPlayers, priceCents, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockCourtRepo) GetByID(ctx context.Context, id int) (*Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockCourtRepo) ListWithLocation(ctx context.Context) ([]CourtWithLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CourtWithLocation), args.Error(1)
}

func (m *MockCourtRepo) ListByLocation(ctx context.Context, locationID int) ([]Court, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Court), args.Error(1)
}

func (m *MockLocationRepo) Create(ctx context.Context, name, address string, ownerID int) (*location.Location, error) {
	args := m.Called(ctx, name, address, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepo) GetByID(ctx context.Context, id int) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepo) ListWithCourts(ctx context.Context) ([]location.LocationWithCourts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.LocationWithCourts), args.Error(1)
}

func (m *MockLocationRepo) ListByOwner(ctx context.Context, ownerID int) ([]location.LocationWithCourts, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.LocationWithCourts), args.Error(1)
}

func asUser(userID int, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func setupCourtRouter(cr Repository, lr location.Repository, userID int, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(cr, lr)
	router.GET("/courts", handler.ListCourts)
	router.POST("/courts", asUser(userID, role), handler.CreateCourt)
	router.GET("/courts/location/:locationID", asUser(userID, role), handler.ListByLocation)
	return router
}

const createCourtBody = `{"name":"Badminton Court 1","sport":"Badminton","description":"Indoor","maxPlayers":4,"priceCents":30000,"locationId":2}`

func TestCreateCourt_Owner(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	lr.On("GetByID", mock.Anything, 2).Return(&location.Location{ID: 2, OwnerID: 3}, nil)
	cr.On("Create", mock.Anything, "Badminton Court 1", "Badminton", null.StringFrom("Indoor"), 4, int64(30000), 2).
		Return(&Court{ID: 10, Name: "Badminton Court 1", Sport: "Badminton", LocationID: 2}, nil)

	router := setupCourtRouter(cr, lr, 3, "member")

	req, _ := http.NewRequest("POST", "/courts", bytes.NewBufferString(createCourtBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	cr.AssertExpectations(t)
}

func TestCreateCourt_NonOwnerForbidden(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	lr.On("GetByID", mock.Anything, 2).Return(&location.Location{ID: 2, OwnerID: 3}, nil)

	router := setupCourtRouter(cr, lr, 9, "member")

	req, _ := http.NewRequest("POST", "/courts", bytes.NewBufferString(createCourtBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	cr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCourt_AdminAllowed(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	lr.On("GetByID", mock.Anything, 2).Return(&location.Location{ID: 2, OwnerID: 3}, nil)
	cr.On("Create", mock.Anything, "Badminton Court 1", "Badminton", null.StringFrom("Indoor"), 4, int64(30000), 2).
		Return(&Court{ID: 10, LocationID: 2}, nil)

	router := setupCourtRouter(cr, lr, 9, "admin")

	req, _ := http.NewRequest("POST", "/courts", bytes.NewBufferString(createCourtBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCourt_UnknownLocation(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	lr.On("GetByID", mock.Anything, 2).Return(nil, assert.AnError)

	router := setupCourtRouter(cr, lr, 3, "member")

	req, _ := http.NewRequest("POST", "/courts", bytes.NewBufferString(createCourtBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCourtsHandler(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	cr.On("ListWithLocation", mock.Anything).Return([]CourtWithLocation{
		{Court: Court{ID: 10, Name: "Badminton Court 1"}, LocationName: "Play Arena", LocationAddress: "Sarjapur Road"},
	}, nil)

	router := setupCourtRouter(cr, lr, 3, "member")

	req, _ := http.NewRequest("GET", "/courts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Play Arena", list[0]["locationName"])
}

func TestListByLocationHandler_OwnerOnly(t *testing.T) {
	cr := new(MockCourtRepo)
	lr := new(MockLocationRepo)

	lr.On("GetByID", mock.Anything, 2).Return(&location.Location{ID: 2, OwnerID: 3}, nil)

	router := setupCourtRouter(cr, lr, 9, "member")

	req, _ := http.NewRequest("GET", "/courts/location/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
