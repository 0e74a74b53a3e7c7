package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotPayload struct {
	CourtID   int       `validate:"required"`
	StartTime time.Time `validate:"required"`
	EndTime   time.Time `validate:"required,gtfield=StartTime"`
}

func TestValidateStruct_Valid(t *testing.T) {
	start := time.Now()
	errs := ValidateStruct(slotPayload{CourtID: 1, StartTime: start, EndTime: start.Add(time.Hour)})
	assert.Empty(t, errs)
}

func TestValidateStruct_MissingField(t *testing.T) {
	start := time.Now()
	errs := ValidateStruct(slotPayload{StartTime: start, EndTime: start.Add(time.Hour)})

	require.Len(t, errs, 1)
	assert.Equal(t, "CourtID", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "CourtID is required", errs[0].Message)
}

func TestValidateStruct_InvertedInterval(t *testing.T) {
	start := time.Now()
	errs := ValidateStruct(slotPayload{CourtID: 1, StartTime: start, EndTime: start.Add(-time.Hour)})

	require.Len(t, errs, 1)
	assert.Equal(t, "EndTime", errs[0].Field)
	assert.Equal(t, "gtfield", errs[0].Tag)
	assert.Equal(t, "EndTime must be after StartTime", errs[0].Message)
}

func TestRespondWithValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithValidationErrors(c, []ValidationError{
		{Field: "CourtID", Tag: "required", Message: "CourtID is required"},
	})

	assert.Equal(t, 400, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body["error"])
	require.Len(t, body["details"], 1)
}
