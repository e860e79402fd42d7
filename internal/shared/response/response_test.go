package response_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-salary/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	t.Run("third page of 25 rows", func(t *testing.T) {
		meta := response.NewPaginationMeta(25, 10, 20)
		assert.Equal(t, int64(25), meta.TotalRow)
		assert.Equal(t, 3, meta.TotalPage)
		assert.Equal(t, 3, meta.Current)
		assert.Equal(t, 10, meta.PageSize)
	})

	t.Run("exact multiple", func(t *testing.T) {
		meta := response.NewPaginationMeta(30, 10, 0)
		assert.Equal(t, 3, meta.TotalPage)
		assert.Equal(t, 1, meta.Current)
	})

	t.Run("skip not aligned to take", func(t *testing.T) {
		meta := response.NewPaginationMeta(7, 5, 3)
		assert.Equal(t, 2, meta.TotalPage)
		assert.Equal(t, 1, meta.Current)
	})

	t.Run("take near max int", func(t *testing.T) {
		meta := response.NewPaginationMeta(5, math.MaxInt64, 0)
		assert.Equal(t, 1, meta.TotalPage)
		assert.Equal(t, 1, meta.Current)
		assert.Equal(t, math.MaxInt64, meta.PageSize)
	})

	t.Run("empty result", func(t *testing.T) {
		meta := response.NewPaginationMeta(0, 10, 0)
		assert.Equal(t, 0, meta.TotalPage)
		assert.Equal(t, 1, meta.Current)
	})
}

func TestFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Failure(c, "Date is required", nil, map[string]string{"code": "VALIDATION_ERROR"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(400), body["code"])
	assert.Equal(t, "Date is required", body["info"])
	assert.Contains(t, body, "data")
}
