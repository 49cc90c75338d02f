package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestJsonError_AbortsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reached := false
	router := gin.New()
	router.Use(func(c *gin.Context) {
		JsonError(c, http.StatusBadRequest, "timer must be a positive number of minutes")
	})
	router.GET("/quiz", func(c *gin.Context) {
		reached = true
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quiz", nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Bad Request","message":"timer must be a positive number of minutes"}`, w.Body.String())
}

func TestJsonError_OmitsEmptyMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JsonError(c, http.StatusInternalServerError)

	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}
