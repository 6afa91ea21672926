package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course-marketplace/middleware"
	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwt *services.JWTService, captured *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(jwt), func(c *gin.Context) {
		*captured = middleware.GetUserID(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwt := services.NewJWTService("test-secret", time.Hour)
	userID := uuid.New()
	token, err := jwt.GenerateToken(userID)
	require.NoError(t, err)

	var captured uuid.UUID
	router := setupAuthRouter(jwt, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	jwt := services.NewJWTService("test-secret", time.Hour)
	var captured uuid.UUID
	router := setupAuthRouter(jwt, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, uuid.Nil, captured)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	jwt := services.NewJWTService("test-secret", time.Hour)
	var captured uuid.UUID
	router := setupAuthRouter(jwt, &captured)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
