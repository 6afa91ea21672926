package controllers

import (
	"net/http"

	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Auth   *services.AuthService
	Logger *zap.Logger
}

func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"body": err.Error()})
		return
	}

	user, err := ac.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		ac.Logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		respondServiceError(c, err, "registration failed")
		return
	}
	successResponse(c, http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		failResponse(c, gin.H{"body": err.Error()})
		return
	}

	token, err := ac.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "login failed")
		return
	}
	successResponse(c, http.StatusOK, gin.H{"access": token})
}
