package handlers

import (
	"errors"
	"net/http"

	"chat-schedule-api/models"
	"chat-schedule-api/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	gateway *services.GatewayService
}

func NewSessionHandler(gateway *services.GatewayService) *SessionHandler {
	return &SessionHandler{gateway: gateway}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login авторизует студента на сайте колледжа. Ошибки валидации (422)
// приходят от сайта агрегированной строкой и отдаются как есть.
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "email and password are required",
			Message: err.Error(),
		})
		return
	}

	data, err := h.gateway.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "login failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.gateway.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "logout failed",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *SessionHandler) GetUser(c *gin.Context) {
	data, err := h.gateway.GetUser(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrNotReady) || errors.Is(err, services.ErrSessionExpired) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "failed to fetch user",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
