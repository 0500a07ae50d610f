package handler

import (
	"context"
	"net/http"

	"bid-marketplace/services/auth/helpers"
	"bid-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an unreadable body on the auth endpoints is a server-side failure,
		// not a validation error
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		utils.Error("RegisterHandler: failed to read request body", map[string]any{"error": err.Error()})
		return
	}

	token, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("RegisterHandler: registration rejected", map[string]any{
			"email":  req.Email,
			"status": status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONToken(c, http.StatusCreated, "Registered", token)
	utils.Info("RegisterHandler: user registered", map[string]any{"email": req.Email})
}

// LoginHandler handles POST /login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		utils.Error("LoginHandler: failed to read request body", map[string]any{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("LoginHandler: login rejected", map[string]any{
			"email":  req.Email,
			"status": status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONToken(c, http.StatusOK, "Logged in", token)
	utils.Info("LoginHandler: user logged in", map[string]any{"email": req.Email})
}
