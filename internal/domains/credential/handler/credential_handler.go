package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/domains/credential"
	"police-records-backend/internal/shared/apperror"
	"police-records-backend/internal/shared/middleware"
	"police-records-backend/internal/shared/response"
)

type CredentialHandler struct {
	service credential.Service
}

func NewCredentialHandler(service credential.Service) *CredentialHandler {
	return &CredentialHandler{
		service: service,
	}
}

// Register handles POST /register
func (h *CredentialHandler) Register(c *gin.Context) {
	var req credential.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login handles POST /login
func (h *CredentialHandler) Login(c *gin.Context) {
	var req credential.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		status, code, message := apperror.MapToHTTP(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// Me handles GET /auth/me, behind the auth middleware.
func (h *CredentialHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	response.Success(c, http.StatusOK, gin.H{"username": username})
}
