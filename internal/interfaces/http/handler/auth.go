package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/evergreen/backend/internal/application/identity"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account and sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RegisterRequest true "Signup details"
// @Success      201 {object} APIResponse[identity.AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login godoc
// @Summary      Sign in
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.LoginRequest true "Login credentials"
// @Success      200 {object} APIResponse[identity.AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.RefreshTokenRequest true "Refresh token"
// @Success      200 {object} APIResponse[identity.AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req identity.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// LogoutRequest carries the optional refresh token to revoke alongside
// the access token
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout godoc
// @Summary      Sign out
// @Description  Revoke the current access token and, optionally, the refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Refresh token to revoke"
// @Success      200 {object} SuccessResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// Body is optional for logout
	_ = c.ShouldBindJSON(&req)

	accessToken := strings.TrimPrefix(c.GetHeader(middleware.AuthHeaderKey), middleware.BearerPrefix)
	if err := h.authService.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      Get current user
// @Description  Returns the profile of the signed-in user
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Edit the signed-in user's profile fields
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Change the signed-in user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identity.ChangePasswordRequest true "Old and new password"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}
