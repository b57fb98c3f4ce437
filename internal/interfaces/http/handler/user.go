package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/evergreen/backend/internal/application/identity"
	"github.com/evergreen/backend/internal/domain/identity"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// UserHandler handles the admin user management endpoints
type UserHandler struct {
	BaseHandler
	userService *appidentity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *appidentity.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary      List users
// @Tags         admin-users
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Email or name search"
// @Param        status query string false "Account status" Enums(active, locked, deactivated)
// @Success      200 {object} APIResponse[[]identity.UserResponse]
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var filter appidentity.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, filter.Page, filter.PageSize)
}

// Get godoc
// @Summary      Get a user
// @Tags         admin-users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// Deactivate godoc
// @Summary      Deactivate a user account
// @Tags         admin-users
// @Param        id path string true "User ID"
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User deactivated"})
}

// Activate godoc
// @Summary      Reactivate a user account
// @Tags         admin-users
// @Param        id path string true "User ID"
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/activate [post]
func (h *UserHandler) Activate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Activate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User activated"})
}

// ListAdmins godoc
// @Summary      List admin memberships
// @Tags         admin-users
// @Produce      json
// @Success      200 {object} APIResponse[[]identity.AdminUserResponse]
// @Security     BearerAuth
// @Router       /admin/users/admins [get]
func (h *UserHandler) ListAdmins(c *gin.Context) {
	admins, err := h.userService.ListAdmins(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, admins)
}

// GrantAdminRequest names the role to grant
type GrantAdminRequest struct {
	Role string `json:"role" binding:"required,oneof=admin super_admin"`
}

// GrantAdmin godoc
// @Summary      Grant admin membership
// @Description  Grants back-office access to a user; super admin only
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body GrantAdminRequest true "Role to grant"
// @Success      201 {object} APIResponse[identity.AdminUserResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/grant [post]
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req GrantAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	admin, err := h.userService.GrantAdmin(c.Request.Context(), id, identity.AdminRole(req.Role))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, admin)
}

// RevokeAdmin godoc
// @Summary      Revoke admin membership
// @Description  Removes back-office access from a user; super admin only
// @Tags         admin-users
// @Param        id path string true "User ID"
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id}/grant [delete]
func (h *UserHandler) RevokeAdmin(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.RevokeAdmin(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
