package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/evergreen/backend/internal/application/engagement"
)

// FavoriteHandler handles saved-property endpoints for signed-in users
type FavoriteHandler struct {
	BaseHandler
	favoriteService *engagement.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *engagement.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ToggleResponse reports the saved state after a toggle
type ToggleResponse struct {
	PropertyID uuid.UUID `json:"property_id"`
	Saved      bool      `json:"saved"`
}

// Toggle godoc
// @Summary      Toggle a saved property
// @Description  Saves the property for the signed-in user, or removes it when already saved
// @Tags         favorites
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} APIResponse[ToggleResponse]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /engagement/favorites/{id}/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, ok := h.parseID(c)
	if !ok {
		return
	}

	saved, err := h.favoriteService.Toggle(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToggleResponse{PropertyID: propertyID, Saved: saved})
}

// List godoc
// @Summary      List saved properties
// @Description  Returns the signed-in user's saved properties as listing cards
// @Tags         favorites
// @Produce      json
// @Success      200 {object} APIResponse[[]listing.PropertyListResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /engagement/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// SavedIDs godoc
// @Summary      List saved property IDs
// @Description  Returns just the IDs so the browse grid can mark saved cards
// @Tags         favorites
// @Produce      json
// @Success      200 {object} APIResponse[[]string]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /engagement/favorites/ids [get]
func (h *FavoriteHandler) SavedIDs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	ids, err := h.favoriteService.SavedIDs(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ids)
}

// IsSaved godoc
// @Summary      Check whether a property is saved
// @Tags         favorites
// @Produce      json
// @Param        id path string true "Property ID"
// @Success      200 {object} APIResponse[ToggleResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /engagement/favorites/{id} [get]
func (h *FavoriteHandler) IsSaved(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, ok := h.parseID(c)
	if !ok {
		return
	}

	saved, err := h.favoriteService.IsSaved(c.Request.Context(), userID, propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ToggleResponse{PropertyID: propertyID, Saved: saved})
}
