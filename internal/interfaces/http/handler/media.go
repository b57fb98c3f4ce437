package handler

import (
	"github.com/gin-gonic/gin"

	appcontent "github.com/evergreen/backend/internal/application/content"
	"github.com/evergreen/backend/internal/interfaces/http/middleware"
)

// MediaHandler handles the admin media library endpoints
type MediaHandler struct {
	BaseHandler
	mediaService *appcontent.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *appcontent.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// RequestUpload godoc
// @Summary      Request a presigned upload
// @Description  Validates the file and returns a presigned PUT URL plus the asset record
// @Tags         admin-media
// @Accept       json
// @Produce      json
// @Param        request body content.UploadRequest true "File details"
// @Success      201 {object} APIResponse[content.UploadResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      415 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/media/uploads [post]
func (h *MediaHandler) RequestUpload(c *gin.Context) {
	var req appcontent.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.mediaService.RequestUpload(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List godoc
// @Summary      List media assets
// @Tags         admin-media
// @Produce      json
// @Param        folder query string false "Folder filter"
// @Param        search query string false "Name search"
// @Success      200 {object} APIResponse[[]content.MediaAssetResponse]
// @Security     BearerAuth
// @Router       /admin/media [get]
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.mediaService.List(c.Request.Context(), c.Query("folder"), c.Query("search"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Delete godoc
// @Summary      Delete a media asset
// @Description  Removes the stored object and the asset record
// @Tags         admin-media
// @Param        id path string true "Asset ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
